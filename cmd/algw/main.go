// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command algw infers types of expressions, and computes unifiers and substitutions, read from YAML documents.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

var version = "0.1.0"

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "algw",
		Usage:     "Hindley-Milner type inference for a small lambda calculus",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "log unification and generalization steps"},
			&cli.StringFlag{Name: "color", Value: "auto", Usage: "colorize output: auto, always or never"},
		},
		Commands: []*cli.Command{
			{
				Name:      "infer",
				Aliases:   []string{"i"},
				Usage:     "infer the type of each expression document",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "env", Aliases: []string{"e"}, Usage: "predeclared bindings"},
					&cli.BoolFlag{Name: "types", Aliases: []string{"t"}, Usage: "print the type of each sub-expression"},
				},
				Action: inferAction,
			},
			{
				Name:      "mgu",
				Usage:     "compute the most general unifier of each {left, right} document",
				ArgsUsage: "FILE...",
				Action:    mguAction,
			},
			{
				Name:      "subst",
				Usage:     "print the substitution described by each document",
				ArgsUsage: "FILE...",
				Action:    substAction,
			},
		},
	}
}

// options shared by every subcommand
type options struct {
	logger *slog.Logger
	out    *printer
}

func loadOptions(cmd *cli.Command) (*options, error) {
	level := slog.LevelWarn
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))

	color := false
	switch mode := cmd.String("color"); mode {
	case "auto":
		if f, ok := cmd.Root().Writer.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	case "always":
		color = true
	case "never":
	default:
		return nil, fmt.Errorf("invalid --color %q: expected auto, always or never", mode)
	}

	return &options{logger: logger, out: &printer{w: cmd.Root().Writer, color: color}}, nil
}

func inputFiles(cmd *cli.Command) ([]string, error) {
	if cmd.NArg() == 0 {
		return nil, fmt.Errorf("%s: no input files", cmd.Name)
	}
	return cmd.Args().Slice(), nil
}

// open a named input; "-" reads standard input
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

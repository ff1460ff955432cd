package ast

import (
	"strconv"
	"strings"
)

func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	if IsNil(e) {
		sb.WriteString("<nil>")
		return
	}
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Literal:
		switch et.Kind {
		case IntLiteral:
			sb.WriteString(strconv.FormatInt(int64(et.Int), 10))
		case BoolLiteral:
			sb.WriteString(strconv.FormatBool(et.Bool))
		}

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		exprString(sb, false, et.Arg)
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, false, et.Value)
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}
	}
}

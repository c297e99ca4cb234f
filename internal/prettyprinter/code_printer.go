// Package prettyprinter renders canonical AST trees in a readable
// surface-like notation, mainly for driver diagnostics. The output is
// for humans; the YAML codec is the machine-readable form.
package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/Bhargee/KRewrites/internal/ast"
)

// Operator precedence (higher = binds tighter).
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	"<=": 4,
	">":  4,
	">=": 4,
	"^":  5,
	"+":  6,
	"-":  6,
	"*":  7,
	"/":  7,
	"%":  7,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 8
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders the expression and resets the printer for reuse.
func (p *CodePrinter) Print(expr ast.Expression) string {
	p.buf.Reset()
	p.indent = 0
	p.printExpr(expr, 0)
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) newline() {
	p.buf.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

// printExpr renders expr, parenthesizing when its precedence is below
// the surrounding context's.
func (p *CodePrinter) printExpr(expr ast.Expression, contextPrec int) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		p.write(strconv.FormatInt(node.Value, 10))
	case *ast.BooleanLiteral:
		p.write(strconv.FormatBool(node.Value))
	case *ast.StringLiteral:
		p.write(strconv.Quote(node.Value))
	case *ast.Identifier:
		p.write(node.Value)

	case *ast.IfExpression:
		p.parenIf(contextPrec > 0, func() {
			p.write("if ")
			p.printExpr(node.Condition, 0)
			p.write(" then ")
			p.printExpr(node.Consequence, 0)
			p.write(" else ")
			p.printExpr(node.Alternative, 0)
		})

	case *ast.ListLiteral:
		p.write("[")
		for i, el := range node.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el, 0)
		}
		p.write("]")

	case *ast.ConstructorExpression:
		p.write(node.Name)
		if len(node.Arguments) > 0 {
			p.write("(")
			for i, arg := range node.Arguments {
				if i > 0 {
					p.write(", ")
				}
				p.printExpr(arg, 0)
			}
			p.write(")")
		}

	case *ast.FunctionLiteral:
		p.parenIf(contextPrec > 0, func() {
			p.write("fun ")
			for i, c := range node.Cases {
				if i > 0 {
					p.newline()
					p.write("  | ")
				}
				p.write(c.Pattern.String())
				p.write(" -> ")
				p.printExpr(c.Body, 0)
			}
		})

	case *ast.CallExpression:
		p.parenIf(contextPrec > 8, func() {
			p.printExpr(node.Function, 8)
			p.write(" ")
			p.printExpr(node.Argument, 9)
		})

	case *ast.LetExpression:
		p.printBinder("let", node.Bindings, node.Body, contextPrec)
	case *ast.LetrecExpression:
		p.printBinder("letrec", node.Bindings, node.Body, contextPrec)

	case *ast.RefExpression:
		p.parenIf(contextPrec > 8, func() {
			p.write("ref ")
			p.printExpr(node.Init, 9)
		})

	case *ast.AddrExpression:
		p.write("&")
		p.write(node.Name.Value)

	case *ast.DerefExpression:
		p.write("@")
		p.printExpr(node.Inner, 9)

	case *ast.AssignExpression:
		p.parenIf(contextPrec > 0, func() {
			p.printExpr(node.Target, 1)
			p.write(" := ")
			p.printExpr(node.Value, 0)
		})

	case *ast.SequenceExpression:
		p.write("(")
		p.printExpr(node.First, 0)
		p.write(" ; ")
		p.printExpr(node.Rest, 0)
		p.write(")")

	case *ast.CallccExpression:
		p.parenIf(contextPrec > 8, func() {
			p.write("callcc ")
			p.printExpr(node.Function, 9)
		})

	case *ast.InfixExpression:
		prec := getPrecedence(node.Operator)
		p.parenIf(contextPrec >= prec, func() {
			p.printExpr(node.Left, prec-1)
			p.write(" " + node.Operator + " ")
			p.printExpr(node.Right, prec)
		})

	case *ast.PrefixExpression:
		p.write(node.Operator)
		p.printExpr(node.Right, 9)

	default:
		p.write(expr.String())
	}
}

func (p *CodePrinter) printBinder(keyword string, bindings []ast.LetBinding, body ast.Expression, contextPrec int) {
	p.parenIf(contextPrec > 0, func() {
		p.write(keyword)
		p.indent++
		for i, b := range bindings {
			p.newline()
			if i > 0 {
				p.write("and ")
			}
			p.printExpr(b.Target, 1)
			p.write(" = ")
			p.printExpr(b.Value, 0)
		}
		p.indent--
		p.newline()
		p.write("in ")
		p.printExpr(body, 0)
	})
}

func (p *CodePrinter) parenIf(needed bool, inner func()) {
	if needed {
		p.write("(")
	}
	inner()
	if needed {
		p.write(")")
	}
}

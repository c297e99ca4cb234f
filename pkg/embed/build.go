package embed

import (
	"github.com/Bhargee/KRewrites/internal/ast"
)

// Expression builders. These construct the canonical core AST
// directly, the way the normalizer would emit it: applications take a
// single argument, binders bind plain names, list patterns with
// multiple heads are written as nested cons patterns.

func Int(v int64) ast.Expression     { return &ast.IntegerLiteral{Value: v} }
func Bool(v bool) ast.Expression     { return &ast.BooleanLiteral{Value: v} }
func Str(v string) ast.Expression    { return &ast.StringLiteral{Value: v} }
func Name(name string) ast.Expression { return &ast.Identifier{Value: name} }

func If(cond, consequence, alternative ast.Expression) ast.Expression {
	return &ast.IfExpression{Condition: cond, Consequence: consequence, Alternative: alternative}
}

func ListOf(elements ...ast.Expression) ast.Expression {
	return &ast.ListLiteral{Elements: elements}
}

func Ctor(name string, args ...ast.Expression) ast.Expression {
	return &ast.ConstructorExpression{Name: name, Arguments: args}
}

func Fun(cases ...ast.FunctionCase) ast.Expression {
	return &ast.FunctionLiteral{Cases: cases}
}

func Case(pattern ast.Pattern, body ast.Expression) ast.FunctionCase {
	return ast.FunctionCase{Pattern: pattern, Body: body}
}

// Call applies fn to one argument per application, currying the rest.
func Call(fn ast.Expression, args ...ast.Expression) ast.Expression {
	expr := fn
	for _, arg := range args {
		expr = &ast.CallExpression{Function: expr, Argument: arg}
	}
	return expr
}

func Bind(name string, value ast.Expression) ast.LetBinding {
	return ast.LetBinding{Target: &ast.Identifier{Value: name}, Value: value}
}

func Let(bindings []ast.LetBinding, body ast.Expression) ast.Expression {
	return &ast.LetExpression{Bindings: bindings, Body: body}
}

func Letrec(bindings []ast.LetBinding, body ast.Expression) ast.Expression {
	return &ast.LetrecExpression{Bindings: bindings, Body: body}
}

func Ref(init ast.Expression) ast.Expression {
	return &ast.RefExpression{Init: init}
}

func Addr(name string) ast.Expression {
	return &ast.AddrExpression{Name: &ast.Identifier{Value: name}}
}

func Deref(inner ast.Expression) ast.Expression {
	return &ast.DerefExpression{Inner: inner}
}

func Assign(target, value ast.Expression) ast.Expression {
	return &ast.AssignExpression{Target: target, Value: value}
}

// Seq chains expressions left to right, discarding every value but
// the last.
func Seq(first ast.Expression, rest ...ast.Expression) ast.Expression {
	expr := first
	for _, next := range rest {
		expr = &ast.SequenceExpression{First: expr, Rest: next}
	}
	return expr
}

func Callcc(fn ast.Expression) ast.Expression {
	return &ast.CallccExpression{Function: fn}
}

func Infix(op string, left, right ast.Expression) ast.Expression {
	return &ast.InfixExpression{Operator: op, Left: left, Right: right}
}

func Prefix(op string, right ast.Expression) ast.Expression {
	return &ast.PrefixExpression{Operator: op, Right: right}
}

// Pattern builders.

func PAny() ast.Pattern            { return &ast.WildcardPattern{} }
func PVar(name string) ast.Pattern { return &ast.IdentifierPattern{Value: name} }
func PInt(v int64) ast.Pattern     { return &ast.IntegerPattern{Value: v} }
func PBool(v bool) ast.Pattern     { return &ast.BooleanPattern{Value: v} }
func PStr(v string) ast.Pattern    { return &ast.StringPattern{Value: v} }

func PList(elements ...ast.Pattern) ast.Pattern {
	return &ast.ListPattern{Elements: elements}
}

func PCons(head, tail ast.Pattern) ast.Pattern {
	return &ast.ConsPattern{Head: head, Tail: tail}
}

func PCtor(name string, elements ...ast.Pattern) ast.Pattern {
	return &ast.ConstructorPattern{Name: name, Elements: elements}
}

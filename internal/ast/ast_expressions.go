package ast

import (
	"fmt"
	"strings"
)

// IntegerLiteral represents an integer constant, e.g. 5
type IntegerLiteral struct {
	Value int64
}

func (il *IntegerLiteral) expressionNode() {}
func (il *IntegerLiteral) String() string  { return fmt.Sprintf("%d", il.Value) }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Value bool
}

func (bl *BooleanLiteral) expressionNode() {}
func (bl *BooleanLiteral) String() string  { return fmt.Sprintf("%t", bl.Value) }

// StringLiteral represents a string constant, e.g. "hello"
type StringLiteral struct {
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) String() string  { return fmt.Sprintf("%q", sl.Value) }

// Identifier represents a name reference, e.g. x
type Identifier struct {
	Value string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Value }

// IfExpression represents a conditional.
// if cond then consequence else alternative
type IfExpression struct {
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode() {}
func (ie *IfExpression) String() string {
	return fmt.Sprintf("if %s then %s else %s",
		ie.Condition.String(), ie.Consequence.String(), ie.Alternative.String())
}

// ListLiteral represents a list expression, e.g. [1, 2, 3]
type ListLiteral struct {
	Elements []Expression
}

func (ll *ListLiteral) expressionNode() {}
func (ll *ListLiteral) String() string {
	parts := make([]string, len(ll.Elements))
	for i, el := range ll.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ConstructorExpression represents application of a data constructor,
// e.g. Pair(1, 2) or Nil. The constructor name itself is never
// evaluated and no declared arity is checked.
type ConstructorExpression struct {
	Name      string
	Arguments []Expression
}

func (ce *ConstructorExpression) expressionNode() {}
func (ce *ConstructorExpression) String() string {
	if len(ce.Arguments) == 0 {
		return ce.Name
	}
	parts := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		parts[i] = a.String()
	}
	return ce.Name + "(" + strings.Join(parts, ", ") + ")"
}

// FunctionLiteral represents an anonymous function with ordered cases.
// fun p1 -> e1 | p2 -> e2
type FunctionLiteral struct {
	Cases []FunctionCase
}

func (fl *FunctionLiteral) expressionNode() {}
func (fl *FunctionLiteral) String() string {
	parts := make([]string, len(fl.Cases))
	for i, c := range fl.Cases {
		parts[i] = c.Pattern.String() + " -> " + c.Body.String()
	}
	return "fun " + strings.Join(parts, " | ")
}

// CallExpression represents application of a function to a single
// argument. Multi-argument applications are curried by the normalizer.
type CallExpression struct {
	Function Expression
	Argument Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) String() string {
	return "(" + ce.Function.String() + " " + ce.Argument.String() + ")"
}

// LetExpression represents a let binder.
// let x1 = e1 and x2 = e2 in body
type LetExpression struct {
	Bindings []LetBinding
	Body     Expression
}

func (le *LetExpression) expressionNode() {}
func (le *LetExpression) String() string  { return binderString("let", le.Bindings, le.Body) }

// LetrecExpression represents a letrec binder. Unlike let, every
// right-hand side is evaluated in the already-extended environment.
type LetrecExpression struct {
	Bindings []LetBinding
	Body     Expression
}

func (le *LetrecExpression) expressionNode() {}
func (le *LetrecExpression) String() string  { return binderString("letrec", le.Bindings, le.Body) }

func binderString(keyword string, bindings []LetBinding, body Expression) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Target.String() + " = " + b.Value.String()
	}
	return keyword + " " + strings.Join(parts, " and ") + " in " + body.String()
}

// RefExpression allocates a fresh store location initialized with the
// value of Init and yields that location.
// ref e
type RefExpression struct {
	Init Expression
}

func (re *RefExpression) expressionNode() {}
func (re *RefExpression) String() string  { return "ref " + re.Init.String() }

// AddrExpression yields the location a name is currently bound to.
// & x
type AddrExpression struct {
	Name *Identifier
}

func (ae *AddrExpression) expressionNode() {}
func (ae *AddrExpression) String() string  { return "& " + ae.Name.String() }

// DerefExpression reads the current value at a location.
// @ e
type DerefExpression struct {
	Inner Expression
}

func (de *DerefExpression) expressionNode() {}
func (de *DerefExpression) String() string  { return "@ " + de.Inner.String() }

// AssignExpression writes a value through a location and yields the
// written value.
// e1 := e2
type AssignExpression struct {
	Target Expression
	Value  Expression
}

func (ae *AssignExpression) expressionNode() {}
func (ae *AssignExpression) String() string {
	return ae.Target.String() + " := " + ae.Value.String()
}

// SequenceExpression evaluates First for effect, discards its value,
// then evaluates and yields Rest.
// e1 ; e2
type SequenceExpression struct {
	First Expression
	Rest  Expression
}

func (se *SequenceExpression) expressionNode() {}
func (se *SequenceExpression) String() string {
	return se.First.String() + " ; " + se.Rest.String()
}

// CallccExpression captures the current continuation and applies
// Function to it.
// callcc e
type CallccExpression struct {
	Function Expression
}

func (ce *CallccExpression) expressionNode() {}
func (ce *CallccExpression) String() string  { return "callcc " + ce.Function.String() }

// InfixExpression represents a built-in binary operator, e.g. n * 2
type InfixExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode() {}
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// PrefixExpression represents a built-in unary operator, e.g. !b
type PrefixExpression struct {
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode() {}
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

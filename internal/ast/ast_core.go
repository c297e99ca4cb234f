package ast

// Node is the base interface for all canonical AST nodes.
//
// The evaluator consumes this tree as produced by the normalizer:
// multi-argument functions and binders are already curried, multi-head
// list patterns are already expanded to nested cons patterns, and
// datatype declarations and type annotations are already stripped.
type Node interface {
	String() string
}

// Expression is a Node that can be evaluated to a value.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node that can be matched against a value.
type Pattern interface {
	Node
	patternNode()
}

// FunctionCase is one `pattern -> body` alternative of a function
// literal. Cases are tried strictly in source order.
type FunctionCase struct {
	Pattern Pattern
	Body    Expression
}

// LetBinding is a single `target = value` binding of a let or letrec.
// Target must reduce to a plain Identifier; the evaluator reports a
// misshapen binder otherwise.
type LetBinding struct {
	Target Expression
	Value  Expression
}

// Package embed lets Go hosts build canonical FUN ASTs and evaluate
// them without going through the surface-syntax normalizer.
package embed

import (
	"github.com/Bhargee/KRewrites/internal/ast"
	"github.com/Bhargee/KRewrites/internal/encoding"
	"github.com/Bhargee/KRewrites/internal/evaluator"
)

// VM evaluates canonical ASTs. Each Eval runs against a fresh empty
// environment and store, so results are deterministic across calls.
type VM struct {
	// MaxSteps bounds machine steps per evaluation; zero means
	// unbounded.
	MaxSteps int
}

func New() *VM {
	return &VM{}
}

// Eval evaluates an expression tree and returns the result as a
// native Go value (see Marshal).
func (vm *VM) Eval(expr ast.Expression) (interface{}, error) {
	obj, _, err := vm.EvalObject(expr)
	if err != nil {
		return nil, err
	}
	return Marshal(obj), nil
}

// EvalObject evaluates an expression tree and returns the raw runtime
// value together with the final store.
func (vm *VM) EvalObject(expr ast.Expression) (evaluator.Object, *evaluator.Store, error) {
	m := evaluator.NewMachine()
	m.SetMaxSteps(vm.MaxSteps)
	result, err := m.Run(expr)
	if err != nil {
		return nil, nil, err
	}
	return result, m.Store(), nil
}

// EvalDocument decodes a canonical AST document and evaluates it.
func (vm *VM) EvalDocument(src []byte) (interface{}, error) {
	expr, err := encoding.DecodeExpression(src)
	if err != nil {
		return nil, err
	}
	return vm.Eval(expr)
}

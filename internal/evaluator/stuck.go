package evaluator

import (
	"fmt"

	"github.com/Bhargee/KRewrites/internal/ast"
)

// StuckKind classifies the reason no evaluation rule applies.
type StuckKind string

const (
	UnboundName         StuckKind = "UnboundName"
	UnallocatedLocation StuckKind = "UnallocatedLocation"
	TypeMismatch        StuckKind = "TypeMismatch"
	DivisionByZero      StuckKind = "DivisionByZero"
	ModuloByZero        StuckKind = "ModuloByZero"
	PatternExhausted    StuckKind = "PatternExhausted"
	MisshapenBinder     StuckKind = "MisshapenBinder"
)

// Stuck is the canonical failure signal of the evaluator: the point
// where no rule applies, tagged with the reason and the sub-expression
// that could not be evaluated. It is irrecoverable within the run;
// user-level escape goes through callcc, which is ordinary control
// flow, not error handling.
type Stuck struct {
	Kind    StuckKind
	Node    ast.Node
	Message string
}

func (s *Stuck) Error() string {
	if s.Node != nil {
		return fmt.Sprintf("%s: %s in %s", s.Kind, s.Message, s.Node.String())
	}
	return fmt.Sprintf("%s: %s", s.Kind, s.Message)
}

func newStuck(kind StuckKind, node ast.Node, format string, a ...interface{}) *Stuck {
	return &Stuck{Kind: kind, Node: node, Message: fmt.Sprintf(format, a...)}
}

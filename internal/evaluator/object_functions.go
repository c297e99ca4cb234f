package evaluator

import (
	"fmt"

	"github.com/Bhargee/KRewrites/internal/ast"
)

// Closure pairs the ordered cases of a function literal with the
// environment captured at its creation. The captured environment is a
// snapshot: later bindings in the creating scope never become visible
// through it.
type Closure struct {
	Cases []ast.FunctionCase
	Env   *Environment
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }
func (c *Closure) Inspect() string {
	if len(c.Cases) == 1 {
		return fmt.Sprintf("fun %s -> ...", c.Cases[0].Pattern.String())
	}
	return fmt.Sprintf("fun %s -> ... (%d cases)", c.Cases[0].Pattern.String(), len(c.Cases))
}

// Continuation is a reified snapshot of the pending work and the
// environment active when callcc was invoked. Applying it discards the
// current pending work and environment and resumes from the snapshot.
// It may be applied any number of times.
type Continuation struct {
	Env    *Environment
	Frames []Frame
}

func (k *Continuation) Type() ObjectType { return CONTINUATION_OBJ }
func (k *Continuation) Inspect() string {
	return fmt.Sprintf("#<continuation/%d>", len(k.Frames))
}

// Package pipeline composes the stages a canonical AST document goes
// through in the driver: decode, evaluate, render. The evaluator core
// does not depend on it.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Bhargee/KRewrites/internal/ast"
	"github.com/Bhargee/KRewrites/internal/encoding"
	"github.com/Bhargee/KRewrites/internal/evaluator"
)

// Diagnostic is a stage failure carried through the run context.
type Diagnostic struct {
	Stage   string
	Message string
	// Stuck holds the evaluation failure when the evaluate stage
	// produced one, so callers can point at the offending node.
	Stuck *evaluator.Stuck
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Stage, d.Message)
}

// RunContext threads one evaluation run through the stages.
type RunContext struct {
	ID          string
	Source      []byte
	Program     ast.Expression
	Result      evaluator.Object
	FinalStore  *evaluator.Store
	MaxSteps    int
	Diagnostics []Diagnostic
}

func NewRunContext(source []byte) *RunContext {
	return &RunContext{
		ID:     uuid.NewString(),
		Source: source,
	}
}

func (ctx *RunContext) Failed() bool { return len(ctx.Diagnostics) > 0 }

func (ctx *RunContext) addDiagnostic(d Diagnostic) {
	ctx.Diagnostics = append(ctx.Diagnostics, d)
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *RunContext) *RunContext
}

// Pipeline is an ordered sequence of stages. A failed stage stops the
// run; its diagnostics stay on the context for the caller to report.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

func (p *Pipeline) Run(initialCtx *RunContext) *RunContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Failed() {
			break
		}
	}
	return ctx
}

// DecodeStage parses ctx.Source into ctx.Program.
type DecodeStage struct{}

func (DecodeStage) Process(ctx *RunContext) *RunContext {
	program, err := encoding.DecodeExpression(ctx.Source)
	if err != nil {
		ctx.addDiagnostic(Diagnostic{Stage: "decode", Message: err.Error()})
		return ctx
	}
	ctx.Program = program
	return ctx
}

// EvalStage runs ctx.Program on a fresh machine.
type EvalStage struct{}

func (EvalStage) Process(ctx *RunContext) *RunContext {
	m := evaluator.NewMachine()
	m.SetMaxSteps(ctx.MaxSteps)
	result, err := m.Run(ctx.Program)
	if err != nil {
		d := Diagnostic{Stage: "evaluate", Message: err.Error()}
		if stuck, ok := err.(*evaluator.Stuck); ok {
			d.Stuck = stuck
		}
		ctx.addDiagnostic(d)
		return ctx
	}
	ctx.Result = result
	ctx.FinalStore = m.Store()
	return ctx
}

package evaluator

import (
	"fmt"

	"github.com/Bhargee/KRewrites/internal/ast"
)

type frameOp int

const (
	opBranch frameOp = iota // pick a conditional branch
	opSequence              // discard the value, evaluate the rest
	opCollect               // gather list or constructor elements
	opApplyFn               // function value ready, evaluate the argument
	opApplyArg              // argument value ready, dispatch the call
	opInfixLeft             // left operand ready
	opInfixRight            // right operand ready, apply the operator
	opPrefix                // operand ready, apply the operator
	opBindLet               // gather let right-hand sides, then bind
	opBindLetrec            // gather letrec right-hand sides, then write
	opRefAlloc              // allocate a fresh location for the value
	opDeref                 // read through the location value
	opAssignTarget          // target location ready, evaluate the value
	opAssignValue           // value ready, write through the location
	opCallcc                // callee ready, capture and apply
	opRestoreEnv            // structured call/return over the environment
)

// Frame is one step of pending work. The frame stack, not the Go call
// stack, is the evaluator's continuation: it is copied whole into
// Continuation values and restored on their invocation, which is what
// makes multi-shot callcc possible.
type Frame struct {
	op    frameOp
	node  ast.Node         // originating node, for stuck reports
	exprs []ast.Expression // remaining sub-expressions, consumed left to right
	vals  []Object         // values accumulated so far
	val   Object           // single partial value (callee, operand, target)
	env   *Environment     // restore target for opRestoreEnv
	names []string         // binder names for opBindLet
	locs  []Location       // reserved locations for opBindLetrec
	body  ast.Expression   // binder body
}

// copyFrames snapshots a frame stack. The vals slices are the only
// per-frame state mutated after creation, so they are cloned; the rest
// is read-only and may be shared.
func copyFrames(frames []Frame) []Frame {
	dst := make([]Frame, len(frames))
	copy(dst, frames)
	for i := range dst {
		if dst[i].vals != nil {
			vals := make([]Object, len(dst[i].vals))
			copy(vals, dst[i].vals)
			dst[i].vals = vals
		}
	}
	return dst
}

// StepLimitError reports that a run exceeded the configured step
// budget. It is a host-side limit, not a stuck state: the program may
// simply diverge.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("evaluation exceeded %d steps", e.Limit)
}

// Machine is the small-step evaluator. Execution is single-threaded
// and deterministic; every step either completes fully or the whole
// evaluation is stuck.
type Machine struct {
	store    *Store
	env      *Environment
	frames   []Frame
	steps    int
	maxSteps int
}

func NewMachine() *Machine {
	return &Machine{
		store: NewStore(),
		env:   NewEnvironment(),
	}
}

// SetMaxSteps bounds the number of machine steps per Run. Zero means
// unbounded.
func (m *Machine) SetMaxSteps(n int) { m.maxSteps = n }

// Store exposes the heap, for drivers and tests that inspect the final
// store of a run.
func (m *Machine) Store() *Store { return m.store }

// Evaluate runs expr against a fresh empty environment and store.
func Evaluate(expr ast.Expression) (Object, *Store, error) {
	m := NewMachine()
	result, err := m.Run(expr)
	return result, m.store, err
}

// Run evaluates expr to a final value, or fails with a *Stuck when no
// evaluation rule applies (or a *StepLimitError when the step budget
// runs out).
func (m *Machine) Run(expr ast.Expression) (Object, error) {
	m.frames = m.frames[:0]
	m.steps = 0

	var (
		exp ast.Expression = expr
		val Object
	)
	for {
		m.steps++
		if m.maxSteps > 0 && m.steps > m.maxSteps {
			return nil, &StepLimitError{Limit: m.maxSteps}
		}

		if val == nil {
			v, stuck := m.decompose(&exp)
			if stuck != nil {
				return nil, stuck
			}
			val = v
			continue
		}

		if len(m.frames) == 0 {
			return val, nil
		}

		v, stuck := m.resume(&exp, val)
		if stuck != nil {
			return nil, stuck
		}
		val = v
	}
}

// decompose breaks the current expression down, pushing frames for the
// pending work and selecting the next sub-expression, until a value is
// produced.
func (m *Machine) decompose(exp *ast.Expression) (Object, *Stuck) {
	switch node := (*exp).(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}, nil

	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value), nil

	case *ast.StringLiteral:
		return &String{Value: node.Value}, nil

	case *ast.Identifier:
		loc, ok := m.env.Get(node.Value)
		if !ok {
			return nil, newStuck(UnboundName, node, "name %s is not bound", node.Value)
		}
		v, ok := m.store.Read(loc)
		if !ok {
			return nil, newStuck(UnallocatedLocation, node,
				"location of %s holds no value", node.Value)
		}
		return v, nil

	case *ast.IfExpression:
		m.push(Frame{op: opBranch, node: node})
		*exp = node.Condition

	case *ast.ListLiteral:
		if len(node.Elements) == 0 {
			return &List{}, nil
		}
		m.push(Frame{op: opCollect, node: node, exprs: node.Elements[1:]})
		*exp = node.Elements[0]

	case *ast.ConstructorExpression:
		if len(node.Arguments) == 0 {
			return &DataInstance{Name: node.Name}, nil
		}
		m.push(Frame{op: opCollect, node: node, exprs: node.Arguments[1:]})
		*exp = node.Arguments[0]

	case *ast.FunctionLiteral:
		// The only place closures are created: capture the current
		// environment by snapshot.
		return &Closure{Cases: node.Cases, Env: m.env}, nil

	case *ast.CallExpression:
		m.push(Frame{op: opApplyFn, node: node})
		*exp = node.Function

	case *ast.LetExpression:
		names, stuck := binderNames(node, node.Bindings)
		if stuck != nil {
			return nil, stuck
		}
		if len(node.Bindings) == 0 {
			*exp = node.Body
			break
		}
		m.push(Frame{
			op:    opBindLet,
			node:  node,
			names: names,
			exprs: bindingValues(node.Bindings)[1:],
			body:  node.Body,
		})
		*exp = node.Bindings[0].Value

	case *ast.LetrecExpression:
		names, stuck := binderNames(node, node.Bindings)
		if stuck != nil {
			return nil, stuck
		}
		// Phase one: reserve locations and extend the environment so
		// every right-hand side sees its own and its siblings' names.
		env := NewEnclosedEnvironment(m.env)
		locs := make([]Location, len(names))
		for i, name := range names {
			locs[i] = m.store.Reserve()
			env.Set(name, locs[i])
		}
		m.pushRestoreEnv(m.env)
		m.env = env
		if len(node.Bindings) == 0 {
			*exp = node.Body
			break
		}
		m.push(Frame{
			op:    opBindLetrec,
			node:  node,
			locs:  locs,
			exprs: bindingValues(node.Bindings)[1:],
			body:  node.Body,
		})
		*exp = node.Bindings[0].Value

	case *ast.RefExpression:
		m.push(Frame{op: opRefAlloc, node: node})
		*exp = node.Init

	case *ast.AddrExpression:
		loc, ok := m.env.Get(node.Name.Value)
		if !ok {
			return nil, newStuck(UnboundName, node, "name %s is not bound", node.Name.Value)
		}
		return loc, nil

	case *ast.DerefExpression:
		m.push(Frame{op: opDeref, node: node})
		*exp = node.Inner

	case *ast.AssignExpression:
		m.push(Frame{op: opAssignTarget, node: node})
		*exp = node.Target

	case *ast.SequenceExpression:
		m.push(Frame{op: opSequence, node: node})
		*exp = node.First

	case *ast.CallccExpression:
		m.push(Frame{op: opCallcc, node: node})
		*exp = node.Function

	case *ast.InfixExpression:
		m.push(Frame{op: opInfixLeft, node: node})
		*exp = node.Left

	case *ast.PrefixExpression:
		m.push(Frame{op: opPrefix, node: node})
		*exp = node.Right

	default:
		return nil, newStuck(TypeMismatch, node, "cannot evaluate %T", node)
	}
	return nil, nil
}

// resume feeds a just-produced value to the topmost pending frame.
// It either yields a new value or selects the next expression to
// decompose.
func (m *Machine) resume(exp *ast.Expression, val Object) (Object, *Stuck) {
	f := m.frames[len(m.frames)-1]
	m.frames = m.frames[:len(m.frames)-1]

	switch f.op {
	case opBranch:
		node := f.node.(*ast.IfExpression)
		cond, ok := val.(*Boolean)
		if !ok {
			return nil, newStuck(TypeMismatch, node,
				"condition evaluated to %s, not a boolean", val.Type())
		}
		if cond.Value {
			*exp = node.Consequence
		} else {
			if node.Alternative == nil {
				return nil, newStuck(TypeMismatch, node, "conditional has no else branch")
			}
			*exp = node.Alternative
		}
		return nil, nil

	case opSequence:
		// First evaluated for effect only.
		*exp = f.node.(*ast.SequenceExpression).Rest
		return nil, nil

	case opCollect:
		f.vals = append(f.vals, val)
		if len(f.exprs) > 0 {
			*exp = f.exprs[0]
			f.exprs = f.exprs[1:]
			m.push(f)
			return nil, nil
		}
		switch node := f.node.(type) {
		case *ast.ListLiteral:
			return &List{Elements: f.vals}, nil
		case *ast.ConstructorExpression:
			return &DataInstance{Name: node.Name, Fields: f.vals}, nil
		}
		return nil, newStuck(TypeMismatch, f.node, "unexpected collect target")

	case opApplyFn:
		m.push(Frame{op: opApplyArg, node: f.node, val: val})
		*exp = f.node.(*ast.CallExpression).Argument
		return nil, nil

	case opApplyArg:
		return m.applyObject(f.val, val, f.node, exp)

	case opInfixLeft:
		node := f.node.(*ast.InfixExpression)
		if node.Operator == "&&" || node.Operator == "||" {
			cond, ok := val.(*Boolean)
			if !ok {
				return nil, newStuck(TypeMismatch, node,
					"operator %s applied to %s", node.Operator, val.Type())
			}
			// Short circuit: the left operand decides.
			if (node.Operator == "&&" && !cond.Value) || (node.Operator == "||" && cond.Value) {
				return cond, nil
			}
		}
		m.push(Frame{op: opInfixRight, node: node, val: val})
		*exp = node.Right
		return nil, nil

	case opInfixRight:
		return applyInfix(f.node.(*ast.InfixExpression), f.val, val)

	case opPrefix:
		return applyPrefix(f.node.(*ast.PrefixExpression), val)

	case opBindLet:
		f.vals = append(f.vals, val)
		if len(f.exprs) > 0 {
			*exp = f.exprs[0]
			f.exprs = f.exprs[1:]
			m.push(f)
			return nil, nil
		}
		// Every right-hand side was evaluated in the pre-extension
		// environment; now bind all names at once.
		m.pushRestoreEnv(m.env)
		env := NewEnclosedEnvironment(m.env)
		for i, name := range f.names {
			env.Set(name, m.store.Alloc(f.vals[i]))
		}
		m.env = env
		*exp = f.body
		return nil, nil

	case opBindLetrec:
		f.vals = append(f.vals, val)
		if len(f.exprs) > 0 {
			*exp = f.exprs[0]
			f.exprs = f.exprs[1:]
			m.push(f)
			return nil, nil
		}
		// Phase two: write every value into its reserved location.
		// Closures built by the right-hand sides already captured the
		// extended environment, so recursion works from here on.
		for i, loc := range f.locs {
			m.store.Write(loc, f.vals[i])
		}
		*exp = f.body
		return nil, nil

	case opRefAlloc:
		return m.store.Alloc(val), nil

	case opDeref:
		loc, ok := val.(Location)
		if !ok {
			return nil, newStuck(TypeMismatch, f.node,
				"cannot dereference %s", val.Type())
		}
		v, ok := m.store.Read(loc)
		if !ok {
			return nil, newStuck(UnallocatedLocation, f.node,
				"%s holds no value", loc.Inspect())
		}
		return v, nil

	case opAssignTarget:
		loc, ok := val.(Location)
		if !ok {
			return nil, newStuck(TypeMismatch, f.node,
				"cannot assign through %s", val.Type())
		}
		m.push(Frame{op: opAssignValue, node: f.node, val: loc})
		*exp = f.node.(*ast.AssignExpression).Value
		return nil, nil

	case opAssignValue:
		loc := f.val.(Location)
		if !m.store.Write(loc, val) {
			return nil, newStuck(UnallocatedLocation, f.node,
				"%s was never allocated", loc.Inspect())
		}
		// Assignment yields the written value.
		return val, nil

	case opCallcc:
		switch val.(type) {
		case *Closure, *Continuation:
		default:
			return nil, newStuck(TypeMismatch, f.node,
				"callcc applied to %s", val.Type())
		}
		k := &Continuation{Env: m.env, Frames: copyFrames(m.frames)}
		return m.applyObject(val, k, f.node, exp)

	case opRestoreEnv:
		m.env = f.env
		return val, nil
	}

	return nil, newStuck(TypeMismatch, f.node, "unexpected machine state")
}

func (m *Machine) push(f Frame) {
	m.frames = append(m.frames, f)
}

// pushRestoreEnv records the environment to return to after a call or
// binder body finishes. In tail position the pending restore already
// applies, so nothing is pushed.
func (m *Machine) pushRestoreEnv(env *Environment) {
	if n := len(m.frames) - 1; n >= 0 && m.frames[n].op == opRestoreEnv {
		return
	}
	m.push(Frame{op: opRestoreEnv, env: env})
}

func binderNames(node ast.Node, bindings []ast.LetBinding) ([]string, *Stuck) {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		ident, ok := b.Target.(*ast.Identifier)
		if !ok {
			return nil, newStuck(MisshapenBinder, node,
				"binder target %s is not a plain name", b.Target.String())
		}
		names[i] = ident.Value
	}
	return names, nil
}

func bindingValues(bindings []ast.LetBinding) []ast.Expression {
	values := make([]ast.Expression, len(bindings))
	for i, b := range bindings {
		values[i] = b.Value
	}
	return values
}

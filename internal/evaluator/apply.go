package evaluator

import (
	"sort"

	"github.com/Bhargee/KRewrites/internal/ast"
)

// applyObject dispatches an application once both the callee and the
// argument are values.
//
// A closure tries its cases strictly in source order; the first match
// binds its variables to fresh store locations on top of the captured
// environment and the body becomes the next expression, with a
// restore-environment frame pending for the return. A continuation
// discards the entire current pending work and environment and resumes
// from its snapshot with the argument as the produced value.
func (m *Machine) applyObject(fn, arg Object, node ast.Node, exp *ast.Expression) (Object, *Stuck) {
	switch callee := fn.(type) {
	case *Closure:
		for _, c := range callee.Cases {
			matched, bindings := matchPattern(c.Pattern, arg)
			if !matched {
				continue
			}
			m.pushRestoreEnv(m.env)
			env := NewEnclosedEnvironment(callee.Env)
			for _, name := range sortedNames(bindings) {
				env.Set(name, m.store.Alloc(bindings[name]))
			}
			m.env = env
			*exp = c.Body
			return nil, nil
		}
		return nil, newStuck(PatternExhausted, node,
			"value %s matched no case", arg.Inspect())

	case *Continuation:
		m.frames = copyFrames(callee.Frames)
		m.env = callee.Env
		return arg, nil
	}
	return nil, newStuck(TypeMismatch, node, "%s is not callable", fn.Type())
}

// sortedNames fixes the allocation order of match bindings so that
// store layout stays deterministic across runs.
func sortedNames(bindings map[string]Object) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

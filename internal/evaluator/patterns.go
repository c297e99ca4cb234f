package evaluator

import (
	"github.com/Bhargee/KRewrites/internal/ast"
)

// matchPattern matches a pattern against a value, returning the
// variable bindings on success. Failure is silent: the caller advances
// to the next function case, and only exhausting every case is a stuck
// state.
//
// Pattern variables within one pattern are expected to be pairwise
// distinct; when a name repeats, the last binding wins (no unification
// is attempted).
func matchPattern(pat ast.Pattern, val Object) (bool, map[string]Object) {
	bindings := make(map[string]Object)

	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return true, bindings

	case *ast.IdentifierPattern:
		bindings[p.Value] = val
		return true, bindings

	case *ast.IntegerPattern:
		if intVal, ok := val.(*Integer); ok {
			return intVal.Value == p.Value, bindings
		}
		return false, bindings

	case *ast.BooleanPattern:
		if boolVal, ok := val.(*Boolean); ok {
			return boolVal.Value == p.Value, bindings
		}
		return false, bindings

	case *ast.StringPattern:
		if strVal, ok := val.(*String); ok {
			return strVal.Value == p.Value, bindings
		}
		return false, bindings

	case *ast.ListPattern:
		listVal, ok := val.(*List)
		if !ok {
			return false, bindings
		}
		if listVal.Len() != len(p.Elements) {
			return false, bindings
		}
		for i, el := range p.Elements {
			matched, subBindings := matchPattern(el, listVal.Elements[i])
			if !matched {
				return false, bindings
			}
			for k, v := range subBindings {
				bindings[k] = v
			}
		}
		return true, bindings

	case *ast.ConsPattern:
		listVal, ok := val.(*List)
		if !ok || listVal.Len() == 0 {
			return false, bindings
		}
		matched, subBindings := matchPattern(p.Head, listVal.Head())
		if !matched {
			return false, bindings
		}
		for k, v := range subBindings {
			bindings[k] = v
		}
		matched, subBindings = matchPattern(p.Tail, listVal.Tail())
		if !matched {
			return false, bindings
		}
		for k, v := range subBindings {
			bindings[k] = v
		}
		return true, bindings

	case *ast.ConstructorPattern:
		dataVal, ok := val.(*DataInstance)
		if !ok {
			return false, bindings
		}
		if dataVal.Name != p.Name {
			return false, bindings
		}
		if len(dataVal.Fields) != len(p.Elements) {
			return false, bindings
		}
		for i, el := range p.Elements {
			matched, subBindings := matchPattern(el, dataVal.Fields[i])
			if !matched {
				return false, bindings
			}
			for k, v := range subBindings {
				bindings[k] = v
			}
		}
		return true, bindings
	}
	return false, bindings
}

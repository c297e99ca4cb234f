package evaluator

import (
	"testing"

	"github.com/Bhargee/KRewrites/internal/ast"
)

func intVal(v int64) Object  { return &Integer{Value: v} }
func strVal(v string) Object { return &String{Value: v} }

func listVal(elements ...Object) Object {
	return &List{Elements: elements}
}

func dataVal(name string, fields ...Object) Object {
	return &DataInstance{Name: name, Fields: fields}
}

func pVar(name string) ast.Pattern { return &ast.IdentifierPattern{Value: name} }
func pInt(v int64) ast.Pattern     { return &ast.IntegerPattern{Value: v} }

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern ast.Pattern
		value   Object
		matched bool
		// expected bindings, compared by Inspect
		bindings map[string]string
	}{
		{
			"wildcard matches anything",
			&ast.WildcardPattern{},
			dataVal("Pair", intVal(1), intVal(2)),
			true,
			nil,
		},
		{
			"variable binds the whole value",
			pVar("x"),
			intVal(42),
			true,
			map[string]string{"x": "42"},
		},
		{
			"integer literal matches",
			pInt(5), intVal(5), true, nil,
		},
		{
			"integer literal rejects other integers",
			pInt(5), intVal(6), false, nil,
		},
		{
			"integer literal rejects other types",
			pInt(5), TRUE, false, nil,
		},
		{
			"boolean literal matches",
			&ast.BooleanPattern{Value: true}, TRUE, true, nil,
		},
		{
			"string literal matches",
			&ast.StringPattern{Value: "abc"}, strVal("abc"), true, nil,
		},
		{
			"empty list pattern matches empty list",
			&ast.ListPattern{}, listVal(), true, nil,
		},
		{
			"empty list pattern rejects non-empty list",
			&ast.ListPattern{}, listVal(intVal(1)), false, nil,
		},
		{
			"fixed list pattern binds per element",
			&ast.ListPattern{Elements: []ast.Pattern{pVar("a"), pInt(2), pVar("b")}},
			listVal(intVal(1), intVal(2), intVal(3)),
			true,
			map[string]string{"a": "1", "b": "3"},
		},
		{
			"fixed list pattern is length exact",
			&ast.ListPattern{Elements: []ast.Pattern{pVar("a")}},
			listVal(intVal(1), intVal(2)),
			false,
			nil,
		},
		{
			"cons splits head and tail",
			&ast.ConsPattern{Head: pVar("h"), Tail: pVar("t")},
			listVal(intVal(1), intVal(2), intVal(3)),
			true,
			map[string]string{"h": "1", "t": "[2, 3]"},
		},
		{
			"cons on singleton binds empty tail",
			&ast.ConsPattern{Head: pVar("h"), Tail: pVar("t")},
			listVal(intVal(7)),
			true,
			map[string]string{"h": "7", "t": "[]"},
		},
		{
			"cons rejects empty list",
			&ast.ConsPattern{Head: pVar("h"), Tail: pVar("t")},
			listVal(),
			false,
			nil,
		},
		{
			"constructor matches by name and arity",
			&ast.ConstructorPattern{Name: "Pair", Elements: []ast.Pattern{pVar("a"), pVar("b")}},
			dataVal("Pair", intVal(1), intVal(2)),
			true,
			map[string]string{"a": "1", "b": "2"},
		},
		{
			"constructor rejects wrong name",
			&ast.ConstructorPattern{Name: "Pair", Elements: []ast.Pattern{pVar("a"), pVar("b")}},
			dataVal("Cons", intVal(1), intVal(2)),
			false,
			nil,
		},
		{
			"constructor rejects wrong arity",
			&ast.ConstructorPattern{Name: "Pair", Elements: []ast.Pattern{pVar("a")}},
			dataVal("Pair", intVal(1), intVal(2)),
			false,
			nil,
		},
		{
			"nullary constructor",
			&ast.ConstructorPattern{Name: "Nil"},
			dataVal("Nil"),
			true,
			nil,
		},
		{
			"nested patterns accumulate bindings",
			&ast.ConstructorPattern{Name: "Node", Elements: []ast.Pattern{
				pVar("v"),
				&ast.ConsPattern{Head: pVar("h"), Tail: &ast.WildcardPattern{}},
			}},
			dataVal("Node", intVal(9), listVal(intVal(1), intVal(2))),
			true,
			map[string]string{"v": "9", "h": "1"},
		},
		{
			"repeated variable keeps the last binding",
			&ast.ListPattern{Elements: []ast.Pattern{pVar("x"), pVar("x")}},
			listVal(intVal(1), intVal(2)),
			true,
			map[string]string{"x": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, bindings := matchPattern(tt.pattern, tt.value)
			if matched != tt.matched {
				t.Fatalf("matched = %t, want %t", matched, tt.matched)
			}
			if !tt.matched {
				return
			}
			if len(bindings) != len(tt.bindings) {
				t.Fatalf("got %d bindings, want %d", len(bindings), len(tt.bindings))
			}
			for name, want := range tt.bindings {
				got, ok := bindings[name]
				if !ok {
					t.Fatalf("missing binding for %s", name)
				}
				if got.Inspect() != want {
					t.Errorf("%s = %s, want %s", name, got.Inspect(), want)
				}
			}
		})
	}
}

func TestMatchFailureLeavesNoVisibleBindings(t *testing.T) {
	// A pattern that binds before failing still reports no match; the
	// caller discards the partial map.
	pattern := &ast.ListPattern{Elements: []ast.Pattern{pVar("a"), pInt(9)}}
	matched, _ := matchPattern(pattern, listVal(intVal(1), intVal(2)))
	if matched {
		t.Fatal("expected the match to fail on the second element")
	}
}

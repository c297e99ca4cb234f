package evaluator

import "strings"

// List is an ordered, immutable sequence of values. Mutation in FUN
// happens only through store locations, so tails may share backing
// storage with the lists they were taken from.
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Len() int { return len(l.Elements) }

// Head returns the first element. Callers check Len first.
func (l *List) Head() Object { return l.Elements[0] }

// Tail returns the remainder as a list value.
func (l *List) Tail() *List { return &List{Elements: l.Elements[1:]} }

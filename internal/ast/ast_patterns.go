package ast

import (
	"fmt"
	"strings"
)

// WildcardPattern matches any value and binds nothing.
type WildcardPattern struct{}

func (wp *WildcardPattern) patternNode()   {}
func (wp *WildcardPattern) String() string { return "_" }

// IdentifierPattern matches any value and binds it to the name.
type IdentifierPattern struct {
	Value string
}

func (ip *IdentifierPattern) patternNode()   {}
func (ip *IdentifierPattern) String() string { return ip.Value }

// IntegerPattern matches an equal integer value.
type IntegerPattern struct {
	Value int64
}

func (ip *IntegerPattern) patternNode()   {}
func (ip *IntegerPattern) String() string { return fmt.Sprintf("%d", ip.Value) }

// BooleanPattern matches an equal boolean value.
type BooleanPattern struct {
	Value bool
}

func (bp *BooleanPattern) patternNode()   {}
func (bp *BooleanPattern) String() string { return fmt.Sprintf("%t", bp.Value) }

// StringPattern matches an equal string value.
type StringPattern struct {
	Value string
}

func (sp *StringPattern) patternNode()   {}
func (sp *StringPattern) String() string { return fmt.Sprintf("%q", sp.Value) }

// ListPattern matches a list of exactly len(Elements) elements.
// An empty ListPattern matches only the empty list.
type ListPattern struct {
	Elements []Pattern
}

func (lp *ListPattern) patternNode() {}
func (lp *ListPattern) String() string {
	parts := make([]string, len(lp.Elements))
	for i, el := range lp.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ConsPattern matches a non-empty list, binding its first element and
// the remainder. Multi-head patterns like [a,b|t] arrive here already
// expanded to nested cons form by the normalizer.
type ConsPattern struct {
	Head Pattern
	Tail Pattern
}

func (cp *ConsPattern) patternNode() {}
func (cp *ConsPattern) String() string {
	return "[" + cp.Head.String() + "|" + cp.Tail.String() + "]"
}

// ConstructorPattern matches a constructor value with the same name
// and argument count, then matches every argument pairwise.
type ConstructorPattern struct {
	Name     string
	Elements []Pattern
}

func (cp *ConstructorPattern) patternNode() {}
func (cp *ConstructorPattern) String() string {
	if len(cp.Elements) == 0 {
		return cp.Name
	}
	parts := make([]string, len(cp.Elements))
	for i, el := range cp.Elements {
		parts[i] = el.String()
	}
	return cp.Name + "(" + strings.Join(parts, ", ") + ")"
}

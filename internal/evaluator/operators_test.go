package evaluator

import (
	"testing"

	"github.com/Bhargee/KRewrites/internal/ast"
)

func infixNode(op string) *ast.InfixExpression {
	return &ast.InfixExpression{Operator: op}
}

func TestApplyIntegerInfix(t *testing.T) {
	tests := []struct {
		op    string
		left  int64
		right int64
		want  string
	}{
		{"+", 2, 3, "5"},
		{"-", 2, 3, "-1"},
		{"*", 4, 3, "12"},
		{"/", 7, 2, "3"},
		{"%", 7, 2, "1"},
		{"<", 1, 2, "true"},
		{"<=", 2, 2, "true"},
		{">", 1, 2, "false"},
		{">=", 3, 2, "true"},
		{"==", 2, 2, "true"},
		{"!=", 2, 2, "false"},
	}
	for _, tt := range tests {
		result, stuck := applyInfix(infixNode(tt.op), intVal(tt.left), intVal(tt.right))
		if stuck != nil {
			t.Fatalf("%d %s %d: unexpected stuck %v", tt.left, tt.op, tt.right, stuck)
		}
		if result.Inspect() != tt.want {
			t.Errorf("%d %s %d = %s, want %s", tt.left, tt.op, tt.right, result.Inspect(), tt.want)
		}
	}
}

func TestApplyInfixStuckKinds(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		left  Object
		right Object
		kind  StuckKind
	}{
		{"division by zero", "/", intVal(1), intVal(0), DivisionByZero},
		{"modulo by zero", "%", intVal(1), intVal(0), ModuloByZero},
		{"arithmetic on booleans", "+", TRUE, FALSE, TypeMismatch},
		{"mixed arithmetic operands", "*", intVal(1), strVal("x"), TypeMismatch},
		{"comparing closures", "==", &Closure{}, &Closure{}, TypeMismatch},
		{"comparing a continuation", "!=", intVal(1), &Continuation{}, TypeMismatch},
		{"concat on integers", "^", intVal(1), intVal(2), TypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stuck := applyInfix(infixNode(tt.op), tt.left, tt.right)
			if stuck == nil {
				t.Fatal("expected stuck state")
			}
			if stuck.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", stuck.Kind, tt.kind)
			}
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	tests := []struct {
		name string
		a    Object
		b    Object
		want string
	}{
		{"equal nested lists", listVal(intVal(1), listVal(intVal(2))), listVal(intVal(1), listVal(intVal(2))), "true"},
		{"unequal list lengths", listVal(intVal(1)), listVal(intVal(1), intVal(2)), "false"},
		{"equal constructors", dataVal("Pair", intVal(1), intVal(2)), dataVal("Pair", intVal(1), intVal(2)), "true"},
		{"unequal constructor fields", dataVal("Pair", intVal(1), intVal(2)), dataVal("Pair", intVal(1), intVal(3)), "false"},
		{"different constructor names", dataVal("Nil"), dataVal("None"), "false"},
		{"cross-type comparison", intVal(1), strVal("1"), "false"},
		{"locations compare by address", Location(3), Location(3), "true"},
		{"distinct locations differ", Location(3), Location(4), "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, stuck := applyInfix(infixNode("=="), tt.a, tt.b)
			if stuck != nil {
				t.Fatalf("unexpected stuck %v", stuck)
			}
			if result.Inspect() != tt.want {
				t.Fatalf("got %s, want %s", result.Inspect(), tt.want)
			}
		})
	}
}

func TestClosureInsideStructureIsNotComparable(t *testing.T) {
	a := listVal(intVal(1), &Closure{})
	b := listVal(intVal(1), &Closure{})
	_, stuck := applyInfix(infixNode("=="), a, b)
	if stuck == nil || stuck.Kind != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", stuck)
	}
}

func TestApplyPrefix(t *testing.T) {
	result, stuck := applyPrefix(&ast.PrefixExpression{Operator: "-"}, intVal(7))
	if stuck != nil || result.Inspect() != "-7" {
		t.Fatalf("negation: got %v, %v", result, stuck)
	}

	result, stuck = applyPrefix(&ast.PrefixExpression{Operator: "!"}, FALSE)
	if stuck != nil || result.Inspect() != "true" {
		t.Fatalf("not: got %v, %v", result, stuck)
	}

	_, stuck = applyPrefix(&ast.PrefixExpression{Operator: "-"}, TRUE)
	if stuck == nil || stuck.Kind != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", stuck)
	}
}

package evaluator

import (
	"github.com/Bhargee/KRewrites/internal/ast"
)

// applyInfix evaluates a built-in binary operator over two values.
// Both operands are already evaluated; && and || reach this point only
// when the left operand did not decide the result.
func applyInfix(node *ast.InfixExpression, left, right Object) (Object, *Stuck) {
	switch node.Operator {
	case "+", "-", "*", "/", "%", "<", "<=", ">", ">=":
		return applyIntegerInfix(node, left, right)
	case "==", "!=":
		eq, comparable := objectsEqual(left, right)
		if !comparable {
			return nil, newStuck(TypeMismatch, node,
				"cannot compare %s and %s", left.Type(), right.Type())
		}
		if node.Operator == "!=" {
			eq = !eq
		}
		return nativeBoolToBooleanObject(eq), nil
	case "&&", "||":
		boolVal, ok := right.(*Boolean)
		if !ok {
			return nil, newStuck(TypeMismatch, node,
				"operator %s applied to %s", node.Operator, right.Type())
		}
		return boolVal, nil
	case "^":
		l, lok := left.(*String)
		r, rok := right.(*String)
		if !lok || !rok {
			return nil, newStuck(TypeMismatch, node,
				"operator ^ applied to %s and %s", left.Type(), right.Type())
		}
		return &String{Value: l.Value + r.Value}, nil
	}
	return nil, newStuck(TypeMismatch, node, "unknown operator %s", node.Operator)
}

func applyIntegerInfix(node *ast.InfixExpression, left, right Object) (Object, *Stuck) {
	l, lok := left.(*Integer)
	r, rok := right.(*Integer)
	if !lok || !rok {
		return nil, newStuck(TypeMismatch, node,
			"operator %s applied to %s and %s", node.Operator, left.Type(), right.Type())
	}

	switch node.Operator {
	case "+":
		return &Integer{Value: l.Value + r.Value}, nil
	case "-":
		return &Integer{Value: l.Value - r.Value}, nil
	case "*":
		return &Integer{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, newStuck(DivisionByZero, node, "%d / 0", l.Value)
		}
		return &Integer{Value: l.Value / r.Value}, nil
	case "%":
		if r.Value == 0 {
			return nil, newStuck(ModuloByZero, node, "%d %% 0", l.Value)
		}
		return &Integer{Value: l.Value % r.Value}, nil
	case "<":
		return nativeBoolToBooleanObject(l.Value < r.Value), nil
	case "<=":
		return nativeBoolToBooleanObject(l.Value <= r.Value), nil
	case ">":
		return nativeBoolToBooleanObject(l.Value > r.Value), nil
	case ">=":
		return nativeBoolToBooleanObject(l.Value >= r.Value), nil
	}
	return nil, newStuck(TypeMismatch, node, "unknown operator %s", node.Operator)
}

func applyPrefix(node *ast.PrefixExpression, right Object) (Object, *Stuck) {
	switch node.Operator {
	case "-":
		intVal, ok := right.(*Integer)
		if !ok {
			return nil, newStuck(TypeMismatch, node, "operator - applied to %s", right.Type())
		}
		return &Integer{Value: -intVal.Value}, nil
	case "!":
		boolVal, ok := right.(*Boolean)
		if !ok {
			return nil, newStuck(TypeMismatch, node, "operator ! applied to %s", right.Type())
		}
		return nativeBoolToBooleanObject(!boolVal.Value), nil
	}
	return nil, newStuck(TypeMismatch, node, "unknown operator %s", node.Operator)
}

// objectsEqual compares two values structurally. Closures and
// continuations have no defined equality; comparing them reports
// not comparable and the caller gets stuck.
func objectsEqual(a, b Object) (equal bool, comparable bool) {
	if !comparableKind(a) || !comparableKind(b) {
		return false, false
	}

	switch av := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Value == bv.Value, true
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value, true
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value, true
	case Location:
		bv, ok := b.(Location)
		return ok && av == bv, true
	case *List:
		bv, ok := b.(*List)
		if !ok || av.Len() != bv.Len() {
			return false, true
		}
		for i := range av.Elements {
			eq, cmp := objectsEqual(av.Elements[i], bv.Elements[i])
			if !cmp {
				return false, false
			}
			if !eq {
				return false, true
			}
		}
		return true, true
	case *DataInstance:
		bv, ok := b.(*DataInstance)
		if !ok || av.Name != bv.Name || len(av.Fields) != len(bv.Fields) {
			return false, true
		}
		for i := range av.Fields {
			eq, cmp := objectsEqual(av.Fields[i], bv.Fields[i])
			if !cmp {
				return false, false
			}
			if !eq {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

func comparableKind(obj Object) bool {
	switch obj.(type) {
	case *Closure, *Continuation:
		return false
	}
	return true
}

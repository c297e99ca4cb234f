// Package encoding reads and writes canonical AST documents.
//
// A document is YAML (or JSON, which YAML subsumes) where every node
// is a single-key mapping tagged with its variant, e.g.
//
//	let:
//	  bindings:
//	    - name: x
//	      value: {int: 5}
//	  body: {name: x}
//
// The codec performs no normalization: multi-argument functions,
// multi-head list patterns, try/catch and datatype forms must already
// be eliminated by the producer.
package encoding

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Bhargee/KRewrites/internal/ast"
	"github.com/Bhargee/KRewrites/internal/config"
)

// DecodeExpression parses a canonical AST document into an expression
// tree. Malformed documents are host input errors, not evaluation
// stuck states.
func DecodeExpression(src []byte) (ast.Expression, error) {
	var doc interface{}
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("parse AST document: %w", err)
	}
	return expressionFromDoc(doc)
}

func expressionFromDoc(doc interface{}) (ast.Expression, error) {
	tag, body, err := taggedNode(doc)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "int":
		v, ok := asInt64(body)
		if !ok {
			return nil, fmt.Errorf("int node needs an integer, got %v", body)
		}
		return &ast.IntegerLiteral{Value: v}, nil

	case "bool":
		v, ok := body.(bool)
		if !ok {
			return nil, fmt.Errorf("bool node needs a boolean, got %v", body)
		}
		return &ast.BooleanLiteral{Value: v}, nil

	case "string":
		v, ok := body.(string)
		if !ok {
			return nil, fmt.Errorf("string node needs a string, got %v", body)
		}
		return &ast.StringLiteral{Value: v}, nil

	case "name":
		v, ok := body.(string)
		if !ok {
			return nil, fmt.Errorf("name node needs a string, got %v", body)
		}
		return &ast.Identifier{Value: v}, nil

	case "if":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		cond, err := fieldExpression(fields, "if", "cond")
		if err != nil {
			return nil, err
		}
		cons, err := fieldExpression(fields, "if", "then")
		if err != nil {
			return nil, err
		}
		alt, err := fieldExpression(fields, "if", "else")
		if err != nil {
			return nil, err
		}
		return &ast.IfExpression{Condition: cond, Consequence: cons, Alternative: alt}, nil

	case "list":
		elems, err := expressionList(tag, body)
		if err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Elements: elems}, nil

	case "ctor":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		name, ok := fields["name"].(string)
		if !ok {
			return nil, fmt.Errorf("ctor node needs a name")
		}
		var args []ast.Expression
		if raw, present := fields["args"]; present {
			args, err = expressionList("ctor args", raw)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ConstructorExpression{Name: name, Arguments: args}, nil

	case "fun":
		rawCases, ok := body.([]interface{})
		if !ok {
			return nil, fmt.Errorf("fun node needs a case sequence")
		}
		if len(rawCases) == 0 {
			return nil, fmt.Errorf("fun node needs at least one case")
		}
		cases := make([]ast.FunctionCase, len(rawCases))
		for i, rawCase := range rawCases {
			fields, err := mapping("fun case", rawCase)
			if err != nil {
				return nil, err
			}
			pat, err := patternFromDoc(fields["pattern"])
			if err != nil {
				return nil, err
			}
			bodyExpr, err := fieldExpression(fields, "fun case", "body")
			if err != nil {
				return nil, err
			}
			cases[i] = ast.FunctionCase{Pattern: pat, Body: bodyExpr}
		}
		return &ast.FunctionLiteral{Cases: cases}, nil

	case "call":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		fn, err := fieldExpression(fields, "call", "fn")
		if err != nil {
			return nil, err
		}
		arg, err := fieldExpression(fields, "call", "arg")
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Function: fn, Argument: arg}, nil

	case "let", "letrec":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		bindings, err := bindingsFromDoc(tag, fields["bindings"])
		if err != nil {
			return nil, err
		}
		bodyExpr, err := fieldExpression(fields, tag, "body")
		if err != nil {
			return nil, err
		}
		if tag == "let" {
			return &ast.LetExpression{Bindings: bindings, Body: bodyExpr}, nil
		}
		return &ast.LetrecExpression{Bindings: bindings, Body: bodyExpr}, nil

	case "ref":
		init, err := expressionFromDoc(body)
		if err != nil {
			return nil, err
		}
		return &ast.RefExpression{Init: init}, nil

	case "addr":
		name, ok := body.(string)
		if !ok {
			return nil, fmt.Errorf("addr node needs a name, got %v", body)
		}
		return &ast.AddrExpression{Name: &ast.Identifier{Value: name}}, nil

	case "deref":
		inner, err := expressionFromDoc(body)
		if err != nil {
			return nil, err
		}
		return &ast.DerefExpression{Inner: inner}, nil

	case "assign":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		target, err := fieldExpression(fields, "assign", "target")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpression(fields, "assign", "value")
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpression{Target: target, Value: value}, nil

	case "seq":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		first, err := fieldExpression(fields, "seq", "first")
		if err != nil {
			return nil, err
		}
		rest, err := fieldExpression(fields, "seq", "rest")
		if err != nil {
			return nil, err
		}
		return &ast.SequenceExpression{First: first, Rest: rest}, nil

	case "callcc":
		fn, err := expressionFromDoc(body)
		if err != nil {
			return nil, err
		}
		return &ast.CallccExpression{Function: fn}, nil

	case "infix":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		op, ok := fields["op"].(string)
		if !ok || !config.IsInfixOperator(op) {
			return nil, fmt.Errorf("infix node has unknown operator %v", fields["op"])
		}
		left, err := fieldExpression(fields, "infix", "left")
		if err != nil {
			return nil, err
		}
		right, err := fieldExpression(fields, "infix", "right")
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpression{Operator: op, Left: left, Right: right}, nil

	case "prefix":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		op, ok := fields["op"].(string)
		if !ok || !config.IsPrefixOperator(op) {
			return nil, fmt.Errorf("prefix node has unknown operator %v", fields["op"])
		}
		right, err := fieldExpression(fields, "prefix", "right")
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Operator: op, Right: right}, nil
	}

	return nil, fmt.Errorf("unknown expression tag %q", tag)
}

func patternFromDoc(doc interface{}) (ast.Pattern, error) {
	tag, body, err := taggedNode(doc)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}

	switch tag {
	case "wildcard":
		return &ast.WildcardPattern{}, nil

	case "var":
		v, ok := body.(string)
		if !ok {
			return nil, fmt.Errorf("var pattern needs a name, got %v", body)
		}
		return &ast.IdentifierPattern{Value: v}, nil

	case "int":
		v, ok := asInt64(body)
		if !ok {
			return nil, fmt.Errorf("int pattern needs an integer, got %v", body)
		}
		return &ast.IntegerPattern{Value: v}, nil

	case "bool":
		v, ok := body.(bool)
		if !ok {
			return nil, fmt.Errorf("bool pattern needs a boolean, got %v", body)
		}
		return &ast.BooleanPattern{Value: v}, nil

	case "string":
		v, ok := body.(string)
		if !ok {
			return nil, fmt.Errorf("string pattern needs a string, got %v", body)
		}
		return &ast.StringPattern{Value: v}, nil

	case "list":
		rawElems, ok := body.([]interface{})
		if !ok {
			if body == nil {
				return &ast.ListPattern{}, nil
			}
			return nil, fmt.Errorf("list pattern needs a sequence, got %v", body)
		}
		elems := make([]ast.Pattern, len(rawElems))
		for i, raw := range rawElems {
			elems[i], err = patternFromDoc(raw)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ListPattern{Elements: elems}, nil

	case "cons":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		head, err := patternFromDoc(fields["head"])
		if err != nil {
			return nil, err
		}
		tail, err := patternFromDoc(fields["tail"])
		if err != nil {
			return nil, err
		}
		return &ast.ConsPattern{Head: head, Tail: tail}, nil

	case "ctor":
		fields, err := mapping(tag, body)
		if err != nil {
			return nil, err
		}
		name, ok := fields["name"].(string)
		if !ok {
			return nil, fmt.Errorf("ctor pattern needs a name")
		}
		var elems []ast.Pattern
		if raw, present := fields["elems"]; present {
			rawElems, ok := raw.([]interface{})
			if !ok {
				return nil, fmt.Errorf("ctor pattern elems need a sequence")
			}
			elems = make([]ast.Pattern, len(rawElems))
			for i, rawElem := range rawElems {
				elems[i], err = patternFromDoc(rawElem)
				if err != nil {
					return nil, err
				}
			}
		}
		return &ast.ConstructorPattern{Name: name, Elements: elems}, nil
	}

	return nil, fmt.Errorf("unknown pattern tag %q", tag)
}

func bindingsFromDoc(binder string, doc interface{}) ([]ast.LetBinding, error) {
	rawBindings, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s node needs a binding sequence", binder)
	}
	bindings := make([]ast.LetBinding, len(rawBindings))
	for i, raw := range rawBindings {
		fields, err := mapping(binder+" binding", raw)
		if err != nil {
			return nil, err
		}
		var target ast.Expression
		if name, ok := fields["name"].(string); ok {
			target = &ast.Identifier{Value: name}
		} else if rawTarget, present := fields["target"]; present {
			target, err = expressionFromDoc(rawTarget)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("%s binding needs a name or target", binder)
		}
		value, err := fieldExpression(fields, binder+" binding", "value")
		if err != nil {
			return nil, err
		}
		bindings[i] = ast.LetBinding{Target: target, Value: value}
	}
	return bindings, nil
}

func taggedNode(doc interface{}) (string, interface{}, error) {
	m, ok := doc.(map[string]interface{})
	if !ok {
		return "", nil, fmt.Errorf("node must be a single-key mapping, got %T", doc)
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("node must have exactly one tag, got %d keys", len(m))
	}
	for tag, body := range m {
		return tag, body, nil
	}
	return "", nil, fmt.Errorf("empty node")
}

func mapping(context string, doc interface{}) (map[string]interface{}, error) {
	m, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s needs a mapping, got %T", context, doc)
	}
	return m, nil
}

func fieldExpression(fields map[string]interface{}, context, key string) (ast.Expression, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%s node is missing %q", context, key)
	}
	expr, err := expressionFromDoc(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", context, key, err)
	}
	return expr, nil
}

func expressionList(context string, doc interface{}) ([]ast.Expression, error) {
	if doc == nil {
		return nil, nil
	}
	rawElems, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s needs a sequence, got %T", context, doc)
	}
	elems := make([]ast.Expression, len(rawElems))
	for i, raw := range rawElems {
		expr, err := expressionFromDoc(raw)
		if err != nil {
			return nil, err
		}
		elems[i] = expr
	}
	return elems, nil
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

package encoding

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Bhargee/KRewrites/internal/ast"
)

// EncodeExpression renders an expression tree back into a canonical
// AST document. Decode(Encode(x)) is structurally identical to x.
func EncodeExpression(expr ast.Expression) ([]byte, error) {
	doc, err := expressionToDoc(expr)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func expressionToDoc(expr ast.Expression) (interface{}, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return tag("int", node.Value), nil
	case *ast.BooleanLiteral:
		return tag("bool", node.Value), nil
	case *ast.StringLiteral:
		return tag("string", node.Value), nil
	case *ast.Identifier:
		return tag("name", node.Value), nil

	case *ast.IfExpression:
		cond, err := expressionToDoc(node.Condition)
		if err != nil {
			return nil, err
		}
		cons, err := expressionToDoc(node.Consequence)
		if err != nil {
			return nil, err
		}
		alt, err := expressionToDoc(node.Alternative)
		if err != nil {
			return nil, err
		}
		return tag("if", map[string]interface{}{"cond": cond, "then": cons, "else": alt}), nil

	case *ast.ListLiteral:
		elems, err := expressionsToDoc(node.Elements)
		if err != nil {
			return nil, err
		}
		return tag("list", elems), nil

	case *ast.ConstructorExpression:
		body := map[string]interface{}{"name": node.Name}
		if len(node.Arguments) > 0 {
			args, err := expressionsToDoc(node.Arguments)
			if err != nil {
				return nil, err
			}
			body["args"] = args
		}
		return tag("ctor", body), nil

	case *ast.FunctionLiteral:
		cases := make([]interface{}, len(node.Cases))
		for i, c := range node.Cases {
			pat, err := patternToDoc(c.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := expressionToDoc(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = map[string]interface{}{"pattern": pat, "body": body}
		}
		return tag("fun", cases), nil

	case *ast.CallExpression:
		fn, err := expressionToDoc(node.Function)
		if err != nil {
			return nil, err
		}
		arg, err := expressionToDoc(node.Argument)
		if err != nil {
			return nil, err
		}
		return tag("call", map[string]interface{}{"fn": fn, "arg": arg}), nil

	case *ast.LetExpression:
		return binderToDoc("let", node.Bindings, node.Body)
	case *ast.LetrecExpression:
		return binderToDoc("letrec", node.Bindings, node.Body)

	case *ast.RefExpression:
		init, err := expressionToDoc(node.Init)
		if err != nil {
			return nil, err
		}
		return tag("ref", init), nil

	case *ast.AddrExpression:
		return tag("addr", node.Name.Value), nil

	case *ast.DerefExpression:
		inner, err := expressionToDoc(node.Inner)
		if err != nil {
			return nil, err
		}
		return tag("deref", inner), nil

	case *ast.AssignExpression:
		target, err := expressionToDoc(node.Target)
		if err != nil {
			return nil, err
		}
		value, err := expressionToDoc(node.Value)
		if err != nil {
			return nil, err
		}
		return tag("assign", map[string]interface{}{"target": target, "value": value}), nil

	case *ast.SequenceExpression:
		first, err := expressionToDoc(node.First)
		if err != nil {
			return nil, err
		}
		rest, err := expressionToDoc(node.Rest)
		if err != nil {
			return nil, err
		}
		return tag("seq", map[string]interface{}{"first": first, "rest": rest}), nil

	case *ast.CallccExpression:
		fn, err := expressionToDoc(node.Function)
		if err != nil {
			return nil, err
		}
		return tag("callcc", fn), nil

	case *ast.InfixExpression:
		left, err := expressionToDoc(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := expressionToDoc(node.Right)
		if err != nil {
			return nil, err
		}
		return tag("infix", map[string]interface{}{"op": node.Operator, "left": left, "right": right}), nil

	case *ast.PrefixExpression:
		right, err := expressionToDoc(node.Right)
		if err != nil {
			return nil, err
		}
		return tag("prefix", map[string]interface{}{"op": node.Operator, "right": right}), nil
	}

	return nil, fmt.Errorf("cannot encode %T", expr)
}

func patternToDoc(pat ast.Pattern) (interface{}, error) {
	switch node := pat.(type) {
	case *ast.WildcardPattern:
		return tag("wildcard", nil), nil
	case *ast.IdentifierPattern:
		return tag("var", node.Value), nil
	case *ast.IntegerPattern:
		return tag("int", node.Value), nil
	case *ast.BooleanPattern:
		return tag("bool", node.Value), nil
	case *ast.StringPattern:
		return tag("string", node.Value), nil

	case *ast.ListPattern:
		elems := make([]interface{}, len(node.Elements))
		for i, el := range node.Elements {
			doc, err := patternToDoc(el)
			if err != nil {
				return nil, err
			}
			elems[i] = doc
		}
		return tag("list", elems), nil

	case *ast.ConsPattern:
		head, err := patternToDoc(node.Head)
		if err != nil {
			return nil, err
		}
		tail, err := patternToDoc(node.Tail)
		if err != nil {
			return nil, err
		}
		return tag("cons", map[string]interface{}{"head": head, "tail": tail}), nil

	case *ast.ConstructorPattern:
		body := map[string]interface{}{"name": node.Name}
		if len(node.Elements) > 0 {
			elems := make([]interface{}, len(node.Elements))
			for i, el := range node.Elements {
				doc, err := patternToDoc(el)
				if err != nil {
					return nil, err
				}
				elems[i] = doc
			}
			body["elems"] = elems
		}
		return tag("ctor", body), nil
	}

	return nil, fmt.Errorf("cannot encode pattern %T", pat)
}

func binderToDoc(keyword string, bindings []ast.LetBinding, body ast.Expression) (interface{}, error) {
	docBindings := make([]interface{}, len(bindings))
	for i, b := range bindings {
		binding := map[string]interface{}{}
		if ident, ok := b.Target.(*ast.Identifier); ok {
			binding["name"] = ident.Value
		} else {
			target, err := expressionToDoc(b.Target)
			if err != nil {
				return nil, err
			}
			binding["target"] = target
		}
		value, err := expressionToDoc(b.Value)
		if err != nil {
			return nil, err
		}
		binding["value"] = value
		docBindings[i] = binding
	}
	docBody, err := expressionToDoc(body)
	if err != nil {
		return nil, err
	}
	return tag(keyword, map[string]interface{}{"bindings": docBindings, "body": docBody}), nil
}

func expressionsToDoc(exprs []ast.Expression) ([]interface{}, error) {
	docs := make([]interface{}, len(exprs))
	for i, expr := range exprs {
		doc, err := expressionToDoc(expr)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return docs, nil
}

func tag(name string, body interface{}) map[string]interface{} {
	return map[string]interface{}{name: body}
}

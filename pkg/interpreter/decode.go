package interpreter

import (
	"encoding/json"
	"fmt"

	"pyrite/interpreter-go/pkg/ast"
)

// DecodeProgram parses a JSON-encoded syntax tree. The document may be a
// Program node or any single statement, which is wrapped in a one-statement
// program.
func DecodeProgram(data []byte) (*ast.Program, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	if prog, ok := node.(*ast.Program); ok {
		return prog, nil
	}
	stmt, ok := node.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("top-level node %s is not a statement", node.NodeType())
	}
	return ast.NewProgram([]ast.Statement{stmt}), nil
}

func decodeNode(node map[string]any) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeProgram:
		body, err := decodeStatements(node["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(body), nil
	case ast.NodeNumberLiteral:
		val, ok := node["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("number literal requires a numeric value")
		}
		return ast.NewNumberLiteral(val), nil
	case ast.NodeBooleanLiteral:
		val, _ := node["value"].(bool)
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeStringLiteral:
		val, _ := node["value"].(string)
		return ast.NewStringLiteral(val), nil
	case ast.NodeNoneLiteral:
		return ast.NewNoneLiteral(), nil
	case ast.NodeListLiteral:
		elements, err := decodeExpressions(node["elements"])
		if err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elements), nil
	case ast.NodeTupleLiteral:
		elements, err := decodeExpressions(node["elements"])
		if err != nil {
			return nil, err
		}
		return ast.NewTupleLiteral(elements), nil
	case ast.NodeVariable:
		name, _ := node["name"].(string)
		return ast.NewVariable(name), nil
	case ast.NodeBinaryOperation:
		op, _ := node["operator"].(string)
		left, err := decodeExpression(node["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(node["right"])
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOperation(op, left, right), nil
	case ast.NodeNotExpression:
		operand, err := decodeExpression(node["operand"])
		if err != nil {
			return nil, err
		}
		return ast.NewNotExpression(operand), nil
	case ast.NodeAndExpression:
		left, err := decodeExpression(node["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(node["right"])
		if err != nil {
			return nil, err
		}
		return ast.NewAndExpression(left, right), nil
	case ast.NodeOrExpression:
		left, err := decodeExpression(node["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(node["right"])
		if err != nil {
			return nil, err
		}
		return ast.NewOrExpression(left, right), nil
	case ast.NodeAssignment:
		name, _ := node["name"].(string)
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(name, value), nil
	case ast.NodeIfStatement:
		condition, err := decodeExpression(node["condition"])
		if err != nil {
			return nil, err
		}
		then, err := decodeStatements(node["then"])
		if err != nil {
			return nil, err
		}
		els, err := decodeStatements(node["else"])
		if err != nil {
			return nil, err
		}
		return ast.NewIfStatement(condition, then, els), nil
	case ast.NodeWhileLoop:
		condition, err := decodeExpression(node["condition"])
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(node["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(condition, body), nil
	case ast.NodeForLoop:
		variable, _ := node["var"].(string)
		iterable, err := decodeExpression(node["iterable"])
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(node["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewForLoop(variable, iterable, body), nil
	case ast.NodeFunctionDefinition:
		return decodeFunctionDefinition(node)
	case ast.NodeClassDefinition:
		name, _ := node["name"].(string)
		methodsRaw, _ := node["methods"].([]any)
		methods := make([]*ast.FunctionDefinition, 0, len(methodsRaw))
		for _, raw := range methodsRaw {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid method entry %T in class '%s'", raw, name)
			}
			method, err := decodeFunctionDefinition(child)
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)
		}
		return ast.NewClassDefinition(name, methods), nil
	case ast.NodeFunctionCall:
		callee, err := decodeExpression(node["callee"])
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(node["args"])
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionCall(callee, args), nil
	case ast.NodeAttributeAccess:
		object, err := decodeExpression(node["object"])
		if err != nil {
			return nil, err
		}
		attr, _ := node["attr"].(string)
		return ast.NewAttributeAccess(object, attr), nil
	case ast.NodeAttributeAssignment:
		object, err := decodeExpression(node["object"])
		if err != nil {
			return nil, err
		}
		attr, _ := node["attr"].(string)
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewAttributeAssignment(object, attr, value), nil
	case ast.NodeSubscriptExpression:
		collection, err := decodeExpression(node["collection"])
		if err != nil {
			return nil, err
		}
		index, err := decodeExpression(node["index"])
		if err != nil {
			return nil, err
		}
		return ast.NewSubscriptExpression(collection, index), nil
	case ast.NodeInExpression:
		element, err := decodeExpression(node["element"])
		if err != nil {
			return nil, err
		}
		container, err := decodeExpression(node["container"])
		if err != nil {
			return nil, err
		}
		return ast.NewInExpression(element, container), nil
	case ast.NodeReturnStatement:
		if node["value"] == nil {
			return ast.NewReturnStatement(nil), nil
		}
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(value), nil
	case ast.NodeBreakStatement:
		return ast.NewBreakStatement(), nil
	case ast.NodeContinueStatement:
		return ast.NewContinueStatement(), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeFunctionDefinition(node map[string]any) (*ast.FunctionDefinition, error) {
	name, _ := node["name"].(string)
	paramsRaw, _ := node["params"].([]any)
	params := make([]string, 0, len(paramsRaw))
	for _, raw := range paramsRaw {
		param, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("invalid parameter %T in function '%s'", raw, name)
		}
		params = append(params, param)
	}
	variadic, _ := node["variadic"].(string)
	body, err := decodeStatements(node["body"])
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDefinition(name, params, variadic, body), nil
}

func decodeStatements(raw any) ([]ast.Statement, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected statement list, got %T", raw)
	}
	stmts := make([]ast.Statement, 0, len(items))
	for _, item := range items {
		child, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid statement entry %T", item)
		}
		node, err := decodeNode(child)
		if err != nil {
			return nil, err
		}
		stmt, ok := node.(ast.Statement)
		if !ok {
			return nil, fmt.Errorf("node %s is not a statement", node.NodeType())
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeExpressions(raw any) ([]ast.Expression, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected expression list, got %T", raw)
	}
	exprs := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		expr, err := decodeExpression(item)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeExpression(raw any) (ast.Expression, error) {
	child, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected expression node, got %T", raw)
	}
	node, err := decodeNode(child)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("node %s is not an expression", node.NodeType())
	}
	return expr, nil
}

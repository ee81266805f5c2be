package interpreter

import (
	"math"
	"strings"

	"pyrite/interpreter-go/pkg/ast"
	"pyrite/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Pyrite syntax trees.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter with an empty root environment.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewEnvironment(nil)}
}

// GlobalEnvironment returns the interpreter's root frame.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// RegisterBuiltins merges a primitive-procedure table into the root frame.
// Operator symbols resolve through the same lookup path as any other name,
// so user code may shadow them.
func (i *Interpreter) RegisterBuiltins(table map[string]runtime.Value) {
	for name, value := range table {
		i.global.Define(name, value)
	}
}

// EvaluateProgram executes a program in the root environment and returns
// the last statement's value. Control signals reaching the top level are
// faults: there is no enclosing loop or call boundary to absorb them.
func (i *Interpreter) EvaluateProgram(prog *ast.Program) (runtime.Value, error) {
	val, err := i.evaluateSequence(prog.Body, i.global)
	if err != nil {
		if isControlSignal(err) {
			switch err.(type) {
			case returnSignal:
				return nil, runtime.NewError(runtime.ErrInvalidValue, "return outside function")
			default:
				return nil, runtime.NewError(runtime.ErrNoEnclosingLoop, "'%s' outside loop", err.Error())
			}
		}
		return nil, err
	}
	return val, nil
}

// evaluateSequence runs statements in order in one frame and yields the
// last value (None when empty). The first failure or control signal stops
// the sequence and propagates unchanged.
func (i *Interpreter) evaluateSequence(stmts []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NoneValue{}
	for _, stmt := range stmts {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.NoneLiteral:
		return runtime.NoneValue{}, nil
	case *ast.ListLiteral:
		elements, err := i.evaluateElements(n.Elements, env)
		if err != nil {
			return nil, err
		}
		return &runtime.ListValue{Elements: elements}, nil
	case *ast.TupleLiteral:
		elements, err := i.evaluateElements(n.Elements, env)
		if err != nil {
			return nil, err
		}
		return runtime.TupleValue{Elements: elements}, nil
	case *ast.Variable:
		return env.Get(n.Name)
	case *ast.BinaryOperation:
		// Reuse one calling convention for arithmetic, comparison, etc.:
		// the operator symbol resolves to whatever the name is bound to.
		call := ast.NewFunctionCall(ast.NewVariable(n.Operator), []ast.Expression{n.Left, n.Right})
		return i.evaluateCall(call, env)
	case *ast.Assignment:
		value, err := i.evaluateStatement(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Define(n.Name, value)
		return value, nil
	case *ast.IfStatement:
		return i.evaluateIf(n, env)
	case *ast.NotExpression:
		operand, err := i.evaluateStatement(n.Operand, env)
		if err != nil {
			return nil, err
		}
		if err := checkLogicalOperand(operand); err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: !runtime.Truthy(operand)}, nil
	case *ast.AndExpression:
		return i.evaluateLogical(n.Left, n.Right, false, env)
	case *ast.OrExpression:
		return i.evaluateLogical(n.Left, n.Right, true, env)
	case *ast.WhileLoop:
		return i.evaluateWhile(n, env)
	case *ast.ForLoop:
		return i.evaluateFor(n, env)
	case *ast.FunctionDefinition:
		closure := &runtime.FunctionValue{Decl: n, Closure: env}
		env.Define(n.Name, closure)
		return runtime.NoneValue{}, nil
	case *ast.ClassDefinition:
		return i.evaluateClassDefinition(n, env)
	case *ast.FunctionCall:
		return i.evaluateCall(n, env)
	case *ast.AttributeAccess:
		return i.evaluateAttributeAccess(n, env)
	case *ast.AttributeAssignment:
		return i.evaluateAttributeAssignment(n, env)
	case *ast.SubscriptExpression:
		return i.evaluateSubscript(n, env)
	case *ast.InExpression:
		return i.evaluateIn(n, env)
	case *ast.ReturnStatement:
		var result runtime.Value = runtime.NoneValue{}
		if n.Value != nil {
			val, err := i.evaluateStatement(n.Value, env)
			if err != nil {
				return nil, err
			}
			result = val
		}
		return nil, returnSignal{value: result}
	case *ast.BreakStatement:
		return nil, breakSignal{}
	case *ast.ContinueStatement:
		return nil, continueSignal{}
	default:
		return nil, runtime.NewError(runtime.ErrUnsupportedNode, "unsupported node type: %s", node.NodeType())
	}
}

func (i *Interpreter) evaluateElements(exprs []ast.Expression, env *runtime.Environment) ([]runtime.Value, error) {
	values := make([]runtime.Value, 0, len(exprs))
	for _, expr := range exprs {
		val, err := i.evaluateStatement(expr, env)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}

// evaluateIf runs the selected branch in the enclosing frame; bindings made
// inside the branch stay visible afterwards.
func (i *Interpreter) evaluateIf(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateStatement(stmt.Condition, env)
	if err != nil {
		return nil, err
	}
	condBool, ok := cond.(runtime.BoolValue)
	if !ok {
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "if condition must be a bool, got %s", cond.Kind())
	}
	if condBool.Val {
		return i.evaluateSequence(stmt.Then, env)
	}
	return i.evaluateSequence(stmt.Else, env)
}

// evaluateLogical short-circuits: the left operand's truthiness decides
// whether the right operand is evaluated; the result is whichever operand
// decided the outcome, not a normalized bool.
func (i *Interpreter) evaluateLogical(left, right ast.Expression, isOr bool, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateStatement(left, env)
	if err != nil {
		return nil, err
	}
	if err := checkLogicalOperand(leftVal); err != nil {
		return nil, err
	}
	if runtime.Truthy(leftVal) == isOr {
		return leftVal, nil
	}
	rightVal, err := i.evaluateStatement(right, env)
	if err != nil {
		return nil, err
	}
	if err := checkLogicalOperand(rightVal); err != nil {
		return nil, err
	}
	return rightVal, nil
}

// Logical operators accept only data-like operands; functions, classes, and
// objects are rejected.
func checkLogicalOperand(v runtime.Value) error {
	switch v.Kind() {
	case runtime.KindBool, runtime.KindNumber, runtime.KindString, runtime.KindNone, runtime.KindList, runtime.KindTuple:
		return nil
	default:
		return runtime.NewError(runtime.ErrTypeMismatch, "unsupported operand kind for logical operator: %s", v.Kind())
	}
}

func (i *Interpreter) evaluateWhile(loop *ast.WhileLoop, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NoneValue{}
	for {
		cond, err := i.evaluateStatement(loop.Condition, env)
		if err != nil {
			return nil, err
		}
		condBool, ok := cond.(runtime.BoolValue)
		if !ok {
			return nil, runtime.NewError(runtime.ErrTypeMismatch, "while condition must be a bool, got %s", cond.Kind())
		}
		if !condBool.Val {
			return result, nil
		}
		val, err := i.evaluateSequence(loop.Body, env)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return result, nil
			case continueSignal:
				continue
			default:
				// Returning passes through to the call boundary.
				return nil, err
			}
		}
		result = val
	}
}

// evaluateFor iterates Lists and Tuples only. Strings are indexable and
// support `in`, but they are deliberately not iterable here.
func (i *Interpreter) evaluateFor(loop *ast.ForLoop, env *runtime.Environment) (runtime.Value, error) {
	iterable, err := i.evaluateStatement(loop.Iterable, env)
	if err != nil {
		return nil, err
	}
	var elements []runtime.Value
	switch it := iterable.(type) {
	case *runtime.ListValue:
		elements = it.Elements
	case runtime.TupleValue:
		elements = it.Elements
	default:
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "for-loop iterable must be a list or tuple, got %s", iterable.Kind())
	}
	var result runtime.Value = runtime.NoneValue{}
	for _, el := range elements {
		env.Define(loop.Var, el)
		val, err := i.evaluateSequence(loop.Body, env)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return result, nil
			case continueSignal:
				continue
			default:
				return nil, err
			}
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateClassDefinition(def *ast.ClassDefinition, env *runtime.Environment) (runtime.Value, error) {
	methods := make(map[string]*runtime.FunctionValue, len(def.Methods))
	for _, method := range def.Methods {
		// Methods close over the class-definition environment.
		methods[method.Name] = &runtime.FunctionValue{Decl: method, Closure: env}
	}
	class := &runtime.ClassValue{Name: def.Name, Methods: methods}
	env.Define(def.Name, class)
	return runtime.NoneValue{}, nil
}

// evaluateAttributeAccess resolves instance attributes before class
// methods; a method hit produces a freshly bound MethodValue.
func (i *Interpreter) evaluateAttributeAccess(expr *ast.AttributeAccess, env *runtime.Environment) (runtime.Value, error) {
	obj, err := i.evaluateStatement(expr.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.ObjectValue)
	if !ok {
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "only objects have attributes, got %s", obj.Kind())
	}
	if val, ok := instance.Attributes[expr.Attr]; ok {
		return val, nil
	}
	if method, ok := instance.Class.Methods[expr.Attr]; ok {
		return &runtime.MethodValue{Fn: method, Receiver: instance}, nil
	}
	return nil, runtime.NewError(runtime.ErrAttributeNotFound, "'%s' object has no attribute '%s'", instance.Class.Name, expr.Attr)
}

// evaluateAttributeAssignment writes the instance attribute map; the class
// definition is never mutated.
func (i *Interpreter) evaluateAttributeAssignment(stmt *ast.AttributeAssignment, env *runtime.Environment) (runtime.Value, error) {
	obj, err := i.evaluateStatement(stmt.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.ObjectValue)
	if !ok {
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "only objects have attributes, got %s", obj.Kind())
	}
	value, err := i.evaluateStatement(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	instance.Attributes[stmt.Attr] = value
	return value, nil
}

func (i *Interpreter) evaluateSubscript(expr *ast.SubscriptExpression, env *runtime.Environment) (runtime.Value, error) {
	collection, err := i.evaluateStatement(expr.Collection, env)
	if err != nil {
		return nil, err
	}
	indexVal, err := i.evaluateStatement(expr.Index, env)
	if err != nil {
		return nil, err
	}
	num, ok := indexVal.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "subscript index must be a number, got %s", indexVal.Kind())
	}
	idx := int(math.Trunc(num.Val))
	switch coll := collection.(type) {
	case *runtime.ListValue:
		resolved, err := resolveIndex(idx, len(coll.Elements))
		if err != nil {
			return nil, err
		}
		return coll.Elements[resolved], nil
	case runtime.TupleValue:
		resolved, err := resolveIndex(idx, len(coll.Elements))
		if err != nil {
			return nil, err
		}
		return coll.Elements[resolved], nil
	case runtime.StringValue:
		runes := []rune(coll.Val)
		resolved, err := resolveIndex(idx, len(runes))
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: string(runes[resolved])}, nil
	default:
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "subscript requires a list, tuple, or string, got %s", collection.Kind())
	}
}

// resolveIndex applies end-relative addressing for negative indexes.
func resolveIndex(idx, length int) (int, error) {
	resolved := idx
	if resolved < 0 {
		resolved += length
	}
	if resolved < 0 || resolved >= length {
		return 0, runtime.NewError(runtime.ErrIndexOutOfRange, "index %d out of range for length %d", idx, length)
	}
	return resolved, nil
}

// evaluateIn: structural membership for lists and tuples; substring test
// for strings, where a non-string element is simply false rather than an
// error, unlike subscript's strict index check.
func (i *Interpreter) evaluateIn(expr *ast.InExpression, env *runtime.Environment) (runtime.Value, error) {
	container, err := i.evaluateStatement(expr.Container, env)
	if err != nil {
		return nil, err
	}
	element, err := i.evaluateStatement(expr.Element, env)
	if err != nil {
		return nil, err
	}
	switch coll := container.(type) {
	case *runtime.ListValue:
		return runtime.BoolValue{Val: containsElement(coll.Elements, element)}, nil
	case runtime.TupleValue:
		return runtime.BoolValue{Val: containsElement(coll.Elements, element)}, nil
	case runtime.StringValue:
		sub, ok := element.(runtime.StringValue)
		if !ok {
			return runtime.BoolValue{Val: false}, nil
		}
		return runtime.BoolValue{Val: strings.Contains(coll.Val, sub.Val)}, nil
	default:
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "'in' requires a list, tuple, or string, got %s", container.Kind())
	}
}

func containsElement(elements []runtime.Value, element runtime.Value) bool {
	for _, el := range elements {
		if runtime.Equal(el, element) {
			return true
		}
	}
	return false
}


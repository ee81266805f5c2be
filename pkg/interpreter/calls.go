package interpreter

import (
	"pyrite/interpreter-go/pkg/ast"
	"pyrite/interpreter-go/pkg/runtime"
)

// initializerName is the reserved method invoked automatically on
// instantiation; its return value is always discarded.
const initializerName = "__init__"

// receiverName is the mandatory first parameter of every method.
const receiverName = "self"

// evaluateCall resolves the callee and arguments left to right, then
// dispatches on the callee's kind: class constructors, bound methods,
// host primitives, and user functions share this one path.
func (i *Interpreter) evaluateCall(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateStatement(call.Callee, env)
	if err != nil {
		return nil, err
	}
	args, err := i.evaluateElements(call.Args, env)
	if err != nil {
		return nil, err
	}
	switch fn := callee.(type) {
	case *runtime.ClassValue:
		return i.instantiate(fn, args)
	case *runtime.MethodValue:
		return i.invokeMethod(fn.Fn, fn.Receiver, args)
	case runtime.NativeFunctionValue:
		return fn.Impl(args)
	case *runtime.FunctionValue:
		return i.invokeFunction(fn, args)
	default:
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "%s value is not callable", callee.Kind())
	}
}

// instantiate allocates an empty-attribute object and, when the class
// declares an initializer, runs it against the new receiver, discarding
// the result.
func (i *Interpreter) instantiate(class *runtime.ClassValue, args []runtime.Value) (runtime.Value, error) {
	obj := &runtime.ObjectValue{Class: class, Attributes: make(map[string]runtime.Value)}
	if init, ok := class.Methods[initializerName]; ok {
		if _, err := i.invokeMethod(init, obj, args); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// invokeFunction runs the function-call protocol: the new frame's parent is
// the closure's captured frame, never the caller's.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	local := fn.Closure.Child()
	if err := bindArguments(fn.Decl, local, args, fn.Decl.Params); err != nil {
		return nil, err
	}
	return i.runBody(fn.Decl.Body, local)
}

// invokeMethod is the function-call protocol with the receiver bound to the
// reserved first parameter; the initializer's result is forced to None.
func (i *Interpreter) invokeMethod(fn *runtime.FunctionValue, receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
	decl := fn.Decl
	if len(decl.Params) == 0 || decl.Params[0] != receiverName {
		return nil, runtime.NewError(runtime.ErrMalformedMethod, "method '%s' must declare '%s' as its first parameter", decl.Name, receiverName)
	}
	local := fn.Closure.Child()
	local.Define(receiverName, receiver)
	if err := bindArguments(decl, local, args, decl.Params[1:]); err != nil {
		return nil, err
	}
	result, err := i.runBody(decl.Body, local)
	if err != nil {
		return nil, err
	}
	if decl.Name == initializerName {
		return runtime.NoneValue{}, nil
	}
	return result, nil
}

// bindArguments matches arguments to the declared parameters 1:1 in order;
// a variadic declaration collects the surplus into a fresh List.
func bindArguments(decl *ast.FunctionDefinition, local *runtime.Environment, args []runtime.Value, params []string) error {
	for idx, param := range params {
		if idx >= len(args) {
			return runtime.NewError(runtime.ErrMissingArgument, "missing argument '%s' for '%s'", param, decl.Name)
		}
		local.Define(param, args[idx])
	}
	if decl.Variadic != "" {
		rest := append([]runtime.Value(nil), args[len(params):]...)
		local.Define(decl.Variadic, &runtime.ListValue{Elements: rest})
	} else if len(args) > len(params) {
		return runtime.NewError(runtime.ErrTooManyArguments, "'%s' expects %d arguments, got %d", decl.Name, len(params), len(args))
	}
	return nil
}

// runBody executes a call body and absorbs the Returning signal. Breaking
// or Continuing reaching a call boundary means there was no enclosing loop
// inside the call, which is a fault.
func (i *Interpreter) runBody(body []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	result, err := i.evaluateSequence(body, env)
	if err != nil {
		switch sig := err.(type) {
		case returnSignal:
			return sig.value, nil
		case breakSignal:
			return nil, runtime.NewError(runtime.ErrNoEnclosingLoop, "'break' outside loop")
		case continueSignal:
			return nil, runtime.NewError(runtime.ErrNoEnclosingLoop, "'continue' outside loop")
		default:
			return nil, err
		}
	}
	return result, nil
}

// Package builtins supplies the host primitive table merged into the root
// frame. Operator symbols live here as ordinary callables: the evaluator
// desugars binary operations into calls, so `1 + 2` resolves "+" through
// the environment like any user-defined function.
package builtins

import (
	"fmt"
	"io"
	"math"
	"strings"

	"pyrite/interpreter-go/pkg/runtime"
)

// Table builds the primitive-procedure table. Print output goes to out.
func Table(out io.Writer) map[string]runtime.Value {
	table := map[string]runtime.Value{
		"+":     native("+", add),
		"-":     native("-", numericOp("-", func(a, b float64) (float64, error) { return a - b, nil })),
		"*":     native("*", numericOp("*", func(a, b float64) (float64, error) { return a * b, nil })),
		"/":     native("/", numericOp("/", divide)),
		"%":     native("%", numericOp("%", modulo)),
		"==":    native("==", equals(false)),
		"!=":    native("!=", equals(true)),
		"<":     native("<", comparison("<", func(c int) bool { return c < 0 })),
		"<=":    native("<=", comparison("<=", func(c int) bool { return c <= 0 })),
		">":     native(">", comparison(">", func(c int) bool { return c > 0 })),
		">=":    native(">=", comparison(">=", func(c int) bool { return c >= 0 })),
		"len":   native("len", length),
		"range": native("range", makeRange),
		"str":   native("str", stringify),
	}
	table["print"] = native("print", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = runtime.ToString(arg)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return runtime.NoneValue{}, nil
	})
	return table
}

func native(name string, impl runtime.NativeFunc) runtime.NativeFunctionValue {
	return runtime.NativeFunctionValue{Name: name, Impl: impl}
}

func wantArity(name string, args []runtime.Value, n int) error {
	if len(args) != n {
		return runtime.NewError(runtime.ErrInvalidValue, "'%s' expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

// add concatenates strings, lists, and tuples in addition to numbers.
func add(args []runtime.Value) (runtime.Value, error) {
	if err := wantArity("+", args, 2); err != nil {
		return nil, err
	}
	switch left := args[0].(type) {
	case runtime.NumberValue:
		right, ok := args[1].(runtime.NumberValue)
		if !ok {
			return nil, operandMismatch("+", args[0], args[1])
		}
		return runtime.NumberValue{Val: left.Val + right.Val}, nil
	case runtime.StringValue:
		right, ok := args[1].(runtime.StringValue)
		if !ok {
			return nil, operandMismatch("+", args[0], args[1])
		}
		return runtime.StringValue{Val: left.Val + right.Val}, nil
	case *runtime.ListValue:
		right, ok := args[1].(*runtime.ListValue)
		if !ok {
			return nil, operandMismatch("+", args[0], args[1])
		}
		joined := make([]runtime.Value, 0, len(left.Elements)+len(right.Elements))
		joined = append(joined, left.Elements...)
		joined = append(joined, right.Elements...)
		return &runtime.ListValue{Elements: joined}, nil
	case runtime.TupleValue:
		right, ok := args[1].(runtime.TupleValue)
		if !ok {
			return nil, operandMismatch("+", args[0], args[1])
		}
		joined := make([]runtime.Value, 0, len(left.Elements)+len(right.Elements))
		joined = append(joined, left.Elements...)
		joined = append(joined, right.Elements...)
		return runtime.TupleValue{Elements: joined}, nil
	default:
		return nil, operandMismatch("+", args[0], args[1])
	}
}

func numericOp(name string, op func(a, b float64) (float64, error)) runtime.NativeFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := wantArity(name, args, 2); err != nil {
			return nil, err
		}
		left, okL := args[0].(runtime.NumberValue)
		right, okR := args[1].(runtime.NumberValue)
		if !okL || !okR {
			return nil, operandMismatch(name, args[0], args[1])
		}
		result, err := op(left.Val, right.Val)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: result}, nil
	}
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, runtime.NewError(runtime.ErrDivisionByZero, "division by zero")
	}
	return a / b, nil
}

func modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, runtime.NewError(runtime.ErrDivisionByZero, "modulo by zero")
	}
	return math.Mod(a, b), nil
}

func equals(negate bool) runtime.NativeFunc {
	name := "=="
	if negate {
		name = "!="
	}
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := wantArity(name, args, 2); err != nil {
			return nil, err
		}
		eq := runtime.Equal(args[0], args[1])
		if negate {
			eq = !eq
		}
		return runtime.BoolValue{Val: eq}, nil
	}
}

// comparison orders numbers numerically and strings lexicographically.
func comparison(name string, accept func(cmp int) bool) runtime.NativeFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := wantArity(name, args, 2); err != nil {
			return nil, err
		}
		switch left := args[0].(type) {
		case runtime.NumberValue:
			right, ok := args[1].(runtime.NumberValue)
			if !ok {
				return nil, operandMismatch(name, args[0], args[1])
			}
			return runtime.BoolValue{Val: accept(compareFloats(left.Val, right.Val))}, nil
		case runtime.StringValue:
			right, ok := args[1].(runtime.StringValue)
			if !ok {
				return nil, operandMismatch(name, args[0], args[1])
			}
			return runtime.BoolValue{Val: accept(strings.Compare(left.Val, right.Val))}, nil
		default:
			return nil, operandMismatch(name, args[0], args[1])
		}
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func length(args []runtime.Value) (runtime.Value, error) {
	if err := wantArity("len", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *runtime.ListValue:
		return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
	case runtime.TupleValue:
		return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
	case runtime.StringValue:
		return runtime.NumberValue{Val: float64(len([]rune(v.Val)))}, nil
	default:
		return nil, runtime.NewError(runtime.ErrTypeMismatch, "'len' requires a list, tuple, or string, got %s", args[0].Kind())
	}
}

// makeRange mirrors the 1-3 argument range builtin, producing a List.
func makeRange(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, runtime.NewError(runtime.ErrInvalidValue, "'range' expects 1 to 3 arguments, got %d", len(args))
	}
	bounds := make([]float64, len(args))
	for i, arg := range args {
		num, ok := arg.(runtime.NumberValue)
		if !ok {
			return nil, runtime.NewError(runtime.ErrTypeMismatch, "'range' requires number arguments, got %s", arg.Kind())
		}
		bounds[i] = math.Trunc(num.Val)
	}
	start, stop, step := 0.0, bounds[0], 1.0
	if len(args) >= 2 {
		start, stop = bounds[0], bounds[1]
	}
	if len(args) == 3 {
		step = bounds[2]
	}
	if step == 0 {
		return nil, runtime.NewError(runtime.ErrInvalidValue, "'range' step must not be zero")
	}
	var elements []runtime.Value
	if step > 0 {
		for v := start; v < stop; v += step {
			elements = append(elements, runtime.NumberValue{Val: v})
		}
	} else {
		for v := start; v > stop; v += step {
			elements = append(elements, runtime.NumberValue{Val: v})
		}
	}
	return &runtime.ListValue{Elements: elements}, nil
}

func stringify(args []runtime.Value) (runtime.Value, error) {
	if err := wantArity("str", args, 1); err != nil {
		return nil, err
	}
	return runtime.StringValue{Val: runtime.ToString(args[0])}, nil
}

func operandMismatch(name string, left, right runtime.Value) error {
	return runtime.NewError(runtime.ErrTypeMismatch, "unsupported operand kinds for '%s': %s and %s", name, left.Kind(), right.Kind())
}

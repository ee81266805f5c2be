package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"pyrite/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindNone
	KindList
	KindTuple
	KindFunction
	KindMethod
	KindClass
	KindObject
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNone:
		return "none"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClass:
		return "class"
	case KindObject:
		return "object"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

// ListValue is mutable and reference-shared: two closures or objects holding
// the same list observe each other's mutations.
type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

// TupleValue is never mutated after construction.
type TupleValue struct {
	Elements []Value
}

func (v TupleValue) Kind() Kind { return KindTuple }

//-----------------------------------------------------------------------------
// Functions & methods
//-----------------------------------------------------------------------------

// FunctionValue pairs a definition with the frame live when the definition
// executed, giving lexical rather than dynamic scoping.
type FunctionValue struct {
	Decl    *ast.FunctionDefinition
	Closure *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// MethodValue binds a function to a receiver; built fresh on each attribute
// lookup that resolves to a class method.
type MethodValue struct {
	Fn       *FunctionValue
	Receiver Value
}

func (v *MethodValue) Kind() Kind { return KindMethod }

type NativeFunc func(args []Value) (Value, error)

// NativeFunctionValue is a host-provided primitive; it enforces its own
// arity and type rules.
type NativeFunctionValue struct {
	Name string
	Impl NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

//-----------------------------------------------------------------------------
// Classes & objects
//-----------------------------------------------------------------------------

// ClassValue is created once per class statement; its method map is
// immutable after definition and shared by every instance.
type ClassValue struct {
	Name    string
	Methods map[string]*FunctionValue
}

func (v *ClassValue) Kind() Kind { return KindClass }

type ObjectValue struct {
	Class      *ClassValue
	Attributes map[string]Value
}

func (v *ObjectValue) Kind() Kind { return KindObject }

//-----------------------------------------------------------------------------
// Shared semantics helpers
//-----------------------------------------------------------------------------

// Truthy applies per-variant truthiness: zero, empty containers, the empty
// string, and None are falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != 0
	case StringValue:
		return val.Val != ""
	case NoneValue:
		return false
	case *ListValue:
		return len(val.Elements) > 0
	case TupleValue:
		return len(val.Elements) > 0
	default:
		return true
	}
}

// Equal is the structural equality used for membership tests and the `==`
// primitive. Lists and tuples compare element-wise; functions, methods,
// classes, and objects compare by identity.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case NoneValue:
		_, ok := b.(NoneValue)
		return ok
	case *ListValue:
		bv, ok := b.(*ListValue)
		return ok && elementsEqual(av.Elements, bv.Elements)
	case TupleValue:
		bv, ok := b.(TupleValue)
		return ok && elementsEqual(av.Elements, bv.Elements)
	default:
		return a == b
	}
}

func elementsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ToString renders a value for print, str, and diagnostics.
func ToString(v Value) string {
	switch val := v.(type) {
	case NumberValue:
		return strconv.FormatFloat(val.Val, 'g', -1, 64)
	case BoolValue:
		if val.Val {
			return "True"
		}
		return "False"
	case StringValue:
		return val.Val
	case NoneValue:
		return "None"
	case *ListValue:
		return renderSequence("[", val.Elements, "]")
	case TupleValue:
		if len(val.Elements) == 1 {
			return "(" + quoteElement(val.Elements[0]) + ",)"
		}
		return renderSequence("(", val.Elements, ")")
	case *FunctionValue:
		return fmt.Sprintf("<function %s>", val.Decl.Name)
	case *MethodValue:
		return fmt.Sprintf("<bound method %s>", val.Fn.Decl.Name)
	case *ClassValue:
		return fmt.Sprintf("<class %s>", val.Name)
	case *ObjectValue:
		return fmt.Sprintf("<%s object>", val.Class.Name)
	case NativeFunctionValue:
		return fmt.Sprintf("<builtin %s>", val.Name)
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

func renderSequence(open string, elements []Value, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, el := range elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteElement(el))
	}
	b.WriteString(close)
	return b.String()
}

// Strings nested in containers render quoted, matching the language the
// syntax imitates.
func quoteElement(v Value) string {
	if s, ok := v.(StringValue); ok {
		return "'" + s.Val + "'"
	}
	return ToString(v)
}

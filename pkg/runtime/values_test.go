package runtime

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  bool
	}{
		{"zero", NumberValue{Val: 0}, false},
		{"nonzero", NumberValue{Val: 0.5}, true},
		{"false", BoolValue{Val: false}, false},
		{"true", BoolValue{Val: true}, true},
		{"empty string", StringValue{Val: ""}, false},
		{"string", StringValue{Val: "x"}, true},
		{"none", NoneValue{}, false},
		{"empty list", &ListValue{}, false},
		{"list", &ListValue{Elements: []Value{NoneValue{}}}, true},
		{"empty tuple", TupleValue{}, false},
		{"tuple", TupleValue{Elements: []Value{NumberValue{Val: 1}}}, true},
	}
	for _, tc := range cases {
		if got := Truthy(tc.value); got != tc.want {
			t.Errorf("%s: Truthy = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStructuralEquality(t *testing.T) {
	a := &ListValue{Elements: []Value{NumberValue{Val: 1}, StringValue{Val: "x"}}}
	b := &ListValue{Elements: []Value{NumberValue{Val: 1}, StringValue{Val: "x"}}}
	if !Equal(a, b) {
		t.Fatalf("distinct lists with equal elements must compare equal")
	}
	if Equal(a, &ListValue{Elements: []Value{NumberValue{Val: 1}}}) {
		t.Fatalf("lists of different lengths must not compare equal")
	}
	if Equal(TupleValue{Elements: a.Elements}, a) {
		t.Fatalf("tuple and list must not compare equal")
	}

	nested := TupleValue{Elements: []Value{&ListValue{Elements: []Value{BoolValue{Val: true}}}}}
	same := TupleValue{Elements: []Value{&ListValue{Elements: []Value{BoolValue{Val: true}}}}}
	if !Equal(nested, same) {
		t.Fatalf("equality must recurse through nested containers")
	}
}

func TestIdentityEqualityForReferenceKinds(t *testing.T) {
	class := &ClassValue{Name: "C"}
	left := &ObjectValue{Class: class, Attributes: map[string]Value{}}
	right := &ObjectValue{Class: class, Attributes: map[string]Value{}}
	if Equal(left, right) {
		t.Fatalf("distinct objects must not compare equal")
	}
	if !Equal(left, left) {
		t.Fatalf("an object must equal itself")
	}
}

func TestToStringRendering(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NumberValue{Val: 1}, "1"},
		{NumberValue{Val: 2.5}, "2.5"},
		{BoolValue{Val: true}, "True"},
		{NoneValue{}, "None"},
		{StringValue{Val: "hi"}, "hi"},
		{&ListValue{Elements: []Value{NumberValue{Val: 1}, StringValue{Val: "a"}}}, "[1, 'a']"},
		{TupleValue{Elements: []Value{NumberValue{Val: 1}}}, "(1,)"},
		{TupleValue{Elements: []Value{NumberValue{Val: 1}, NumberValue{Val: 2}}}, "(1, 2)"},
	}
	for _, tc := range cases {
		if got := ToString(tc.value); got != tc.want {
			t.Errorf("ToString(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestErrorKindStrings(t *testing.T) {
	err := NewError(ErrTypeMismatch, "bad operand %s", "x")
	if err.Error() != "bad operand x" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	kind, ok := KindOf(err)
	if !ok || kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch classification")
	}
	if kind.String() != "TypeMismatch" {
		t.Fatalf("unexpected kind string %q", kind.String())
	}
}

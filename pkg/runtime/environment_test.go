package runtime

import "testing"

func TestDefineThenGetFromSameFrame(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue{Val: 1})

	val, err := env.Get("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	num, ok := val.(NumberValue)
	if !ok || num.Val != 1 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestGetWalksToRoot(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("greeting", StringValue{Val: "hello"})
	inner := root.Child().Child()

	val, err := inner.Get("greeting")
	if err != nil {
		t.Fatalf("lookup through chain failed: %v", err)
	}
	if str, ok := val.(StringValue); !ok || str.Val != "hello" {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestGetFromUnchainedFrameFails(t *testing.T) {
	a := NewEnvironment(nil)
	a.Define("x", NumberValue{Val: 1})
	b := NewEnvironment(nil)

	_, err := b.Get("x")
	if err == nil {
		t.Fatalf("expected unbound name error")
	}
	if kind, ok := KindOf(err); !ok || kind != ErrUnboundName {
		t.Fatalf("expected UnboundName, got %v", err)
	}
}

func TestDefineShadowsWithoutTouchingParent(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", NumberValue{Val: 1})
	child := root.Child()
	child.Define("x", NumberValue{Val: 2})

	childVal, _ := child.Get("x")
	if num := childVal.(NumberValue); num.Val != 2 {
		t.Fatalf("child should see shadowed binding, got %v", num.Val)
	}
	rootVal, _ := root.Get("x")
	if num := rootVal.(NumberValue); num.Val != 1 {
		t.Fatalf("parent binding must be untouched, got %v", num.Val)
	}
}

func TestNestedFrameSeesLaterParentWrites(t *testing.T) {
	root := NewEnvironment(nil)
	child := root.Child()
	root.Define("y", NumberValue{Val: 2})

	val, err := child.Get("y")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 2 {
		t.Fatalf("expected 2, got %v", num.Val)
	}
}

func TestKeysAreSortedAndFrameLocal(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("outer", NoneValue{})
	env := root.Child()
	env.Define("b", NumberValue{Val: 2})
	env.Define("a", NumberValue{Val: 1})

	keys := env.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if _, ok := env.Snapshot()["outer"]; ok {
		t.Fatalf("snapshot must not include parent bindings")
	}
}

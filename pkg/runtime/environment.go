package runtime

import "sort"

// Environment provides lexical scoping for runtime values. Frames chain to
// a parent; only function and method calls introduce new frames.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new frame, optionally chained under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when root).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Child creates a new empty frame chained to the current one.
func (e *Environment) Child() *Environment {
	return NewEnvironment(e)
}

// Define inserts or shadows a binding in the current frame. There is no
// mechanism to rebind an outer name from an inner scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the frame chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, NewError(ErrUnboundName, "name '%s' is not defined", name)
}

// Snapshot returns a copy of the current frame's bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the current frame's names in sorted order (useful for
// determinism in tests and the REPL).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

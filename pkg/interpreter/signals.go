package interpreter

import "pyrite/interpreter-go/pkg/runtime"

// Control signals travel through the ordinary error return so that every
// statement-sequence evaluator propagates them without special plumbing.
// Loops intercept break/continue; call boundaries intercept return.

type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue" }

// isControlSignal distinguishes signals from genuine evaluation failures.
func isControlSignal(err error) bool {
	switch err.(type) {
	case returnSignal, breakSignal, continueSignal:
		return true
	default:
		return false
	}
}

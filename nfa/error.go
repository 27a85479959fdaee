// Package nfa implements the generic non-deterministic automaton used as
// the compile target of the IR layer: states connected by epsilon edges and
// range-labeled token edges, plus the derived queries (emptiness,
// finiteness) and the Automaton stepping contract the
// compound matcher drives.
//
// Ported from original_source's crates/automata/src/nfa/mod.rs, adapted
// from Rust's generic Q/T/C parameters to a concrete StateID keyed on a
// generic token type, matching the teacher's own concrete-StateID approach
// in nfa/nfa.go.
package nfa

import "errors"

// ErrTooManyStates is returned, wrapped in a *BuildError, by
// U32StateBuilder.NextState when a build exceeds its configured state limit. It is the only compile-time error
// this package defines, matching spec.md §7: the only way NFA construction
// fails is running out of state budget.
var ErrTooManyStates = errors.New("nfa: too many states")

// BuildError wraps ErrTooManyStates (or any other construction failure)
// with the state count reached, matching the teacher's BuildError pattern
// in nfa/error.go.
type BuildError struct {
	Message string
	Reached int
}

func (e *BuildError) Error() string {
	return "nfa: " + e.Message
}

func (e *BuildError) Unwrap() error { return ErrTooManyStates }

// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import "fmt"

// A Kind identifies when a Rule is consulted during an attempt.
type Kind int

const (
	// KindUniversal rules are consulted on every attempt, whether the
	// attempt failed or succeeded, and receive the full attempt State.
	KindUniversal Kind = iota
	// KindOnError rules are consulted only when the attempt failed.
	// They are never consulted on a successful attempt.
	KindOnError
	// KindOnResult rules are consulted only when the attempt succeeded.
	// They are never consulted on a failed attempt.
	KindOnResult

	// kindSentinel provides the total number of rule kinds.
	kindSentinel
)

var kindNames = []string{
	"Universal",
	"OnError",
	"OnResult",
}

// String returns the name of the rule kind.
func (k Kind) String() string {
	if k < 0 || k >= kindSentinel {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[int(k)]
}

// A Class is an error class filter for OnError rules. It reports
// whether an error belongs to the class, typically using errors.Is or
// errors.As to look through wrapped causes.
//
// Package fault provides ready-made classes for HTTP transport errors
// (fault.IsConnect, fault.IsTimeout, fault.IsNetwork, fault.IsProtocol).
type Class func(error) bool

// A Rule is a named predicate contributing to the retry decision.
//
// Rules are immutable once constructed and must be safe for concurrent
// use by multiple goroutines. Use the constructors Universal, OnError,
// and OnResult; a rule carries exactly one Kind by construction.
type Rule interface {
	// Name returns the rule's name. Names key the merge performed by
	// Ruleset.Extend: a derived ruleset's rule replaces a same-named
	// rule inherited from its parent.
	Name() string
	// Kind returns the rule's kind.
	Kind() Kind
	// Evaluate reports whether the rule wants a retry for the given
	// attempt state. The executor only calls Evaluate when the rule's
	// kind matches the attempt outcome.
	Evaluate(s *State) bool
}

type rule struct {
	name string
	kind Kind
	eval func(*State) bool
}

func (r *rule) Name() string           { return r.name }
func (r *rule) Kind() Kind             { return r.kind }
func (r *rule) Evaluate(s *State) bool { return r.eval(s) }

// Universal constructs a rule consulted on every attempt regardless of
// outcome. The function receives the full attempt State.
//
// Universal panics if name is empty or f is nil. Misdeclaring a rule is
// a programming error and is reported at declaration time, not at
// first use.
func Universal(name string, f func(s *State) bool) Rule {
	checkDeclaration(name, f == nil)
	return &rule{name: name, kind: KindUniversal, eval: f}
}

// OnError constructs a rule consulted only when the attempt failed.
// The function receives the captured error.
//
// If one or more classes are given they pre-filter the error: when the
// error belongs to none of them, f is not invoked at all and the rule
// contributes false to the retry decision for that attempt.
//
// OnError panics if name is empty, f is nil, or any class is nil.
func OnError(name string, f func(err error) bool, classes ...Class) Rule {
	checkDeclaration(name, f == nil)
	for _, c := range classes {
		if c == nil {
			panic("retryx: nil error class on rule " + name)
		}
	}
	cs := make([]Class, len(classes))
	copy(cs, classes)
	return &rule{
		name: name,
		kind: KindOnError,
		eval: func(s *State) bool {
			if s.Err == nil {
				return false
			}
			if len(cs) > 0 && !anyClass(cs, s.Err) {
				return false
			}
			return f(s.Err)
		},
	}
}

// OnResult constructs a rule consulted only when the attempt succeeded.
// The function receives the returned value.
//
// OnResult panics if name is empty or f is nil.
func OnResult(name string, f func(v any) bool) Rule {
	checkDeclaration(name, f == nil)
	return &rule{
		name: name,
		kind: KindOnResult,
		eval: func(s *State) bool {
			if s.Err != nil {
				return false
			}
			return f(s.Result)
		},
	}
}

func checkDeclaration(name string, nilFunc bool) {
	if name == "" {
		panic("retryx: empty rule name")
	}
	if nilFunc {
		panic("retryx: nil rule function on rule " + name)
	}
}

func anyClass(cs []Class, err error) bool {
	for _, c := range cs {
		if c(err) {
			return true
		}
	}
	return false
}

// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import "time"

// A Policy bounds the retry loop: how many attempts may be made in
// total, and how long to wait between them.
//
// The zero value is a valid policy meaning one attempt and no waiting.
type Policy struct {
	// Attempts is the maximum number of attempts, including the
	// initial one. Values below 1 are treated as 1: the operation is
	// invoked exactly once and never retried, with no waiting. This is
	// the documented reading of the degenerate zero configuration.
	Attempts int

	// Delay is the fixed wait between attempts. Zero or negative means
	// no wait.
	Delay time.Duration
}

// bound returns the effective attempt bound.
func (p Policy) bound() int {
	if p.Attempts < 1 {
		return 1
	}
	return p.Attempts
}

// Hooks are optional observation points in the retry lifecycle. Any
// member may be nil, in which case it is skipped.
type Hooks struct {
	// Before runs after an attempt has been judged retryable, before
	// the delay. The State describes the attempt that just concluded.
	Before func(s *State)

	// After runs once the delay has elapsed, immediately before the
	// next attempt. The State still describes the concluded attempt.
	After func(s *State)

	// OnExhausted runs when the strategy gives up, either because the
	// attempt bound was reached while the rules still wanted a retry,
	// or because an error was judged non-retryable. The State is the
	// final attempt's state.
	//
	// OnExhausted may return a substitute error, which the strategy
	// returns verbatim in place of its own. Returning nil lets the
	// strategy surface its usual *ExhaustedError.
	OnExhausted func(s *State) error
}

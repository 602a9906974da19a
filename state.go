// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

// A State represents one concluded attempt within a retry loop.
//
// A new State is created for every attempt and discarded once the
// retry decision for that attempt is made; the only State retained
// beyond its attempt is the final one, carried by ExhaustedError.
//
// Rules and hooks receive the State and should treat it as read-only.
type State struct {
	// Attempt is the 1-based number of the attempt this state
	// describes. It is 1 on the initial attempt, 2 on the first retry,
	// and so on.
	Attempt int

	// Args holds the arguments the operation was invoked with. The
	// same arguments are passed unchanged on every attempt; they are
	// carried here so rules and hooks can identify the operation.
	Args []any

	// Result is the value returned by the attempt. It is only
	// meaningful when Err is nil.
	Result any

	// Err is the error captured from the attempt, or nil if the
	// attempt succeeded. Exactly one of Result and Err describes the
	// attempt's outcome.
	Err error
}

// Failed reports whether the attempt ended in an error.
func (s *State) Failed() bool {
	return s.Err != nil
}

// Arg returns the i-th operation argument, or nil if there is no such
// argument. It saves hooks a bounds check when peeking at well-known
// argument positions.
func (s *State) Arg(i int) any {
	if i < 0 || i >= len(s.Args) {
		return nil
	}
	return s.Args[i]
}

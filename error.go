// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import "fmt"

// An ExhaustedError is the terminal failure of a retry loop. It is
// returned when the attempt bound was reached while the rules still
// wanted a retry, and when an attempt failed with an error no rule was
// willing to retry.
//
// The error carries the final attempt's State, so callers can recover
// the original error or the last retryable result. When the final
// outcome was an error, Unwrap exposes it, making the root cause
// reachable through errors.Is and errors.As.
type ExhaustedError struct {
	// State is the final attempt's state. It is never nil on an error
	// returned by Strategy.
	State *State
}

// Error returns a description of the final attempt.
func (e *ExhaustedError) Error() string {
	if e.State == nil {
		return "retryx: retries exhausted"
	}
	if e.State.Err != nil {
		return fmt.Sprintf("retryx: giving up after attempt %d: %v", e.State.Attempt, e.State.Err)
	}
	return fmt.Sprintf("retryx: giving up after attempt %d: last result still retryable", e.State.Attempt)
}

// Unwrap returns the final attempt's error. It returns nil when the
// final outcome was a result rather than an error; no artificial cause
// is fabricated in that case.
func (e *ExhaustedError) Unwrap() error {
	if e.State == nil {
		return nil
	}
	return e.State.Err
}

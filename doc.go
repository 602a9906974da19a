// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retryx runs operations under a declarative retry strategy: a
fixed attempt bound, a fixed delay between attempts, and a set of named
rules deciding which errors or results warrant another attempt.

Create a Strategy to begin retrying.

	s := &retryx.Strategy{
		Policy: retryx.Policy{Attempts: 3, Delay: time.Second},
	}
	v, err := s.Do(func(args ...any) (any, error) {
		return fetch()
	})

A Strategy with no rules retries on any error and never retries a
successful result. To take control of the decision, declare rules and
collect them in a Ruleset:

	rules := retryx.NewRuleset(
		retryx.OnError("timeout", func(err error) bool {
			return true
		}, fault.IsTimeout),
		retryx.OnResult("empty_page", func(v any) bool {
			return len(v.(Page).Items) == 0
		}),
	)
	s := &retryx.Strategy{
		Policy: retryx.Policy{Attempts: 5},
		Rules:  rules,
	}

Rules come in three kinds. Universal rules see the full attempt State
on every attempt. OnError rules run only when the attempt failed, and
may be pre-filtered to error classes so the rule function is never
invoked for errors outside its remit. OnResult rules run only when the
attempt succeeded. The retry decision is the logical OR of all rules:
no kind takes precedence, and a single true is enough to retry.

A derived strategy extends its parent's ruleset rather than redeclaring
it. Extend returns a new Ruleset containing the parent's rules overlaid
with the child's; a child rule replaces a same-named parent rule, and
the relationship holds through arbitrarily long Extend chains.

	base := retryx.NewRuleset(...)
	derived := base.Extend(
		retryx.OnError("conflict", isConflict),
	)

Hooks observe the retry lifecycle: Before runs after a retryable
attempt and before the delay, After runs once the delay has elapsed,
and OnExhausted runs when the strategy gives up. Any hook may be nil.

Strategy has two executing methods sharing one decision loop. Do blocks
the calling goroutine for the delay between attempts. DoContext accepts
a context and suspends instead, waking early if the context is
cancelled; use it when the operation itself is context-aware.

When attempts run out, or an error is not retryable, the caller
receives a single *ExhaustedError wrapping the final attempt State.
errors.Is and errors.As reach the underlying error through it.

Package httpretry builds on this package with a ready-made rule set for
HTTP requests, and package httpclient wires that strategy into a
logging HTTP client.
*/
package retryx

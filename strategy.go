// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"sync"

	"github.com/coder/quartz"
)

// An Operation is a retryable unit of work for the synchronous Do
// method. The arguments given to Do are passed through unchanged on
// every attempt.
type Operation func(args ...any) (any, error)

// An OperationContext is a retryable unit of work for DoContext. The
// context carries cancellation into the operation; the arguments given
// to DoContext are passed through unchanged on every attempt.
type OperationContext func(ctx context.Context, args ...any) (any, error)

// A Strategy executes operations under a retry policy and a ruleset.
// Its zero value is a valid configuration: one attempt, no delay, and
// the fallback decision of retrying on any error (which, with a bound
// of one, simply reports the first failure).
//
// A Strategy compiles its ruleset into a single decision function on
// first use and caches it, so the Policy, Rules, and Hooks fields must
// not be modified after the first call to Do or DoContext. Within that
// constraint a Strategy is safe for concurrent use by multiple
// goroutines; independent strategies share no state.
//
// Strategies are cheap and are typically configured once per client or
// per logical operation.
type Strategy struct {
	// Policy bounds the retry loop.
	Policy Policy

	// Rules decides whether an attempt's outcome warrants a retry. If
	// Rules is nil or empty, any error is retried and no successful
	// result is.
	Rules *Ruleset

	// Hooks observe the retry lifecycle. Any member may be nil.
	Hooks Hooks

	// clock injects time for the delay wait. Tests substitute a mock;
	// nil means the real clock.
	clock quartz.Clock

	predOnce sync.Once
	pred     func(*State) bool
}

// Do invokes op repeatedly until a terminal success or a terminal
// failure, blocking the calling goroutine for the policy delay between
// attempts. The args are passed to op unchanged on every attempt and
// are visible to rules and hooks through the State.
//
// Do returns op's result on terminal success. On terminal failure it
// returns a non-nil error: the substitute error produced by the
// OnExhausted hook if any, otherwise an *ExhaustedError carrying the
// final attempt State.
//
// Do panics if op is nil.
func (s *Strategy) Do(op Operation, args ...any) (any, error) {
	if op == nil {
		panic("retryx: nil operation")
	}
	return s.run(context.Background(), func(context.Context) (any, error) {
		return op(args...)
	}, args)
}

// DoContext is the suspending variant of Do. It follows exactly the
// same decision logic, but waits on the context as well as the delay
// timer, so other work sharing the scheduler is never blocked and
// cancellation is observed mid-wait. Cancellation during the delay
// returns ctx.Err(); cancellation during an attempt surfaces as the
// attempt's error and is subject to the normal rule evaluation.
//
// DoContext panics if op is nil. A nil ctx is treated as
// context.Background().
func (s *Strategy) DoContext(ctx context.Context, op OperationContext, args ...any) (any, error) {
	if op == nil {
		panic("retryx: nil operation")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return s.run(ctx, func(ctx context.Context) (any, error) {
		return op(ctx, args...)
	}, args)
}

// run is the decision loop shared by Do and DoContext.
func (s *Strategy) run(ctx context.Context, invoke func(context.Context) (any, error), args []any) (any, error) {
	decide := s.predicate()
	bound := s.Policy.bound()

	for attempt := 1; ; attempt++ {
		result, err := invoke(ctx)
		state := &State{Attempt: attempt, Args: args, Result: result, Err: err}

		retry := decide(state)
		if !retry && err == nil {
			// A successful result the rules decline to retry always
			// ends the loop.
			return result, nil
		}
		if !retry || attempt >= bound {
			// Non-retryable error, or bound reached while the rules
			// still want a retry.
			return nil, s.exhaust(state)
		}

		if s.Hooks.Before != nil {
			s.Hooks.Before(state)
		}
		if werr := s.wait(ctx); werr != nil {
			return nil, werr
		}
		if s.Hooks.After != nil {
			s.Hooks.After(state)
		}
	}
}

// wait pauses for the policy delay, or until ctx is done, whichever
// comes first.
func (s *Strategy) wait(ctx context.Context) error {
	if s.Policy.Delay <= 0 {
		return ctx.Err()
	}

	clock := s.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	timer := clock.NewTimer(s.Policy.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// exhaust concludes a terminal failure, giving the OnExhausted hook
// the chance to substitute its own error first.
func (s *Strategy) exhaust(state *State) error {
	if s.Hooks.OnExhausted != nil {
		if err := s.Hooks.OnExhausted(state); err != nil {
			return err
		}
	}
	return &ExhaustedError{State: state}
}

// predicate returns the compiled decision function, compiling it on
// first use. Rulesets are immutable after construction, so the result
// is cached for the strategy's lifetime.
func (s *Strategy) predicate() func(*State) bool {
	s.predOnce.Do(func() {
		s.pred = s.Rules.predicate()
	})
	return s.pred
}

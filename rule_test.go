// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Universal", KindUniversal.String())
	assert.Equal(t, "OnError", KindOnError.String())
	assert.Equal(t, "OnResult", KindOnResult.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestUniversal(t *testing.T) {
	t.Run("Evaluates on any outcome", func(t *testing.T) {
		var seen []*State
		r := Universal("all", func(s *State) bool {
			seen = append(seen, s)
			return s.Attempt < 2
		})

		assert.Equal(t, "all", r.Name())
		assert.Equal(t, KindUniversal, r.Kind())
		assert.True(t, r.Evaluate(&State{Attempt: 1, Err: errors.New("boom")}))
		assert.False(t, r.Evaluate(&State{Attempt: 2, Result: "ok"}))
		assert.Len(t, seen, 2)
	})
	t.Run("Declaration errors", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx: empty rule name", func() {
			Universal("", func(*State) bool { return false })
		})
		assert.PanicsWithValue(t, "retryx: nil rule function on rule all", func() {
			Universal("all", nil)
		})
	})
}

func TestOnError(t *testing.T) {
	errBoom := errors.New("boom")
	errSlow := errors.New("slow")

	t.Run("Never invoked on success", func(t *testing.T) {
		invoked := false
		r := OnError("any_error", func(err error) bool {
			invoked = true
			return true
		})
		assert.False(t, r.Evaluate(&State{Attempt: 1, Result: "ok"}))
		assert.False(t, invoked)
		assert.Equal(t, KindOnError, r.Kind())
	})
	t.Run("Invoked with the captured error", func(t *testing.T) {
		var got error
		r := OnError("any_error", func(err error) bool {
			got = err
			return true
		})
		assert.True(t, r.Evaluate(&State{Attempt: 1, Err: errBoom}))
		assert.Same(t, errBoom, got)
	})
	t.Run("Class pre-filter", func(t *testing.T) {
		invoked := 0
		slowOnly := Class(func(err error) bool { return errors.Is(err, errSlow) })
		r := OnError("slow_error", func(err error) bool {
			invoked++
			return true
		}, slowOnly)

		// Non-matching errors never reach the rule function.
		assert.False(t, r.Evaluate(&State{Attempt: 1, Err: errBoom}))
		assert.Equal(t, 0, invoked)

		assert.True(t, r.Evaluate(&State{Attempt: 1, Err: fmt.Errorf("wrapped: %w", errSlow)}))
		assert.Equal(t, 1, invoked)
	})
	t.Run("Any class admits", func(t *testing.T) {
		boomOnly := Class(func(err error) bool { return errors.Is(err, errBoom) })
		slowOnly := Class(func(err error) bool { return errors.Is(err, errSlow) })
		r := OnError("either", func(err error) bool { return true }, boomOnly, slowOnly)
		assert.True(t, r.Evaluate(&State{Attempt: 1, Err: errBoom}))
		assert.True(t, r.Evaluate(&State{Attempt: 1, Err: errSlow}))
		assert.False(t, r.Evaluate(&State{Attempt: 1, Err: errors.New("other")}))
	})
	t.Run("Declaration errors", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx: nil rule function on rule bad", func() {
			OnError("bad", nil)
		})
		assert.PanicsWithValue(t, "retryx: nil error class on rule bad", func() {
			OnError("bad", func(error) bool { return true }, nil)
		})
	})
}

func TestOnResult(t *testing.T) {
	t.Run("Never invoked on failure", func(t *testing.T) {
		invoked := false
		r := OnResult("any_result", func(v any) bool {
			invoked = true
			return true
		})
		assert.False(t, r.Evaluate(&State{Attempt: 1, Err: errors.New("boom")}))
		assert.False(t, invoked)
		assert.Equal(t, KindOnResult, r.Kind())
	})
	t.Run("Invoked with the result", func(t *testing.T) {
		var got any
		r := OnResult("empty", func(v any) bool {
			got = v
			return v == ""
		})
		assert.True(t, r.Evaluate(&State{Attempt: 1, Result: ""}))
		assert.Equal(t, "", got)
		assert.False(t, r.Evaluate(&State{Attempt: 1, Result: "full"}))
	})
}

func TestStateArg(t *testing.T) {
	s := &State{Args: []any{"first", 2}}
	assert.Equal(t, "first", s.Arg(0))
	assert.Equal(t, 2, s.Arg(1))
	assert.Nil(t, s.Arg(2))
	assert.Nil(t, s.Arg(-1))
}

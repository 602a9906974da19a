// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides single-construction values: the builder runs
// once, on first use, and every caller shares the result. Use a
// package-level Value for a shared singleton, or a per-owner Value for
// a lazily connected resource.
package lazy

import "sync"

// A Value holds a value constructed on first Get. It is safe for
// concurrent use by multiple goroutines; concurrent first Gets run the
// builder exactly once.
type Value[T any] struct {
	once  sync.Once
	build func() T
	v     T
}

// New constructs a Value that obtains its contents from build on first
// Get. New panics if build is nil.
func New[T any](build func() T) *Value[T] {
	if build == nil {
		panic("lazy: nil builder")
	}
	return &Value[T]{build: build}
}

// Of constructs a Value already holding v. Get returns v without any
// construction step. Of is handy where an API accepts a *Value but the
// caller already has the instance.
func Of[T any](v T) *Value[T] {
	return &Value[T]{build: func() T { return v }}
}

// Get returns the contents, constructing them on first call.
func (l *Value[T]) Get() T {
	l.once.Do(func() {
		l.v = l.build()
		l.build = nil
	})
	return l.v
}

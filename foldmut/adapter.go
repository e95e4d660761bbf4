/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package foldmut provides an adapter over lazy sequences which accumulates a result in place.
//
// The same reduction is offered through three strategies which are observably equivalent:
// an explicit loop over the single-step primitive (FoldMut), a value-in/value-out fold
// combinator (FoldMutFold) and a visitor combinator (FoldMutEach). They only differ in
// the shape of their control flow and are therefore meant to be compared in benchmarks.
package foldmut

import (
	"iter"
	"slices"
)

// Stepper describes a producer of a lazy, forward-only and possibly infinite sequence.
// Next returns the next element and true, or false once the sequence is exhausted.
type Stepper[T any] interface {
	Next() (T, bool)
}

// StepperFunc is a function implementing Stepper.
type StepperFunc[T any] func() (T, bool)

// Next calls f.
func (f StepperFunc[T]) Next() (T, bool) {
	return f()
}

// Adapter wraps a sequence and exposes both the sequence itself and in-place reductions over it.
// An adapter is consumed by a single reduction: it cannot be reduced or iterated afterwards.
type Adapter[T any] struct {
	inner Stepper[T]
	stop  func()
}

// New wraps a stepper into an adapter. A nil stepper is treated as an empty sequence.
func New[T any](s Stepper[T]) *Adapter[T] {
	if s == nil {
		s = exhausted[T]()
	}
	return &Adapter[T]{inner: s}
}

func exhausted[T any]() StepperFunc[T] {
	return func() (v T, ok bool) { return }
}

// FromSequence wraps a push sequence into an adapter. The sequence is converted into a
// single-step producer using iter.Pull; its resources are released once the adapter is
// exhausted, consumed or closed.
func FromSequence[T any](seq iter.Seq[T]) *Adapter[T] {
	if seq == nil {
		return New[T](nil)
	}
	next, stop := iter.Pull(seq)
	return &Adapter[T]{inner: StepperFunc[T](next), stop: stop}
}

// FromSlice returns an adapter over values.
func FromSlice[T any](values ...T) *Adapter[T] {
	return FromSequence(slices.Values(values))
}

// Next pulls the next element of the wrapped sequence.
func (a *Adapter[T]) Next() (v T, ok bool) {
	if a == nil || a.inner == nil {
		return
	}
	v, ok = a.inner.Next()
	if !ok && a.stop != nil {
		a.stop()
		a.stop = nil
	}
	return
}

// Values returns the adapter as a push sequence so that it can be composed with
// sequence combinators or used in a range loop. It does not consume the adapter.
func (a *Adapter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := a.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Consumed states whether the adapter has already been reduced or closed.
func (a *Adapter[T]) Consumed() bool {
	return a == nil || a.inner == nil
}

// Close releases the resources held by the wrapped sequence without reducing it.
func (a *Adapter[T]) Close() error {
	if a != nil {
		a.release()
	}
	return nil
}

func (a *Adapter[T]) release() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	a.inner = nil
}

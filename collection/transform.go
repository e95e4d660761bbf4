/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"
	"slices"
)

// MapFunc converts a value of type T1 into a value of type T2.
type MapFunc[T1, T2 any] func(T1) T2

// MapWithErrorFunc is a MapFunc which can fail.
type MapWithErrorFunc[T1, T2 any] func(T1) (T2, error)

// FilterFunc reports whether a value should be kept.
type FilterFunc[E any] func(E) bool

// MapSequence yields f(v) for every v of s.
func MapSequence[T1, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapSequenceWithError is similar to MapSequence but ends the sequence at the first value f fails on.
func MapSequenceWithError[T1, T2 any](s iter.Seq[T1], f MapWithErrorFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			mapped, err := f(v)
			if err != nil {
				return
			}
			if !yield(mapped) {
				return
			}
		}
	}
}

// Map is the slice version of MapSequence.
func Map[T1, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	return slices.AppendSeq(make([]T2, 0, len(s)), MapSequence(slices.Values(s), f))
}

// FilterSequence yields the values of s which f keeps.
func FilterSequence[E any](s iter.Seq[E], f FilterFunc[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s {
			if f(v) && !yield(v) {
				return
			}
		}
	}
}

// Filter is the slice version of FilterSequence.
func Filter[S ~[]E, E any](s S, f FilterFunc[E]) S {
	return slices.Collect(FilterSequence(slices.Values(s), f))
}

// ChainSequence yields the values of every sequence one after the other. Nil sequences are skipped.
func ChainSequence[T any](sequences ...iter.Seq[T]) iter.Seq[T] {
	return Flatten(slices.Values(sequences))
}

// FlatMapSequence maps every value of s to a sequence and yields the values of those sequences in turn.
// An inner sequence is only requested from f once the previous one has been drained.
func FlatMapSequence[T1, T2 any](s iter.Seq[T1], f MapFunc[T1, iter.Seq[T2]]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			inner := f(v)
			if inner == nil {
				continue
			}
			for w := range inner {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// Flatten yields the values of a sequence of sequences.
func Flatten[T any](s iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMapSequence(s, func(inner iter.Seq[T]) iter.Seq[T] { return inner })
}

// Take yields at most the first n values of s. The remainder of s is never requested.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range s {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"
	"slices"
)

// ReduceFunc combines the accumulator with the next element and returns the new accumulator.
type ReduceFunc[T, A any] func(accumulator A, element T) A

// ReducesSequence folds s into initial, one element at a time in sequence order.
// The accumulator is passed to and returned from f by value.
func ReducesSequence[T, A any](s iter.Seq[T], initial A, f ReduceFunc[T, A]) A {
	accumulator := initial
	for v := range s {
		accumulator = f(accumulator, v)
	}
	return accumulator
}

// Reduce is the slice version of ReducesSequence.
func Reduce[T, A any](s []T, initial A, f ReduceFunc[T, A]) A {
	return ReducesSequence(slices.Values(s), initial, f)
}

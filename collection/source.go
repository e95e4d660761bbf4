/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides lazy combinators over iter.Seq sequences and their slice counterparts.
//
// Every sequence returned stops producing values as soon as its consumer stops pulling them.
package collection

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-fold-utils/field"
)

// RangeSequence yields the integers from start (inclusive) to stop (exclusive) by step, like Python's range().
// A nil step means 1 and a zero step yields nothing.
func RangeSequence[N constraints.Integer](start, stop N, step *N) iter.Seq[N] {
	increment := field.Optional[N](step, 1)
	count := rangeCount(start, stop, increment)
	return func(yield func(N) bool) {
		v := start
		for range count {
			if !yield(v) {
				return
			}
			v += increment
		}
	}
}

// Range is the slice version of RangeSequence.
func Range[N constraints.Integer](start, stop N, step *N) []N {
	increment := field.Optional[N](step, 1)
	return slices.AppendSeq(make([]N, 0, rangeCount(start, stop, increment)), RangeSequence(start, stop, &increment))
}

// rangeCount works on the two's complement distance so that bounded types never overflow.
func rangeCount[N constraints.Integer](start, stop, step N) int {
	switch {
	case step > 0 && start < stop:
		return int((uint64(stop)-uint64(start)-1)/uint64(step)) + 1
	case step < 0 && start > stop:
		return int((uint64(start)-uint64(stop)-1)/(0-uint64(step))) + 1
	default:
		return 0
	}
}

// Once yields v a single time.
func Once[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v)
	}
}

// Repeat yields v forever. Consumers must bound it, e.g. with Take.
func Repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}

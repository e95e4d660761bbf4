/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// OperationFunc is applied to every visited value. Returning commonerrors.ErrEOF ends the visit early without error.
type OperationFunc[E any] func(E) error

// OperationRefFunc is similar to OperationFunc but receives a reference to a copy of the value.
type OperationRefFunc[E any] func(*E) error

// Each calls f on every value of s in order and stops at the first error.
func Each[T any](s iter.Seq[T], f OperationFunc[T]) (err error) {
	for v := range s {
		err = f(v)
		if err != nil {
			break
		}
	}
	return commonerrors.Ignore(err, commonerrors.ErrEOF)
}

// EachRef is similar to Each but hands a reference over to f.
func EachRef[T any](s iter.Seq[T], f OperationRefFunc[T]) error {
	return Each(s, func(v T) error { return f(&v) })
}

// ForEach calls f on every element of s.
func ForEach[S ~[]E, E any](s S, f func(E)) {
	for _, v := range s {
		f(v)
	}
}

// ForEachValues calls f on every value given.
func ForEachValues[E any](f func(E), values ...E) {
	ForEach(values, f)
}

// ForEachRef calls f with a reference to every element of s. Changes made through the reference are visible in s.
func ForEachRef[S ~[]E, E any](s S, f func(*E)) {
	for i := range s {
		f(&s[i])
	}
}

// ForAllSequence calls f on every value of s, even after failures, and returns all the errors encountered.
// commonerrors.ErrEOF still ends the visit early.
func ForAllSequence[T any](s iter.Seq[T], f OperationFunc[T]) error {
	var errs []error
	err := Each(s, func(v T) error {
		subErr := f(v)
		switch {
		case subErr == nil:
		case commonerrors.Any(subErr, commonerrors.ErrEOF):
			return subErr
		default:
			errs = append(errs, commonerrors.Newf(subErr, "error during iteration over value [%v]", v))
		}
		return nil
	})
	return commonerrors.Join(append(errs, err)...)
}

// ForAll is the slice version of ForAllSequence.
func ForAll[S ~[]E, E any](s S, f OperationFunc[E]) error {
	return ForAllSequence(slices.Values(s), f)
}

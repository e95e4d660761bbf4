/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package foldmut

import (
	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// ErrConsumed is returned when reducing an adapter which was already reduced or closed.
var ErrConsumed = commonerrors.New(commonerrors.ErrConflict, "sequence adapter already consumed")

// UpdateFunc mutates the accumulator in place for a given element.
type UpdateFunc[A, T any] func(accumulator *A, element T)

// FoldMut reduces the sequence by pulling elements one at a time until exhaustion and
// applying update to the accumulator for each of them.
func FoldMut[T, A any](a *Adapter[T], initial A, update UpdateFunc[A, T]) (A, error) {
	err := take(a, update)
	if err != nil {
		return initial, err
	}
	defer a.release()
	accumulator := initial
	for {
		x, ok := a.Next()
		if !ok {
			break
		}
		update(&accumulator, x)
	}
	return accumulator, nil
}

// FoldMutFold is equivalent to FoldMut but is built on a fold combinator which hands the
// accumulator over by value for each element.
func FoldMutFold[T, A any](a *Adapter[T], initial A, update UpdateFunc[A, T]) (A, error) {
	err := take(a, update)
	if err != nil {
		return initial, err
	}
	defer a.release()
	return collection.ReducesSequence(a.Values(), initial, func(accumulator A, x T) A {
		update(&accumulator, x)
		return accumulator
	}), nil
}

// FoldMutEach is equivalent to FoldMut but is built on a visitor combinator, the visitor
// mutating an accumulator captured from the enclosing scope.
func FoldMutEach[T, A any](a *Adapter[T], initial A, update UpdateFunc[A, T]) (A, error) {
	err := take(a, update)
	if err != nil {
		return initial, err
	}
	defer a.release()
	accumulator := initial
	err = collection.Each(a.Values(), func(x T) error {
		update(&accumulator, x)
		return nil
	})
	return accumulator, err
}

func take[T, A any](a *Adapter[T], update UpdateFunc[A, T]) error {
	if a == nil {
		return commonerrors.UndefinedParameter("missing sequence adapter")
	}
	if update == nil {
		return commonerrors.UndefinedParameter("missing update function")
	}
	if a.Consumed() {
		return ErrConsumed
	}
	return nil
}

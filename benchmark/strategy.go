/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/foldmut"
)

// Strategy names a way of accumulating over a workload.
type Strategy string

const (
	// StrategyFor ranges over the adapter and mutates a local accumulator. It is the baseline.
	StrategyFor Strategy = "for"
	// StrategyFold uses the value fold combinator with a closure returning the accumulator.
	StrategyFold Strategy = "fold"
	// StrategyFoldMut uses foldmut.FoldMut.
	StrategyFoldMut Strategy = "fold_mut"
	// StrategyFoldMutFold uses foldmut.FoldMutFold.
	StrategyFoldMutFold Strategy = "fold_mut_fold"
	// StrategyFoldMutEach uses foldmut.FoldMutEach.
	StrategyFoldMutEach Strategy = "fold_mut_each"
)

// ErrUnknownStrategy is returned when a strategy name does not correspond to any strategy.
var ErrUnknownStrategy = commonerrors.New(commonerrors.ErrNotFound, "unknown strategy")

// Strategies lists every strategy, baseline first.
func Strategies() []Strategy {
	return []Strategy{StrategyFor, StrategyFold, StrategyFoldMut, StrategyFoldMutFold, StrategyFoldMutEach}
}

// StrategyNames is similar to Strategies but returns names.
func StrategyNames() []string {
	return collection.Map(Strategies(), func(s Strategy) string { return s.String() })
}

// ParseStrategy returns the strategy called name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return "", commonerrors.Newf(ErrUnknownStrategy, "%q is not one of %v", name, StrategyNames())
}

func (s Strategy) String() string {
	return string(s)
}

// Run runs the strategy over a fresh sequence of the workload, folding it into acc. The state of
// the accumulator is returned: []int64, int64 or Buckets. The for and fold baselines apply the
// update rule inline, as a hand-written loop would.
func (s Strategy) Run(acc Accumulator, w Workload) (any, error) {
	switch acc {
	case AccumulatorVec:
		return runVec(s, w)
	case AccumulatorSum:
		return runSum(s, w)
	case AccumulatorArray:
		return runArray(s, w)
	default:
		return nil, commonerrors.Newf(ErrUnknownAccumulator, "%q", acc)
	}
}

func runVec(s Strategy, w Workload) (nums []int64, err error) {
	a := w.Adapter()
	switch s {
	case StrategyFor:
		for n := range a.Values() {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					nums = append(nums, n2)
				}
			}
		}
		err = a.Close()
	case StrategyFold:
		nums = collection.ReducesSequence(a.Values(), nums, func(nums []int64, n int64) []int64 {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					nums = append(nums, n2)
				}
			}
			return nums
		})
		err = a.Close()
	default:
		nums, err = Accumulate(s, a, nums, KeepThirdsOfMultiplesOfNine)
	}
	return
}

func runSum(s Strategy, w Workload) (sum int64, err error) {
	a := w.Adapter()
	switch s {
	case StrategyFor:
		for n := range a.Values() {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					sum += n2
				}
			}
		}
		err = a.Close()
	case StrategyFold:
		sum = collection.ReducesSequence(a.Values(), sum, func(sum int64, n int64) int64 {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					sum += n2
				}
			}
			return sum
		})
		err = a.Close()
	default:
		sum, err = Accumulate(s, a, sum, AddThirdsOfMultiplesOfNine)
	}
	return
}

func runArray(s Strategy, w Workload) (buckets Buckets, err error) {
	a := w.Adapter()
	switch s {
	case StrategyFor:
		for n := range a.Values() {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					buckets[bucket(n2)] += n2
				}
			}
		}
		err = a.Close()
	case StrategyFold:
		buckets = collection.ReducesSequence(a.Values(), buckets, func(buckets Buckets, n int64) Buckets {
			if n%3 == 0 {
				n2 := n / 3
				if n2%3 == 0 {
					buckets[bucket(n2)] += n2
				}
			}
			return buckets
		})
		err = a.Close()
	default:
		buckets, err = Accumulate(s, a, buckets, BucketThirdsOfMultiplesOfNine)
	}
	return
}

// Accumulate runs strategy s over adapter a, starting from initial and applying update to every
// element. Like the foldmut functions, it fails with foldmut.ErrConsumed if a was already used.
func Accumulate[T, A any](s Strategy, a *foldmut.Adapter[T], initial A, update foldmut.UpdateFunc[A, T]) (result A, err error) {
	result = initial
	switch s {
	case StrategyFor, StrategyFold:
		err = checkAdapter(a, update)
		if err != nil {
			return
		}
	}
	switch s {
	case StrategyFor:
		for x := range a.Values() {
			update(&result, x)
		}
		err = a.Close()
	case StrategyFold:
		result = collection.ReducesSequence(a.Values(), result, func(accumulator A, x T) A {
			update(&accumulator, x)
			return accumulator
		})
		err = a.Close()
	case StrategyFoldMut:
		result, err = foldmut.FoldMut(a, result, update)
	case StrategyFoldMutFold:
		result, err = foldmut.FoldMutFold(a, result, update)
	case StrategyFoldMutEach:
		result, err = foldmut.FoldMutEach(a, result, update)
	default:
		if a != nil {
			_ = a.Close()
		}
		err = commonerrors.Newf(ErrUnknownStrategy, "%q", s)
	}
	return
}

func checkAdapter[T, A any](a *foldmut.Adapter[T], update foldmut.UpdateFunc[A, T]) error {
	if a == nil {
		return commonerrors.UndefinedParameter("missing adapter")
	}
	if update == nil {
		return commonerrors.UndefinedParameter("missing update function")
	}
	if a.Consumed() {
		return foldmut.ErrConsumed
	}
	return nil
}

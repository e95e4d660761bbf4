/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// Accumulator names the kind of state a strategy folds a workload into.
type Accumulator string

const (
	// AccumulatorVec appends to a growing slice.
	AccumulatorVec Accumulator = "vec"
	// AccumulatorSum adds to a single integer.
	AccumulatorSum Accumulator = "sum"
	// AccumulatorArray adds to a fixed number of buckets.
	AccumulatorArray Accumulator = "array"

	// BucketCount is the number of buckets of AccumulatorArray.
	BucketCount = 10
)

// Buckets is the state of AccumulatorArray.
type Buckets [BucketCount]int64

// ErrUnknownAccumulator is returned when a name does not correspond to any accumulator.
var ErrUnknownAccumulator = commonerrors.New(commonerrors.ErrNotFound, "unknown accumulator")

// Accumulators lists every accumulator.
func Accumulators() []Accumulator {
	return []Accumulator{AccumulatorVec, AccumulatorSum, AccumulatorArray}
}

// AccumulatorNames is similar to Accumulators but returns names.
func AccumulatorNames() []string {
	return collection.Map(Accumulators(), func(a Accumulator) string { return a.String() })
}

// ParseAccumulator returns the accumulator called name.
func ParseAccumulator(name string) (Accumulator, error) {
	for _, a := range Accumulators() {
		if a.String() == name {
			return a, nil
		}
	}
	return "", commonerrors.Newf(ErrUnknownAccumulator, "%q is not one of %v", name, AccumulatorNames())
}

func (a Accumulator) String() string {
	return string(a)
}

// KeepThirdsOfMultiplesOfNine appends n/3 to nums when n is a multiple of 9.
func KeepThirdsOfMultiplesOfNine(nums *[]int64, n int64) {
	if n%3 == 0 {
		n2 := n / 3
		if n2%3 == 0 {
			*nums = append(*nums, n2)
		}
	}
}

// AddThirdsOfMultiplesOfNine adds n/3 to sum when n is a multiple of 9.
func AddThirdsOfMultiplesOfNine(sum *int64, n int64) {
	if n%3 == 0 {
		n2 := n / 3
		if n2%3 == 0 {
			*sum += n2
		}
	}
}

// BucketThirdsOfMultiplesOfNine adds n/3 to the bucket indexed by n/3 modulo the number of buckets
// when n is a multiple of 9.
func BucketThirdsOfMultiplesOfNine(buckets *Buckets, n int64) {
	if n%3 == 0 {
		n2 := n / 3
		if n2%3 == 0 {
			buckets[bucket(n2)] += n2
		}
	}
}

func bucket(n int64) int64 {
	i := n % BucketCount
	if i < 0 {
		i += BucketCount
	}
	return i
}

// Checksum reduces the state of any accumulator to the total of the values it was given, so
// that different accumulators can be compared over the same workload.
func Checksum(state any) (total int64, err error) {
	switch v := state.(type) {
	case []int64:
		total = collection.Reduce(v, total, func(sum, n int64) int64 { return sum + n })
	case int64:
		total = v
	case Buckets:
		total = collection.Reduce(v[:], total, func(sum, n int64) int64 { return sum + n })
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "accumulator state of type %T", state)
	}
	return
}

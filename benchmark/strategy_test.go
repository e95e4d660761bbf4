/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/commonerrors/errortest"
	"github.com/ARM-software/golang-fold-utils/field"
	"github.com/ARM-software/golang-fold-utils/foldmut"
)

func TestStrategies(t *testing.T) {
	thirds := collection.Range[int64](0, 34, field.ToOptional[int64](3))
	halfThirds := collection.Range[int64](0, 17, field.ToOptional[int64](3))
	expected := map[Accumulator]map[string]any{
		AccumulatorVec: {
			WorkloadSimple: thirds,
			// [0, 50) then [0, 50)
			WorkloadChain: append(slices.Clone(halfThirds), halfThirds...),
			WorkloadFlat:  thirds,
		},
		AccumulatorSum: {
			WorkloadSimple: int64(198),
			WorkloadChain:  int64(90),
			WorkloadFlat:   int64(198),
		},
		AccumulatorArray: {
			WorkloadSimple: Buckets{30, 21, 12, 36, 24, 15, 6, 27, 18, 9},
			WorkloadChain:  Buckets{0, 0, 24, 6, 0, 30, 12, 0, 0, 18},
			WorkloadFlat:   Buckets{30, 21, 12, 36, 24, 15, 6, 27, 18, 9},
		},
	}
	for _, acc := range Accumulators() {
		for _, w := range DefaultWorkloads(100) {
			for _, s := range Strategies() {
				t.Run(fmt.Sprintf("%v/%v/%v", acc, w.Name, s), func(t *testing.T) {
					result, err := s.Run(acc, w)
					require.NoError(t, err)
					assert.Equal(t, expected[acc][w.Name], result)
					checksum, err := Checksum(result)
					require.NoError(t, err)
					assert.Equal(t, expected[AccumulatorSum][w.Name], checksum)
				})
			}
		}
	}
}

func TestStrategiesAgreeOnEmptyWorkloads(t *testing.T) {
	for _, acc := range Accumulators() {
		baseline, err := StrategyFor.Run(acc, SimpleWorkload(0))
		require.NoError(t, err)
		for _, s := range Strategies() {
			result, err := s.Run(acc, SimpleWorkload(0))
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(baseline, result, cmpopts.EquateEmpty()), "%v/%v", acc, s)
		}
	}
}

func TestRunUnknownAccumulator(t *testing.T) {
	_, err := StrategyFor.Run(Accumulator("map"), SimpleWorkload(10))
	errortest.AssertError(t, err, ErrUnknownAccumulator, commonerrors.ErrNotFound)
	_, err = Strategy("while").Run(AccumulatorSum, SimpleWorkload(10))
	errortest.AssertError(t, err, ErrUnknownStrategy)
}

func TestAccumulate(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			sum, err := Accumulate(s, foldmut.FromSlice(1, 2, 3, 4, 5), 0, func(acc *int, n int) {
				if n%2 == 0 {
					*acc += n
				}
			})
			require.NoError(t, err)
			assert.Equal(t, 6, sum)

			sum, err = Accumulate(s, foldmut.FromSlice(1, 2, 3), 10, func(acc *int, n int) { *acc += n })
			require.NoError(t, err)
			assert.Equal(t, 16, sum)

			sum, err = Accumulate(s, foldmut.FromSlice[int](), 0, func(acc *int, n int) { *acc += n })
			require.NoError(t, err)
			assert.Zero(t, sum)
		})
	}
	_, err := Accumulate(Strategy("unknown"), foldmut.FromSlice(1), 0, func(acc *int, n int) {})
	errortest.AssertError(t, err, ErrUnknownStrategy)
}

func TestAccumulateRejectsConsumedAdapters(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			calls := 0
			count := func(acc *int, n int) {
				calls++
				*acc += n
			}
			a := foldmut.FromSlice(1, 2, 3)
			sum, err := Accumulate(s, a, 0, count)
			require.NoError(t, err)
			assert.Equal(t, 6, sum)
			assert.True(t, a.Consumed())

			sum, err = Accumulate(s, a, 7, count)
			errortest.AssertError(t, err, foldmut.ErrConsumed, commonerrors.ErrConflict)
			assert.Equal(t, 7, sum)
			assert.Equal(t, 3, calls)

			closed := foldmut.FromSlice(1, 2, 3)
			require.NoError(t, closed.Close())
			_, err = Accumulate(s, closed, 0, count)
			errortest.AssertError(t, err, foldmut.ErrConsumed)
			assert.Equal(t, 3, calls)

			_, err = Accumulate[int, int](s, nil, 0, count)
			errortest.AssertError(t, err, commonerrors.ErrUndefined)
			one := foldmut.FromSlice(1)
			_, err = Accumulate[int, int](s, one, 0, nil)
			errortest.AssertError(t, err, commonerrors.ErrUndefined)
			require.NoError(t, one.Close())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range StrategyNames() {
		s, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err := ParseStrategy("while")
	errortest.AssertError(t, err, ErrUnknownStrategy)
	assert.Equal(t, StrategyFor, Strategies()[0])
}

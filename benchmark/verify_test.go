/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/commonerrors/errortest"
)

func TestVerify(t *testing.T) {
	require.NoError(t, Verify(Accumulators(), DefaultWorkloads(1000), Strategies()))
	require.NoError(t, Verify(Accumulators(), DefaultWorkloads(0), Strategies()))
	require.NoError(t, Verify(Accumulators(), nil, Strategies()))
	require.NoError(t, Verify(nil, DefaultWorkloads(10), Strategies()))

	err := Verify([]Accumulator{AccumulatorSum, "map"}, DefaultWorkloads(10), Strategies())
	errortest.AssertError(t, err, ErrUnknownAccumulator)
}

func TestVerifyDetectsMismatch(t *testing.T) {
	calls := atomic.NewInt64(0)
	// Every generation is longer than the previous one, so no strategy agrees with the baseline.
	unstable := Workload{
		Name: "unstable",
		Size: 9,
		Generate: func() iter.Seq[int64] {
			return collection.RangeSequence[int64](0, 9*calls.Inc(), nil)
		},
	}
	err := Verify(Accumulators(), []Workload{SimpleWorkload(100), unstable}, []Strategy{StrategyFoldMut, StrategyFoldMutEach})
	errortest.AssertError(t, err, ErrStrategyMismatch, commonerrors.ErrConflict)
	for _, acc := range AccumulatorNames() {
		assert.Contains(t, err.Error(), acc+"/unstable/fold_mut")
		assert.Contains(t, err.Error(), acc+"/unstable/fold_mut_each")
		assert.NotContains(t, err.Error(), acc+"/simple/")
	}
}

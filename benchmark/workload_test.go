/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/commonerrors/errortest"
)

func TestWorkloads(t *testing.T) {
	size := int64(101)
	simple := collection.Range[int64](0, size, nil)
	chain := append(collection.Range[int64](0, 50, nil), collection.Range[int64](0, 51, nil)...)
	tests := []struct {
		workload Workload
		expected []int64
	}{
		{SimpleWorkload(size), simple},
		{ChainWorkload(size), chain},
		{FlatWorkload(size), simple},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.workload.Name, func(t *testing.T) {
			assert.Equal(t, size, test.workload.Size)
			assert.Equal(t, test.expected, slices.Collect(test.workload.Generate()))
			// generating again yields the same content
			assert.Equal(t, test.expected, slices.Collect(test.workload.Generate()))
			adapter := test.workload.Adapter()
			assert.Equal(t, test.expected, slices.Collect(adapter.Values()))
			require.NoError(t, adapter.Close())
		})
	}
}

func TestNewWorkload(t *testing.T) {
	for _, name := range WorkloadNames() {
		w, err := NewWorkload(name, 10)
		require.NoError(t, err)
		assert.Equal(t, name, w.Name)
		assert.Contains(t, w.String(), name)
	}
	_, err := NewWorkload("unknown", 10)
	errortest.AssertError(t, err, ErrUnknownWorkload, commonerrors.ErrNotFound)

	workloads, err := NewWorkloads(10, WorkloadFlat, WorkloadSimple)
	require.NoError(t, err)
	require.Len(t, workloads, 2)
	assert.Equal(t, WorkloadFlat, workloads[0].Name)
	_, err = NewWorkloads(10, WorkloadFlat, "nope")
	errortest.AssertError(t, err, ErrUnknownWorkload)

	assert.Len(t, DefaultWorkloads(DefaultSize), 3)
}

func TestOpaque(t *testing.T) {
	assert.Equal(t, int64(12), Opaque(int64(12)))
	assert.Equal(t, "a", Opaque("a"))
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"fmt"
	"testing"

	"github.com/ARM-software/golang-fold-utils/collection"
)

// Sample is the measure of one benchmark run.
type Sample struct {
	Iterations  int   `json:"iterations"`
	NsPerOp     int64 `json:"ns_per_op"`
	AllocsPerOp int64 `json:"allocs_per_op"`
	BytesPerOp  int64 `json:"bytes_per_op"`
}

func newSample(r testing.BenchmarkResult) Sample {
	return Sample{
		Iterations:  r.N,
		NsPerOp:     r.NsPerOp(),
		AllocsPerOp: r.AllocsPerOp(),
		BytesPerOp:  r.AllocedBytesPerOp(),
	}
}

// Result gathers the samples of a strategy run against a workload with a given accumulator.
type Result struct {
	Accumulator Accumulator `json:"accumulator"`
	Group       string      `json:"group"`
	Strategy    Strategy    `json:"strategy"`
	// Checksum is the total of the values folded into the accumulator. See Checksum.
	Checksum    int64    `json:"checksum"`
	Samples     []Sample `json:"samples"`
	NsPerOp     Summary  `json:"ns_per_op"`
	AllocsPerOp Summary  `json:"allocs_per_op"`
	BytesPerOp  Summary  `json:"bytes_per_op"`
	// Relative is the ratio of the mean time per operation to the baseline's one, when the baseline was run.
	Relative float64 `json:"relative,omitempty"`
}

// Section identifies the accumulator and workload the result belongs to e.g. `sum/chain`.
func (r *Result) Section() string {
	return fmt.Sprintf("%v/%v", r.Accumulator, r.Group)
}

// Label identifies the result e.g. `sum/chain/fold_mut`.
func (r *Result) Label() string {
	return fmt.Sprintf("%v/%v", r.Section(), r.Strategy)
}

func (r *Result) summarise() {
	measure := func(f func(Sample) int64) []float64 {
		return collection.Map(r.Samples, func(s Sample) float64 { return float64(f(s)) })
	}
	r.NsPerOp = Summarise(measure(func(s Sample) int64 { return s.NsPerOp }))
	r.AllocsPerOp = Summarise(measure(func(s Sample) int64 { return s.AllocsPerOp }))
	r.BytesPerOp = Summarise(measure(func(s Sample) int64 { return s.BytesPerOp }))
}

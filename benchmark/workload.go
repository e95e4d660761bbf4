/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package benchmark measures the performance of the in-place fold strategies against a plain loop
// and a value fold, over sequences of different shapes.
package benchmark

import (
	"fmt"
	"iter"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/foldmut"
)

const (
	WorkloadSimple = "simple"
	WorkloadChain  = "chain"
	WorkloadFlat   = "flat"

	DefaultSize = 100_000
)

// ErrUnknownWorkload is returned when a workload name does not correspond to any workload.
var ErrUnknownWorkload = commonerrors.New(commonerrors.ErrNotFound, "unknown workload")

// Workload describes a sequence generator benchmarks are run against. Generate must
// return a fresh sequence with the same content on every call.
type Workload struct {
	Name     string
	Size     int64
	Generate func() iter.Seq[int64]
}

func (w Workload) String() string {
	return fmt.Sprintf("%v(%v)", w.Name, w.Size)
}

// Adapter wraps a freshly generated sequence of the workload.
func (w Workload) Adapter() *foldmut.Adapter[int64] {
	return foldmut.FromSequence(w.Generate())
}

// Opaque returns v unchanged. It is never inlined so that the compiler cannot
// specialise the benchmarked loops on the generated values.
//
//go:noinline
func Opaque[T any](v T) T {
	return v
}

// SimpleWorkload generates [0, size).
func SimpleWorkload(size int64) Workload {
	return Workload{
		Name: WorkloadSimple,
		Size: size,
		Generate: func() iter.Seq[int64] {
			return collection.MapSequence(collection.RangeSequence[int64](0, size, nil), Opaque[int64])
		},
	}
}

// ChainWorkload generates [0, size/2) followed by [0, size-size/2).
func ChainWorkload(size int64) Workload {
	half := size / 2
	return Workload{
		Name: WorkloadChain,
		Size: size,
		Generate: func() iter.Seq[int64] {
			return collection.MapSequence(collection.ChainSequence(
				collection.RangeSequence[int64](0, half, nil),
				collection.RangeSequence[int64](0, size-half, nil),
			), Opaque[int64])
		},
	}
}

// FlatWorkload generates [0, size) where each element is produced by its own single element
// sequence, flattened.
func FlatWorkload(size int64) Workload {
	return Workload{
		Name: WorkloadFlat,
		Size: size,
		Generate: func() iter.Seq[int64] {
			return collection.FlatMapSequence(collection.MapSequence(collection.RangeSequence[int64](0, size, nil), collection.Once[int64]), Opaque[iter.Seq[int64]])
		},
	}
}

// WorkloadNames lists the built-in workloads in their default order.
func WorkloadNames() []string {
	return []string{WorkloadSimple, WorkloadChain, WorkloadFlat}
}

// NewWorkload returns the built-in workload called name.
func NewWorkload(name string, size int64) (w Workload, err error) {
	switch name {
	case WorkloadSimple:
		w = SimpleWorkload(size)
	case WorkloadChain:
		w = ChainWorkload(size)
	case WorkloadFlat:
		w = FlatWorkload(size)
	default:
		err = commonerrors.Newf(ErrUnknownWorkload, "%q is not one of %v", name, WorkloadNames())
	}
	return
}

// NewWorkloads returns the built-in workloads called names, in order.
func NewWorkloads(size int64, names ...string) ([]Workload, error) {
	workloads := make([]Workload, 0, len(names))
	for i := range names {
		w, err := NewWorkload(names[i], size)
		if err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}

// DefaultWorkloads returns all the built-in workloads.
func DefaultWorkloads(size int64) []Workload {
	workloads, _ := NewWorkloads(size, WorkloadNames()...)
	return workloads
}

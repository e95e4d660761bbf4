/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/commonerrors/errortest"
	"github.com/ARM-software/golang-fold-utils/logs"
	"github.com/ARM-software/golang-fold-utils/logs/logstest"
)

// fakeBenchmark does not time anything and reports a fixed duration per operation.
func fakeBenchmark(calls *atomic.Int64, nsPerOp int64) BenchmarkFunc {
	return func(f func(b *testing.B)) testing.BenchmarkResult {
		calls.Inc()
		f(&testing.B{})
		return testing.BenchmarkResult{N: 10, T: time.Duration(10 * nsPerOp), MemAllocs: 30, MemBytes: 1000}
	}
}

func newTestRunner(t *testing.T, cfg *Configuration) (*Runner, *logs.StringLoggers) {
	t.Helper()
	loggers, err := logs.NewStringLogger("test")
	require.NoError(t, err)
	runner, err := NewRunner(cfg, loggers)
	require.NoError(t, err)
	return runner, loggers
}

func TestRunner(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := DefaultConfiguration()
	cfg.Size = 1000
	cfg.Samples = 2
	cfg.Verbose = true
	runner, loggers := newTestRunner(t, cfg)
	calls := atomic.NewInt64(0)
	report, err := runner.WithBenchmarkFunc(fakeBenchmark(calls, 42)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3*3*5*2), calls.Load())
	assert.Equal(t, int64(1000), report.Size)
	assert.NotEmpty(t, report.Duration)
	assert.Equal(t, []string{
		"vec/simple", "vec/chain", "vec/flat",
		"sum/simple", "sum/chain", "sum/flat",
		"array/simple", "array/chain", "array/flat",
	}, report.Sections())
	require.Len(t, report.Results, 45)
	for _, result := range report.Results {
		assert.Len(t, result.Samples, 2)
		assert.InDelta(t, 42, result.NsPerOp.Mean, 1e-9)
		assert.InDelta(t, 3, result.AllocsPerOp.Mean, 1e-9)
		assert.InDelta(t, 100, result.BytesPerOp.Mean, 1e-9)
		assert.InDelta(t, 1, result.Relative, 1e-9)
	}
	content := loggers.GetLogContent()
	assert.Contains(t, content, "verifying 5 strategies against 3 workloads with 3 accumulators")
	assert.Contains(t, content, "vec/flat/fold_mut_each")
	assert.Contains(t, content, "array/chain/fold")
	assert.Contains(t, content, "sample #2")
	assert.Contains(t, content, "benchmark completed")
}

func TestRunnerMeasuresStrategies(t *testing.T) {
	if testing.Short() {
		t.Skip("runs actual benchmarks")
	}
	cfg := DefaultConfiguration()
	cfg.Size = 900
	cfg.Samples = 1
	cfg.Accumulators = []string{AccumulatorVec.String(), AccumulatorArray.String()}
	cfg.Workloads = []string{WorkloadSimple}
	cfg.Strategies = []string{StrategyFoldMut.String()}
	loggers, err := logs.NewLogrLogger(logstest.NewTestLogger(t), "test")
	require.NoError(t, err)
	runner, err := NewRunner(cfg, loggers)
	require.NoError(t, err)
	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "vec/simple/fold_mut", report.Results[0].Label())
	assert.Equal(t, "array/simple/fold_mut", report.Results[1].Label())
	for _, result := range report.Results {
		// thirds of the multiples of 9 in [0, 900)
		assert.Equal(t, int64(14850), result.Checksum)
		require.Len(t, result.Samples, 1)
		assert.Positive(t, result.Samples[0].Iterations)
		assert.Positive(t, result.NsPerOp.Mean)
	}
}

func TestRunnerCancellation(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Size = 10
	cfg.Verify = false
	runner, _ := newTestRunner(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	calls := atomic.NewInt64(0)
	runner.WithBenchmarkFunc(func(f func(b *testing.B)) testing.BenchmarkResult {
		if calls.Inc() == 3 {
			cancel()
		}
		return testing.BenchmarkResult{N: 1, T: time.Microsecond}
	})
	_, err := runner.Run(ctx)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Equal(t, int64(3), calls.Load())
}

func TestRunnerVerificationFailure(t *testing.T) {
	cfg := DefaultConfiguration()
	runner, loggers := newTestRunner(t, cfg)
	calls := atomic.NewInt64(0)
	runner.workloads = append(runner.workloads, Workload{
		Name: "unstable",
		Size: 9,
		Generate: func() iter.Seq[int64] {
			return SimpleWorkload(9 * calls.Inc()).Generate()
		},
	})
	_, err := runner.WithBenchmarkFunc(fakeBenchmark(atomic.NewInt64(0), 1)).Run(context.Background())
	errortest.AssertError(t, err, ErrStrategyMismatch)
	assert.Contains(t, loggers.GetLogContent(), "unstable")
}

func TestNewRunnerErrors(t *testing.T) {
	loggers, err := logs.NewNoopLogger("test")
	require.NoError(t, err)
	_, err = NewRunner(nil, loggers)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = NewRunner(DefaultConfiguration(), nil)
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
	cfg := DefaultConfiguration()
	cfg.Samples = 0
	_, err = NewRunner(cfg, loggers)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	cfg = DefaultConfiguration()
	cfg.Accumulators = []string{"tuple"}
	_, err = NewRunner(cfg, loggers)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	runner, err := NewRunner(DefaultConfiguration(), loggers)
	require.NoError(t, err)
	assert.Equal(t, Accumulators(), runner.Accumulators())
	assert.Len(t, runner.Workloads(), 3)
	assert.Len(t, runner.Strategies(), 5)
}

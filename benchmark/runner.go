/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/logs"
)

// BenchmarkFunc runs a benchmark function and returns its result. testing.Benchmark is used by default.
type BenchmarkFunc func(f func(b *testing.B)) testing.BenchmarkResult

// Runner runs the configured strategies against the configured workloads, for each configured accumulator.
type Runner struct {
	cfg          *Configuration
	loggers      logs.Loggers
	benchmark    BenchmarkFunc
	accumulators []Accumulator
	workloads    []Workload
	strategies   []Strategy
}

// NewRunner creates a runner from a configuration. The configuration is validated.
func NewRunner(cfg *Configuration, loggers logs.Loggers) (runner *Runner, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedParameter("missing configuration")
		return
	}
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid benchmark configuration")
		return
	}
	accumulators, err := cfg.SelectedAccumulators()
	if err != nil {
		return
	}
	workloads, err := cfg.SelectedWorkloads()
	if err != nil {
		return
	}
	strategies, err := cfg.SelectedStrategies()
	if err != nil {
		return
	}
	runner = &Runner{
		cfg:          cfg,
		loggers:      loggers,
		benchmark:    testing.Benchmark,
		accumulators: accumulators,
		workloads:    workloads,
		strategies:   strategies,
	}
	return
}

// WithBenchmarkFunc changes how benchmarks are executed.
func (r *Runner) WithBenchmarkFunc(f BenchmarkFunc) *Runner {
	if f != nil {
		r.benchmark = f
	}
	return r
}

// Accumulators returns the accumulators the runner goes through.
func (r *Runner) Accumulators() []Accumulator {
	return r.accumulators
}

// Workloads returns the workloads the runner goes through.
func (r *Runner) Workloads() []Workload {
	return r.workloads
}

// Strategies returns the strategies the runner goes through.
func (r *Runner) Strategies() []Strategy {
	return r.strategies
}

// Verify checks that all strategies agree on every workload, for every accumulator.
func (r *Runner) Verify() error {
	r.loggers.Log(fmt.Sprintf("verifying %v strategies against %v workloads with %v accumulators", len(r.strategies), len(r.workloads), len(r.accumulators)))
	err := Verify(r.accumulators, r.workloads, r.strategies)
	if err != nil {
		r.loggers.LogError(err)
	}
	return err
}

// Run benchmarks every strategy against every workload, for every accumulator. Cancellation is checked between samples.
func (r *Runner) Run(ctx context.Context) (report *Report, err error) {
	if r.cfg.Verify {
		err = r.Verify()
		if err != nil {
			return
		}
	}
	start := time.Now()
	report = &Report{Size: int64(r.cfg.Size), Started: start}
	for _, acc := range r.accumulators {
		for _, w := range r.workloads {
			_ = r.loggers.SetLogSource(fmt.Sprintf("%v/%v", acc, w.Name))
			for _, s := range r.strategies {
				var result *Result
				result, err = r.runStrategy(ctx, acc, w, s)
				if err != nil {
					return
				}
				report.Results = append(report.Results, *result)
			}
		}
	}
	report.computeRelatives()
	report.Duration = time.Since(start).String()
	r.loggers.Log(fmt.Sprintf("benchmark completed in %v", report.Duration))
	return
}

func (r *Runner) runStrategy(ctx context.Context, acc Accumulator, w Workload, s Strategy) (result *Result, err error) {
	result = &Result{Accumulator: acc, Group: w.Name, Strategy: s}
	for i := 0; i < r.cfg.Samples; i++ {
		err = commonerrors.ConvertContextError(ctx.Err())
		if err != nil {
			return
		}
		var (
			state  any
			runErr error
		)
		sample := newSample(r.benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for j := 0; j < b.N; j++ {
				state, runErr = s.Run(acc, w)
				if runErr != nil {
					return
				}
			}
		}))
		if runErr == nil && state != nil {
			result.Checksum, runErr = Checksum(state)
		}
		if runErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnknown, runErr, "failed running %v", result.Label())
			return
		}
		result.Samples = append(result.Samples, sample)
		if r.cfg.Verbose {
			r.loggers.Log(fmt.Sprintf("%v sample #%v: %v ns/op over %v iterations", result.Label(), i+1, sample.NsPerOp, sample.Iterations))
		}
	}
	result.summarise()
	r.loggers.Log(fmt.Sprintf("%v: %v ns/op (±%.0f)", result.Label(), int64(result.NsPerOp.Mean), result.NsPerOp.StdDev))
	return
}

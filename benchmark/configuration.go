/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	mapset "github.com/deckarep/golang-set/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/config"
)

const (
	EnvVarPrefix = "foldbench"

	FormatText = "text"
	FormatJSON = "json"

	DefaultSamples = 5
)

var _ config.IServiceConfiguration = &Configuration{}

// Configuration defines what is benchmarked and how results are reported.
type Configuration struct {
	Size         int      `mapstructure:"size"`
	Samples      int      `mapstructure:"samples"`
	Accumulators []string `mapstructure:"accumulators"`
	Workloads    []string `mapstructure:"workloads"`
	Strategies   []string `mapstructure:"strategies"`
	Format       string   `mapstructure:"format"`
	Output       string   `mapstructure:"output"`
	Verify       bool     `mapstructure:"verify"`
	LogFormat    string   `mapstructure:"log_format"`
	Verbose      bool     `mapstructure:"verbose"`
}

// DefaultConfiguration returns the configuration reproducing the reference study.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Size:         DefaultSize,
		Samples:      DefaultSamples,
		Accumulators: AccumulatorNames(),
		Workloads:    WorkloadNames(),
		Strategies:   StrategyNames(),
		Format:       FormatText,
		Verify:       true,
		LogFormat:    FormatText,
	}
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Size, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Samples, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Accumulators, validation.Required, validation.Each(validation.In(toAny(AccumulatorNames())...))),
		validation.Field(&cfg.Workloads, validation.Required, validation.Each(validation.In(toAny(WorkloadNames())...))),
		validation.Field(&cfg.Strategies, validation.Required, validation.Each(validation.In(toAny(StrategyNames())...))),
		validation.Field(&cfg.Format, validation.Required, validation.In(FormatText, FormatJSON)),
		validation.Field(&cfg.LogFormat, validation.Required, validation.In(FormatText, FormatJSON)),
	)
}

// SelectedAccumulators returns the configured accumulators without duplicates, in the order they were first listed.
func (cfg *Configuration) SelectedAccumulators() (accumulators []Accumulator, err error) {
	names := unique(cfg.Accumulators)
	accumulators = make([]Accumulator, 0, len(names))
	for i := range names {
		a, subErr := ParseAccumulator(names[i])
		if subErr != nil {
			err = subErr
			return
		}
		accumulators = append(accumulators, a)
	}
	return
}

// SelectedWorkloads returns the configured workloads without duplicates, in the order they were first listed.
func (cfg *Configuration) SelectedWorkloads() ([]Workload, error) {
	return NewWorkloads(int64(cfg.Size), unique(cfg.Workloads)...)
}

// SelectedStrategies returns the configured strategies without duplicates, in the order they were first listed.
func (cfg *Configuration) SelectedStrategies() (strategies []Strategy, err error) {
	names := unique(cfg.Strategies)
	strategies = make([]Strategy, 0, len(names))
	for i := range names {
		s, subErr := ParseStrategy(names[i])
		if subErr != nil {
			err = subErr
			return
		}
		strategies = append(strategies, s)
	}
	return
}

func unique(values []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	return collection.Filter(values, func(v string) bool {
		return seen.Add(v)
	})
}

func toAny[T any](values []T) []any {
	return collection.Map(values, func(v T) any { return v })
}

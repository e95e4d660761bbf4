/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a measure across samples.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Summarise computes the summary of values. The standard deviation is the unbiased estimate and is zero for less than two values.
func Summarise(values []float64) (s Summary) {
	s.Count = len(values)
	if s.Count == 0 {
		return
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if s.Count < 2 {
		s.StdDev = 0
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	return
}

// Ratio returns how many times slower (>1) or faster (<1) s is compared to baseline, based on their means.
func (s Summary) Ratio(baseline Summary) float64 {
	if baseline.Mean == 0 {
		return 0
	}
	return s.Mean / baseline.Mean
}

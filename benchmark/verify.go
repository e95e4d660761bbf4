/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ARM-software/golang-fold-utils/collection"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// ErrStrategyMismatch is returned when a strategy does not accumulate the same result as the baseline.
var ErrStrategyMismatch = commonerrors.New(commonerrors.ErrConflict, "strategy result differs from baseline")

// Verify runs every strategy once over every workload, for every accumulator, and checks that
// they all produce the same accumulator state as the StrategyFor baseline. Every mismatch is reported.
func Verify(accumulators []Accumulator, workloads []Workload, strategies []Strategy) error {
	return collection.ForAll(accumulators, func(acc Accumulator) error {
		return collection.ForAll(workloads, func(w Workload) error {
			expected, err := StrategyFor.Run(acc, w)
			if err != nil {
				return err
			}
			return collection.ForAll(strategies, func(s Strategy) error {
				actual, err := s.Run(acc, w)
				if err != nil {
					return err
				}
				if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
					return commonerrors.Newf(ErrStrategyMismatch, "%v/%v/%v (-%v +%v):\n%v", acc, w.Name, s, StrategyFor, s, diff)
				}
				return nil
			})
		})
	})
}

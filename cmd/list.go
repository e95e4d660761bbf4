/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-fold-utils/benchmark"
)

// NewListCommand creates the command listing the available workloads, strategies and accumulators.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available workloads, strategies and accumulators",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) (err error) {
			out := command.OutOrStdout()
			_, err = fmt.Fprintf(out, "workloads:    %v\n", strings.Join(benchmark.WorkloadNames(), ", "))
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(out, "strategies:   %v\n", strings.Join(benchmark.StrategyNames(), ", "))
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(out, "accumulators: %v\n", strings.Join(benchmark.AccumulatorNames(), ", "))
			return
		},
	}
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the command checking that every strategy produces the same accumulator.
func NewVerifyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "verify",
		Short: "Check that all strategies produce identical results",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) (err error) {
			runner, _, loggers, err := prepare(command)
			if err != nil {
				return
			}
			defer func() { _ = loggers.Close() }()
			err = runner.Verify()
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(command.OutOrStdout(), "%v strategies agree on %v workloads with %v accumulators\n", len(runner.Strategies()), len(runner.Workloads()), len(runner.Accumulators()))
			return
		},
	}
	addBenchmarkFlags(command.Flags())
	return command
}

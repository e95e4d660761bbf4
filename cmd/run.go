/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ARM-software/golang-fold-utils/benchmark"
)

// NewRunCommand creates the command running the benchmarks and reporting their results.
func NewRunCommand() *cobra.Command {
	return newRunCommand(afero.NewOsFs())
}

func newRunCommand(fs afero.Fs) *cobra.Command {
	command := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmarks and report the results",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) (err error) {
			runner, cfg, loggers, err := prepare(command)
			if err != nil {
				return
			}
			defer func() { _ = loggers.Close() }()
			report, err := runner.Run(command.Context())
			if err != nil {
				loggers.LogError(err)
				return
			}
			if cfg.Output == "" {
				return report.Write(command.OutOrStdout(), cfg.Format)
			}
			err = report.Save(fs, cfg.Output, cfg.Format)
			if err == nil {
				loggers.Log(fmt.Sprintf("report written to %v", cfg.Output))
			}
			return
		},
	}
	defaults := benchmark.DefaultConfiguration()
	flags := command.Flags()
	addBenchmarkFlags(flags)
	flags.Int(samplesFlag, defaults.Samples, "number of times each strategy is measured")
	flags.String(formatFlag, defaults.Format, "the format of the report: text or json")
	flags.StringP(outputFlag, "o", defaults.Output, "file the report is saved to (standard output if empty)")
	flags.Bool(verifyFlag, defaults.Verify, "check that all strategies agree before measuring them")
	return command
}

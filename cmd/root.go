/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package cmd contains the commands of the foldbench binary.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-fold-utils/benchmark"
	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/config"
	"github.com/ARM-software/golang-fold-utils/logs"
)

const (
	sizeFlag         = "size"
	samplesFlag      = "samples"
	accumulatorsFlag = "accumulators"
	workloadsFlag    = "workloads"
	strategiesFlag   = "strategies"
	formatFlag       = "format"
	outputFlag       = "output"
	verifyFlag       = "verify"
	logFormatFlag    = "log-format"
	verboseFlag      = "verbose"

	loggerSource = "foldbench"
)

// NewRootCommand creates the foldbench command. Every child command reads its settings from CLI flags,
// environment variables prefixed with FOLDBENCH, a `.env` file or defaults (in that order).
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "foldbench",
		Short: "Compares the cost of folding sequences into a mutable accumulator",
		Long: `foldbench measures how a plain loop, a value fold and the three mutable fold strategies
(fold_mut, fold_mut_fold and fold_mut_each) perform on simple, chained and flattened sequences,
folding them into a slice (vec), an integer (sum) or fixed buckets (array).`,
		SilenceUsage: true,
	}
	root.AddCommand(NewRunCommand(), NewVerifyCommand(), NewListCommand())
	return root
}

func addBenchmarkFlags(flags *pflag.FlagSet) {
	defaults := benchmark.DefaultConfiguration()
	flags.Int(sizeFlag, defaults.Size, "number of elements in each workload")
	flags.StringSlice(accumulatorsFlag, defaults.Accumulators, "accumulators to fold into")
	flags.StringSlice(workloadsFlag, defaults.Workloads, "workloads to go through")
	flags.StringSlice(strategiesFlag, defaults.Strategies, "strategies to compare")
	flags.String(logFormatFlag, defaults.LogFormat, "the format of the logs: text or json")
	flags.Bool(verboseFlag, defaults.Verbose, "log every sample")
}

// loadConfiguration loads the benchmark configuration once flags have been parsed.
func loadConfiguration(flags *pflag.FlagSet) (cfg *benchmark.Configuration, err error) {
	session := viper.New()
	err = config.BindFlagsToEnv(session, benchmark.EnvVarPrefix, flags)
	if err != nil {
		return
	}
	cfg = benchmark.DefaultConfiguration()
	err = config.LoadFromViper(session, benchmark.EnvVarPrefix, cfg, benchmark.DefaultConfiguration())
	return
}

// newLoggers creates loggers writing to w. JSON logs are produced by zerolog and text logs by zap.
func newLoggers(cfg *benchmark.Configuration, w io.Writer) (logs.Loggers, error) {
	switch cfg.LogFormat {
	case benchmark.FormatJSON:
		return logs.NewJSONLoggerForWriter(w, loggerSource, "cli")
	case benchmark.FormatText:
		return logs.NewZapConsoleLogger(w, loggerSource, cfg.Verbose)
	default:
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "log format [%v]", cfg.LogFormat)
	}
}

// prepare loads the configuration and creates the runner. The returned loggers must be closed.
func prepare(command *cobra.Command) (runner *benchmark.Runner, cfg *benchmark.Configuration, loggers logs.Loggers, err error) {
	cfg, err = loadConfiguration(command.Flags())
	if err != nil {
		return
	}
	loggers, err = newLoggers(cfg, command.ErrOrStderr())
	if err != nil {
		return
	}
	runner, err = benchmark.NewRunner(cfg, loggers)
	if err != nil {
		_ = loggers.Close()
		loggers = nil
	}
	return
}

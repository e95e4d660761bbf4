/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/logs/logrimp"
)

// Syncing a terminal fails on Linux, see https://github.com/uber-go/zap/issues/328
const terminalSyncError = "invalid argument"

// NewZapLogger returns loggers backed by zap (https://github.com/uber-go/zap). The zap logger is synced on Close.
func NewZapLogger(zapL *zap.Logger, loggerSource string) (Loggers, error) {
	if zapL == nil {
		return nil, commonerrors.ErrNoLogger
	}
	return NewLogrLoggerWithClose(logrimp.NewZapLogger(zapL), loggerSource, func() error {
		return commonerrors.IgnoreCorrespondTo(zapL.Sync(), terminalSyncError)
	})
}

// NewZapConsoleLogger returns loggers writing human-readable lines to w. Debug entries are only written when verbose is set.
func NewZapConsoleLogger(w io.Writer, loggerSource string, verbose bool) (Loggers, error) {
	if w == nil {
		return nil, commonerrors.UndefinedParameter("missing writer")
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoding := zap.NewDevelopmentEncoderConfig()
	encoding.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoding), zapcore.AddSync(w), level)
	return NewZapLogger(zap.New(core), loggerSource)
}

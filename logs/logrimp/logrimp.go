/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp provides logr.Logger constructors over the logging backends in use.
package logrimp

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// KeyError is the field errors are reported under.
const KeyError = "error"

// NewWriterLogr returns a logger printing one line per entry to w. Entries more verbose than verbosity are dropped.
func NewWriterLogr(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix == "" {
			_, _ = fmt.Fprintln(w, args)
			return
		}
		_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
	}, funcr.Options{Verbosity: verbosity})
}

// NewZapLogger wraps a zap logger (https://github.com/uber-go/zap).
func NewZapLogger(logger *zap.Logger) logr.Logger {
	return zapr.NewLoggerWithOptions(logger, zapr.ErrorKey(KeyError))
}

// NewNoopLogger returns a discarding logger.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

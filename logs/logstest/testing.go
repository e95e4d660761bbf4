/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logstest provides loggers for tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	logger, _ := NewNullTestLoggerWithHook()
	return logger
}

// NewNullTestLoggerWithHook returns a logger to nothing as well as a hook recording every entry logged so that tests can make assertions on them.
func NewNullTestLoggerWithHook() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger), hook
}

// NewTestLogger returns a logger writing to the test output.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

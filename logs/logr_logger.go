/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
	"github.com/ARM-software/golang-fold-utils/logs/logrimp"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu     sync.RWMutex
	logger logr.Logger
	closer func() error
}

func (l *logrLogger) get() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer()
}

// Check checks the loggers are defined. A logr.Logger without sink (e.g. logr.Discard()) is valid and discards everything.
func (l *logrLogger) Check() error {
	if l == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.get().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...interface{}) {
	var errs []error
	var rest []interface{}
	for i := range err {
		if e, ok := err[i].(error); ok {
			errs = append(errs, e)
			continue
		}
		if err[i] != nil {
			rest = append(rest, err[i])
		}
	}
	l.get().Error(commonerrors.Join(errs...), strings.TrimSpace(fmt.Sprintln(rest...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{logger: logrImpl, closer: closeFunc}
	err = l.Check()
	if err != nil {
		return
	}
	err = l.SetLoggerSource(loggerSource)
	loggers = l
	return
}

// NewNoopLogger returns loggers discarding everything.
func NewNoopLogger(loggerSource string) (Loggers, error) {
	return NewLogrLogger(logrimp.NewNoopLogger(), loggerSource)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// JSONLoggers defines a JSON logger
type JSONLoggers struct {
	mu           sync.RWMutex
	source       string
	loggerSource string
	zerologger   zerolog.Logger
	closer       io.Closer
}

func (l *JSONLoggers) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return nil
}

func (l *JSONLoggers) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *JSONLoggers) GetSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *JSONLoggers) GetLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

// Check checks whether the logger is correctly defined or not.
func (l *JSONLoggers) Check() error {
	if l.GetSource() == "" {
		return commonerrors.ErrNoLogSource
	}
	if l.GetLoggerSource() == "" {
		return commonerrors.ErrNoLoggerSource
	}
	return nil
}

// Log logs to the output stream.
func (l *JSONLoggers) Log(output ...interface{}) {
	if len(output) == 1 && output[0] == "\n" {
		return
	}
	l.zerologger.Info().Str(KeyLoggerSource, l.GetLoggerSource()).Str(KeyLogSource, l.GetSource()).Msg(strings.TrimSpace(fmt.Sprint(output...)))
}

// LogError logs to the error stream.
func (l *JSONLoggers) LogError(err ...interface{}) {
	if len(err) == 1 && err[0] == "\n" {
		return
	}
	l.zerologger.Error().Str(KeyLoggerSource, l.GetLoggerSource()).Str(KeyLogSource, l.GetSource()).Msg(strings.TrimSpace(fmt.Sprint(err...)))
}

// Close closes the logger and the underlying writer if it was requested.
func (l *JSONLoggers) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NewJSONLoggerForWriter creates a JSON logger writing one object per line to writer.
// The writer is not closed when the loggers are.
func NewJSONLoggerForWriter(writer io.Writer, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(writer, nil, loggerSource, source)
}

// NewJSONLogger is similar to NewJSONLoggerForWriter but closes writer on Close().
func NewJSONLogger(writer io.WriteCloser, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(writer, writer, loggerSource, source)
}

func newJSONLogger(writer io.Writer, closer io.Closer, loggerSource string, source string) (loggers Loggers, err error) {
	if writer == nil {
		err = commonerrors.UndefinedParameter("missing writer")
		return
	}
	l := &JSONLoggers{
		source:       source,
		loggerSource: loggerSource,
		zerologger:   zerolog.New(writer).With().Timestamp().Logger(),
		closer:       closer,
	}
	err = l.Check()
	if err != nil {
		return
	}
	loggers = l
	return
}

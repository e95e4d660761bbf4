/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"
	"sync"

	"github.com/ARM-software/golang-fold-utils/logs/logrimp"
)

// StringLoggers keep everything logged in memory so that it can be inspected afterwards.
type StringLoggers struct {
	Loggers
	content *syncBuilder
}

// GetLogContent returns everything logged so far, one entry per line.
func (l *StringLoggers) GetLogContent() string {
	return l.content.String()
}

type syncBuilder struct {
	mu      sync.RWMutex
	builder strings.Builder
}

func (b *syncBuilder) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.builder.Write(p)
}

func (b *syncBuilder) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.builder.String()
}

// NewStringLogger creates loggers recording entries in memory.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	content := &syncBuilder{}
	l, err := NewLogrLogger(logrimp.NewWriterLogr(content, 0), loggerSource)
	if err != nil {
		return
	}
	loggers = &StringLoggers{Loggers: l, content: content}
	return
}

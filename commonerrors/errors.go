/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the sentinel errors shared across the module and helpers to
// wrap, match and aggregate them.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrTimeout        = errors.New("timeout")
	ErrEOF            = io.EOF
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// Ignore returns nil if `target` error matches any of the `ignore` errors. Otherwise, target is returned as is.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// IgnoreCorrespondTo returns nil if `target` error description contains any of the `ignore` descriptions.
func IgnoreCorrespondTo(target error, ignore ...string) error {
	if CorrespondTo(target, ignore...) {
		return nil
	}
	return target
}

// Join returns an error wrapping all the non-nil errors provided. It returns nil if none of them is set.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// New returns an error of type `errorType` with a reason.
func New(errorType error, reason string) error {
	if errorType == nil {
		return errors.New(reason)
	}
	if reason == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, reason)
}

// Newf is similar to New but allows formatting the reason.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. If the error is nil, nil is returned.
func WrapError(targetError, originalError error, msg string) error {
	if originalError == nil {
		return nil
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	if msg == "" {
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, msg, originalError)
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// UndefinedParameter returns an undefined error with a reason.
func UndefinedParameter(reason string) error {
	return New(ErrUndefined, reason)
}

// UndefinedParameterf is similar to UndefinedParameter but allows formatting the reason.
func UndefinedParameterf(msgFormat string, args ...any) error {
	return Newf(ErrUndefined, msgFormat, args...)
}

// ConvertContextError converts a context error into its common error counterpart.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return WrapError(ErrCancelled, err, "")
	case errors.Is(err, context.DeadlineExceeded):
		return WrapError(ErrTimeout, err, "")
	default:
		return err
	}
}

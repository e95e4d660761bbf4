/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package errortest provides test assertions on errors built on commonerrors matching.
package errortest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// AssertError asserts that err matches one of the expectedErrors according to commonerrors.Any.
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	return assert.Truef(t, commonerrors.Any(err, expectedErrors...), "failed error assertion:\n actual: %v\n expected: %+v", err, expectedErrors)
}

// RequireError is similar to AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	require.Truef(t, commonerrors.Any(err, expectedErrors...), "failed error requirement:\n actual: %v\n expected: %+v", err, expectedErrors)
}

// AssertErrorDescription asserts that the error description contains one of expectedDescriptions.
func AssertErrorDescription(t *testing.T, err error, expectedDescriptions ...string) bool {
	t.Helper()
	return assert.Truef(t, commonerrors.CorrespondTo(err, expectedDescriptions...), "failed error description assertion:\n actual: %v\n expected: %+v", err, expectedDescriptions)
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package errortest

import (
	"fmt"
	"testing"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
	AssertError(t, fmt.Errorf("wrapped: %w", commonerrors.ErrConflict), commonerrors.ErrConflict)
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrUndefined)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.ErrUndefined, "UNDEFINED")
}

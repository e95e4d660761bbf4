/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package field

import (
	"math/rand"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalField(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		defaultValue any
		setFunction  func(any) any
		getFunction  func(any, any) any
	}{
		{
			name:         "Int",
			value:        rand.Int(), //nolint:gosec
			defaultValue: rand.Int(), //nolint:gosec
			setFunction:  func(a any) any { return ToOptionalInt(a.(int)) },
			getFunction:  func(a any, d any) any { return OptionalInt(a.(*int), d.(int)) },
		},
		{
			name:         "Int64",
			value:        rand.Int63(), //nolint:gosec
			defaultValue: rand.Int63(), //nolint:gosec
			setFunction:  func(a any) any { return ToOptionalInt64(a.(int64)) },
			getFunction:  func(a any, d any) any { return OptionalInt64(a.(*int64), d.(int64)) },
		},
		{
			name:         "String",
			value:        faker.Sentence(),
			defaultValue: faker.Name(),
			setFunction:  func(a any) any { return ToOptionalString(a.(string)) },
			getFunction:  func(a any, d any) any { return OptionalString(a.(*string), d.(string)) },
		},
		{
			name:         "Bool",
			value:        true,
			defaultValue: false,
			setFunction:  func(a any) any { return ToOptionalBool(a.(bool)) },
			getFunction:  func(a any, d any) any { return OptionalBool(a.(*bool), d.(bool)) },
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			ptr := test.setFunction(test.value)
			require.NotNil(t, ptr)
			assert.Equal(t, test.value, test.getFunction(ptr, test.defaultValue))
		})
	}
}

func TestOptional(t *testing.T) {
	assert.Equal(t, 5, Optional[int](nil, 5))
	assert.Equal(t, 3, Optional(ToOptional(3), 5))
	assert.Equal(t, "", OptionalString(nil, ""))
}

func TestToOptionalOrNilIfEmpty(t *testing.T) {
	assert.Nil(t, ToOptionalOrNilIfEmpty(0))
	assert.Nil(t, ToOptionalOrNilIfEmpty(""))
	assert.Nil(t, ToOptionalOrNilIfEmpty[[]int](nil))
	value := faker.Word()
	ptr := ToOptionalOrNilIfEmpty(value)
	require.NotNil(t, ptr)
	assert.Equal(t, value, *ptr)
}

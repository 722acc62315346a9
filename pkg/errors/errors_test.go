/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{"without cause", New(ErrCodeNotFound, "file missing"), "[NOT_FOUND] file missing"},
		{"with cause", Wrap(ErrCodeUnavailable, "api down", errors.New("dial tcp")), "[SERVICE_UNAVAILABLE] api down: dial tcp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := fmt.Errorf("outer: %w", Wrap(ErrCodeInternal, "inner", cause))

	assert.ErrorIs(t, err, cause)

	var se *StructuredError
	if assert.ErrorAs(t, err, &se) {
		assert.Equal(t, ErrCodeInternal, se.Code)
		assert.Equal(t, "inner", se.Message)
	}
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeInvalidRequest, "bad uri", nil, map[string]any{"uri": "ftp://x"})
	assert.Equal(t, "ftp://x", err.Context["uri"])
	assert.Nil(t, err.Unwrap())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(fmt.Errorf("wrapped: %w", New(ErrCodeNotFound, "x"))))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, ErrCodeInternal, CodeOf(nil))
}

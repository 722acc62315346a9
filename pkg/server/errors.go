/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	scerrors "github.com/netra-systems/stagecheck/pkg/errors"
	"github.com/netra-systems/stagecheck/pkg/serializer"
)

// WriteError writes an ErrorResponse with the given status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code scerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to an ErrorResponse. Structured errors keep
// their code, message and context; anything else is reported as an internal
// error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	code := scerrors.ErrCodeInternal
	message := fallbackMessage
	var cause error = err

	var se *scerrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		message = se.Message
		cause = se.Cause
		details = mergeDetails(se.Context, details)
	}

	if cause != nil {
		details = mergeDetails(details, map[string]any{"error": cause.Error()})
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode returns the HTTP status for an error code.
func HTTPStatusFromCode(code scerrors.ErrorCode) int {
	switch code {
	case scerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case scerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case scerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case scerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case scerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case scerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case scerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code scerrors.ErrorCode) bool {
	switch code {
	case scerrors.ErrCodeTimeout, scerrors.ErrCodeUnavailable,
		scerrors.ErrCodeRateLimitExceeded, scerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries over a's, or nil if both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

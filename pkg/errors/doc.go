/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured errors with machine-readable codes.
//
// Errors created here carry an ErrorCode, a human-readable message, an
// optional wrapped cause and optional key/value context. They interoperate
// with the standard library errors package:
//
//	err := errors.Wrap(errors.ErrCodeNotFound, "env file not found", cause)
//	var se *errors.StructuredError
//	if stderrors.As(err, &se) {
//	    fmt.Println(se.Code)
//	}
//
// The HTTP server maps codes to status codes and retryability, so callers
// should pick the code that describes the failure rather than its origin.
package errors

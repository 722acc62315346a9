/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

// Validation timeouts.
const (
	// ValidationTimeout bounds a CLI validation run, including loading
	// every source.
	ValidationTimeout = 30 * time.Second

	// KubernetesReadTimeout bounds a single ConfigMap or Secret read.
	KubernetesReadTimeout = 15 * time.Second
)

// Handler limits.
const (
	// HandlerTimeout bounds processing of one /v1/validate request.
	HandlerTimeout = 10 * time.Second

	// MaxRequestBodyBytes caps the size of a validation request body.
	MaxRequestBodyBytes int64 = 1 << 20
)

// Server timeouts and limits.
const (
	ServerPort            = 8080
	ServerRateLimit       = 100
	ServerRateLimitBurst  = 200
	ServerReadTimeout     = 10 * time.Second
	ServerReadHeaderLimit = 5 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

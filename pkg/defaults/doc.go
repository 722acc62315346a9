/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults provides centralized configuration constants for stagecheck.
//
// This package defines timeout values, request limits, and other configuration
// defaults used across the codebase.
//
// # Timeout Categories
//
//   - Validation timeouts: For one validation pass including source loading
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Kubernetes timeouts: For ConfigMap and Secret reads
//
// # Usage
//
//	import "github.com/netra-systems/stagecheck/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ValidationTimeout)
//	defer cancel()
package defaults

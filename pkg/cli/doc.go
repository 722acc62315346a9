/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for stagecheck.
//
// # Overview
//
// stagecheck verifies that a deployment's environment variables are fit for
// the staging environment before the service starts. It can check the local
// process environment, files, or Kubernetes objects, and it can run as an
// HTTP service that validates posted variable sets.
//
// # Commands
//
// validate - Check one or more variable sources:
//
//	stagecheck validate                                  # process environment
//	stagecheck validate --source staging.env --format table
//	stagecheck validate -s cm://netra/backend-config -s secret://netra/backend-secrets --merge
//	stagecheck validate -s env:// --fail-on-error        # exit 1 when invalid
//
// Sources are URIs: env:// (default), cm://namespace/name, secret://namespace/name,
// or a file path (.env files use dotenv rules; .yaml, .yml and .json are parsed
// as flat mappings). Multiple sources are validated independently unless
// --merge is given, in which case the first source that defines a variable wins.
//
// rules - Print the rule sets applied by validate:
//
//	stagecheck rules --format yaml
//
// serve - Run the HTTP API:
//
//	stagecheck serve
//
// Endpoints: POST /v1/validate, GET /health, GET /ready, GET /metrics.
//
// # Global Flags
//
//	--debug     Enable debug logging
//	--log-json  Emit logs as JSON
//
// # Exit Codes
//
//	0  success
//	1  validation failed or a command error occurred
//	2  interrupted
package cli

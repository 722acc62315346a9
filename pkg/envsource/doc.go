/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package envsource provides read-only key/value sources of environment
// variables for configuration validation.
//
// # Overview
//
// A Source answers a single question: is a variable set, and to what value.
// Absence and the empty string are distinct; validators rely on that to tell
// a missing variable from a blank one.
//
// # Implementations
//
//   - OS: the process environment
//   - Map: an in-memory map, used by tests and the HTTP API
//   - FromDotenv: a .env file
//   - FromYAMLFile: a flat YAML or JSON document
//   - FromConfigMap / FromSecret: Kubernetes objects read through client-go
//   - Layered: an ordered overlay of other sources
//   - Exclude: a source with variables matching wildcard patterns hidden
//
// # URIs
//
// Open resolves a URI into a Source:
//
//	env://                      process environment (also the empty string)
//	cm://namespace/name         Kubernetes ConfigMap
//	secret://namespace/name     Kubernetes Secret
//	path/to/staging.env         dotenv file (also files named ".env")
//	path/to/staging.yaml        YAML or JSON file (.yaml, .yml, .json)
package envsource

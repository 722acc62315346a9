/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks that an environment configuration is ready for a
// staging deployment.
//
// # Overview
//
// The validator reads variables from an envsource.Source and applies a fixed
// set of rules. Findings are split into errors, which block a deployment,
// and warnings, which do not. A result is valid iff it has no errors and no
// missing critical variables.
//
// # Checks
//
// Checks run in this order:
//
//  1. ENVIRONMENT is set and equals "staging" (case-insensitive)
//  2. CriticalVariables are present and not placeholders (errors)
//  3. ImportantVariables are present and not placeholders (warnings)
//  4. LocalhostCheckedVariables do not reference localhost, 127.0.0.1 or 0.0.0.0
//  5. PostgreSQL: password with host and user, staging-looking host, SSL for TCP
//  6. JWT_SECRET_KEY and SERVICE_SECRET are at least 32 characters and differ
//  7. GCP_PROJECT_ID is set and known; Cloud Run companion variables with K_SERVICE
//
// # Usage
//
// Inspect the result:
//
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, envsource.OS())
//	if err != nil {
//	    return err
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e)
//	}
//
// Gate a deployment:
//
//	if err := validator.EnsureStagingReady(ctx, envsource.OS()); err != nil {
//	    log.Fatal(err) // itemized report
//	}
//
// CheckStaging is the non-failing variant: it logs a summary and returns the
// validity with the result.
//
// # Concurrency
//
// A Validator carries only configuration; every Validate call owns its
// accumulators, so one Validator may be shared across goroutines.
// ValidateAll uses that to check several sources in parallel.
package validator

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/netra-systems/stagecheck/pkg/envsource"
)

// StagingConfigError is returned by EnsureStagingReady for any invalid configuration.
type StagingConfigError struct {
	Result *ValidationResult
}

// Error renders the full itemized report.
func (e *StagingConfigError) Error() string {
	var b strings.Builder
	b.WriteString("Staging configuration is invalid:")
	for _, msg := range e.Result.Errors {
		b.WriteString("\n  - ")
		b.WriteString(msg)
	}
	if len(e.Result.MissingCritical) > 0 {
		b.WriteString("\nMissing critical variables: ")
		b.WriteString(strings.Join(e.Result.MissingCritical, ", "))
	}
	if len(e.Result.PlaceholdersFound) > 0 {
		keys := make([]string, 0, len(e.Result.PlaceholdersFound))
		for k := range e.Result.PlaceholdersFound {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("\nPlaceholder values found in: ")
		b.WriteString(strings.Join(keys, ", "))
	}
	return b.String()
}

// CheckStaging validates src with a new Validator, logs a summary and
// returns the validity together with the full result. It never fails: a
// pass that could not run is reported as an invalid result.
func CheckStaging(ctx context.Context, src envsource.Source, opts ...Option) (bool, *ValidationResult) {
	result, err := New(opts...).Validate(ctx, src)
	if err != nil {
		result = &ValidationResult{
			Errors:            []string{fmt.Sprintf("validation could not run: %v", err)},
			Warnings:          []string{},
			MissingCritical:   []string{},
			PlaceholdersFound: map[string]string{},
			Summary:           ValidationSummary{Status: ValidationStatusFail, Errors: 1},
		}
	}

	LogSummary(result)
	return result.IsValid, result
}

// LogSummary writes the outcome of result to the default logger.
func LogSummary(result *ValidationResult) {
	if result.IsValid {
		slog.Info("staging configuration validation passed",
			"warnings", len(result.Warnings))
		return
	}

	slog.Error("staging configuration validation failed",
		"errors", len(result.Errors),
		"missing_critical", len(result.MissingCritical))
	for _, msg := range result.Errors {
		slog.Error("validation error", "message", msg)
	}
	for _, msg := range result.Warnings {
		slog.Warn("validation warning", "message", msg)
	}
}

// EnsureStagingReady returns a *StagingConfigError if src is not a valid
// staging configuration, and nil otherwise.
func EnsureStagingReady(ctx context.Context, src envsource.Source, opts ...Option) error {
	valid, result := CheckStaging(ctx, src, opts...)
	if !valid {
		return &StagingConfigError{Result: result}
	}
	return nil
}

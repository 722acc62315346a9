/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/netra-systems/stagecheck/pkg/envsource"
	"github.com/netra-systems/stagecheck/pkg/header"
)

const (
	// Kind is the kind for validation results.
	Kind header.Kind = "StagingValidationResult"

	// MetadataSource is the result metadata key naming the validated source.
	MetadataSource = "source"

	// MetadataRunID is the result metadata key holding a unique id for the pass.
	MetadataRunID = "run-id"
)

// Validator checks environment sources against the staging rule sets.
// A Validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	knownProjects []string
	suggestions   bool
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithKnownProjects replaces the GCP project allow-list.
func WithKnownProjects(projects ...string) Option {
	return func(v *Validator) {
		v.knownProjects = append([]string(nil), projects...)
	}
}

// WithSuggestions toggles "did you mean" warnings for missing critical variables.
func WithSuggestions(enabled bool) Option {
	return func(v *Validator) {
		v.suggestions = enabled
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		knownProjects: append([]string(nil), KnownStagingProjects...),
		suggestions:   true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check against src and returns the findings.
// Configuration problems are reported in the result, never as an error;
// an error is returned only for a nil source or a done context.
func (v *Validator) Validate(ctx context.Context, src envsource.Source) (*ValidationResult, error) {
	start := time.Now()

	if src == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := newRun(v, src)
	r.checkEnvironment()
	r.checkCriticalVariables()
	r.checkImportantVariables()
	r.checkLocalhostReferences()
	r.checkDatabaseConfig()
	r.checkAuthConfig()
	r.checkGCPConfig()

	result := r.result()
	result.Init(Kind, header.APIVersionV1Alpha1, v.Version)
	result.Metadata[MetadataSource] = envsource.Describe(src)
	result.Metadata[MetadataRunID] = uuid.NewString()
	result.Summary.Duration = time.Since(start)

	observe(result)

	slog.Debug("validation completed",
		"source", result.Metadata[MetadataSource],
		"status", result.Summary.Status,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"missing_critical", result.Summary.MissingCritical,
		"duration", result.Summary.Duration)

	return result, nil
}

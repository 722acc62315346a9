/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/netra-systems/stagecheck/pkg/header"
)

// ValidationStatus is the overall outcome of a validation pass.
type ValidationStatus string

const (
	ValidationStatusPass ValidationStatus = "pass"
	ValidationStatusFail ValidationStatus = "fail"
)

// ValidationResult is the report of one validation pass. It is not modified
// after Validate returns.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// IsValid is true iff Errors and MissingCritical are both empty.
	IsValid bool `json:"isValid" yaml:"isValid"`

	// Errors are deployment-blocking findings, in check order.
	Errors []string `json:"errors" yaml:"errors"`

	// Warnings are advisory findings. They never affect IsValid.
	Warnings []string `json:"warnings" yaml:"warnings"`

	// MissingCritical lists critical variables absent from the source.
	MissingCritical []string `json:"missingCritical" yaml:"missingCritical"`

	// PlaceholdersFound maps variable names to their placeholder values.
	PlaceholdersFound map[string]string `json:"placeholdersFound" yaml:"placeholdersFound"`

	Summary ValidationSummary `json:"summary" yaml:"summary"`
}

// ValidationSummary aggregates counts for quick inspection.
type ValidationSummary struct {
	Status          ValidationStatus `json:"status" yaml:"status"`
	Errors          int              `json:"errors" yaml:"errors"`
	Warnings        int              `json:"warnings" yaml:"warnings"`
	MissingCritical int              `json:"missingCritical" yaml:"missingCritical"`
	Placeholders    int              `json:"placeholders" yaml:"placeholders"`
	Duration        time.Duration    `json:"duration" yaml:"duration"`
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netra-systems/stagecheck/pkg/header"
)

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"placeholder", true},
		{"PLACEHOLDER-jwt", true},
		{"value-should-be-replaced", true},
		{"should-be-REPLACED", true},
		{"will-be-set-by-deploy", true},
		{"change-me", true},
		{"Change-Me-Please", true},
		{"update-in-production", true},
		{"staging-jwt-secret-should-be-replaced", true},
		{"your-api-key-here", true},
		{"YOUR-OPENAI-KEY-HERE", true},
		{"netra-staging", false},
		{"/cloudsql/netra-staging:us-central1:staging-shared-postgres", false},
		{"sk-ant-api03-abc", false},
		// Upper-case patterns are searched in the lower-cased value and never match.
		{"TODO", false},
		{"fixme", false},
		{"XXX", false},
		{"REPLACE", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholder(tt.value))
			// Deterministic.
			assert.Equal(t, IsPlaceholder(tt.value), IsPlaceholder(tt.value))
		})
	}
}

func TestRuleSets(t *testing.T) {
	assert.Len(t, CriticalVariables, 10)
	assert.Len(t, ImportantVariables, 7)
	assert.Len(t, LocalhostCheckedVariables, 7)
	assert.Equal(t, []string{"localhost", "127.0.0.1", "0.0.0.0"}, LocalhostPatterns)

	for _, name := range ImportantVariables {
		assert.NotContains(t, CriticalVariables, name)
	}
}

func TestValidator_Rules(t *testing.T) {
	v := New(WithKnownProjects("netra-staging", "netra-staging-2"), WithVersion("v0.4.0"))
	rules := v.Rules()

	assert.Equal(t, RulesKind, rules.Kind)
	assert.Equal(t, header.APIVersionV1Alpha1, rules.APIVersion)
	assert.Equal(t, "v0.4.0", rules.Metadata[header.MetadataVersion])

	assert.Equal(t, CriticalVariables, rules.CriticalVariables)
	assert.Equal(t, []string{"netra-staging", "netra-staging-2"}, rules.KnownStagingProjects)
	assert.Equal(t, MinSecretLength, rules.MinSecretLength)

	// Returned slices are copies.
	rules.CriticalVariables[0] = "CHANGED"
	assert.Equal(t, EnvEnvironment, CriticalVariables[0])
}

func TestValidator_RulesWithoutVersion(t *testing.T) {
	rules := New().Rules()
	assert.NotContains(t, rules.Metadata, header.MetadataVersion)
	assert.NotNil(t, rules.Metadata)
}

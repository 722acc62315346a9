/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclude(t *testing.T) {
	vars := Map{
		"K_SERVICE":         "backend",
		"K_REVISION":        "backend-001",
		"REDIS_URL":         "redis://10.0.0.3",
		"REDIS_HOST":        "10.0.0.3",
		"POSTGRES_PASSWORD": "pw",
		"CLICKHOUSE_URL":    "clickhouse://ch",
		"ENVIRONMENT":       "staging",
	}

	tests := []struct {
		name     string
		patterns []string
		wantKeys []string
	}{
		{
			name:     "exact match",
			patterns: []string{"ENVIRONMENT"},
			wantKeys: []string{"CLICKHOUSE_URL", "K_REVISION", "K_SERVICE", "POSTGRES_PASSWORD", "REDIS_HOST", "REDIS_URL"},
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"K_*"},
			wantKeys: []string{"CLICKHOUSE_URL", "ENVIRONMENT", "POSTGRES_PASSWORD", "REDIS_HOST", "REDIS_URL"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*_URL"},
			wantKeys: []string{"ENVIRONMENT", "K_REVISION", "K_SERVICE", "POSTGRES_PASSWORD", "REDIS_HOST"},
		},
		{
			name:     "contains wildcard",
			patterns: []string{"*REDIS*"},
			wantKeys: []string{"CLICKHOUSE_URL", "ENVIRONMENT", "K_REVISION", "K_SERVICE", "POSTGRES_PASSWORD"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"K_*", "*_URL", "*HOST"},
			wantKeys: []string{"ENVIRONMENT", "POSTGRES_PASSWORD"},
		},
		{
			name:     "non-matching pattern",
			patterns: []string{"VAULT_*"},
			wantKeys: []string{"CLICKHOUSE_URL", "ENVIRONMENT", "K_REVISION", "K_SERVICE", "POSTGRES_PASSWORD", "REDIS_HOST", "REDIS_URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Exclude(vars, tt.patterns...)

			keys := src.(Enumerable).Keys()
			sort.Strings(keys)
			assert.Equal(t, tt.wantKeys, keys)

			for k := range vars {
				_, ok := src.Lookup(k)
				assert.Equal(t, contains(tt.wantKeys, k), ok, "Lookup(%s)", k)
			}
		})
	}
}

func TestExclude_NoPatternsReturnsSource(t *testing.T) {
	vars := Map{"A": "1"}
	assert.Equal(t, vars, Exclude(vars))
}

func TestExclude_KeepsDescription(t *testing.T) {
	src := Exclude(named{Map: Map{"A": "1"}, origin: "staging.env"}, "A")
	assert.Equal(t, "staging.env", Describe(src))
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name, pattern string
		want          bool
	}{
		{"REDIS_URL", "REDIS_URL", true},
		{"REDIS_URL", "REDIS", false},
		{"REDIS_URL", "REDIS*", true},
		{"REDIS_URL", "*URL", true},
		{"REDIS_URL", "*IS_U*", true},
		{"REDIS_URL", "*", true},
		{"REDIS_URL", "*HOST", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPattern(tt.name, tt.pattern))
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

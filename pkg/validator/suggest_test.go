/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netra-systems/stagecheck/pkg/envsource"
)

type lookupOnly map[string]string

func (l lookupOnly) Lookup(name string) (string, bool) {
	v, ok := l[name]
	return v, ok
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		rename  string
		missing string
		want    string
	}{
		{"truncated name", "JWT_SECRET_KY", EnvJWTSecretKey, "found similar variable JWT_SECRET_KY"},
		{"lower case", "service_id", EnvServiceID, "found similar variable service_id"},
		{"transposed", "FERNTE_KEY", EnvFernetKey, "found similar variable FERNTE_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := without(stagingEnv(), tt.missing)
			src[tt.rename] = "value"

			res := validate(t, src)
			msgs := matching(res.Warnings, "Critical variable "+tt.missing+" is missing; "+tt.want)
			assert.Len(t, msgs, 1)
			// Suggestions never change validity.
			assert.False(t, res.IsValid)
		})
	}
}

func TestSuggestions_Disabled(t *testing.T) {
	src := without(stagingEnv(), EnvJWTSecretKey)
	src["JWT_SECRET_KY"] = "value"

	res := validate(t, src, WithSuggestions(false))
	assert.Empty(t, matching(res.Warnings, "found similar variable"))
}

func TestSuggestions_IgnoresRecognizedAndDistantKeys(t *testing.T) {
	// SERVICE_SECRET is itself checked, and UNRELATED is too far away.
	src := without(stagingEnv(), EnvServiceID)
	src["UNRELATED"] = "x"

	res := validate(t, src)
	assert.Empty(t, matching(res.Warnings, "found similar variable"))
}

func TestClosestKey_RequiresEnumerable(t *testing.T) {
	_, ok := closestKey(lookupOnly{"JWT_SECRET_KY": "x"}, EnvJWTSecretKey)
	assert.False(t, ok)

	key, ok := closestKey(envsource.Map{"JWT_SECRET_KY": "x"}, EnvJWTSecretKey)
	assert.True(t, ok)
	assert.Equal(t, "JWT_SECRET_KY", key)
}

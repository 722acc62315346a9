/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_LookupDistinguishesEmptyFromMissing(t *testing.T) {
	m := Map{"POSTGRES_DB": ""}

	v, ok := m.Lookup("POSTGRES_DB")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = m.Lookup("POSTGRES_HOST")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	m := Map{"ENVIRONMENT": "staging"}
	assert.Equal(t, "staging", Get(m, "ENVIRONMENT", "development"))
	assert.Equal(t, "development", Get(m, "MISSING", "development"))
}

func TestOS(t *testing.T) {
	t.Setenv("STAGECHECK_TEST_VAR", "value")

	src := OS()
	v, ok := src.Lookup("STAGECHECK_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Contains(t, src.(Enumerable).Keys(), "STAGECHECK_TEST_VAR")
	assert.Equal(t, EnvURI, Describe(src))
}

func TestLayered(t *testing.T) {
	overrides := Map{"POSTGRES_HOST": "/cloudsql/netra-staging:us-central1:staging"}
	base := Map{"POSTGRES_HOST": "localhost", "POSTGRES_USER": "netra"}
	src := Layered(overrides, base)

	assert.Equal(t, "/cloudsql/netra-staging:us-central1:staging", Get(src, "POSTGRES_HOST", ""))
	assert.Equal(t, "netra", Get(src, "POSTGRES_USER", ""))

	_, ok := src.Lookup("POSTGRES_PASSWORD")
	assert.False(t, ok)

	assert.Equal(t, []string{"POSTGRES_HOST", "POSTGRES_USER"}, src.Keys())
	assert.Equal(t, "memory,memory", src.Describe())
}

type opaque struct{}

func (opaque) Lookup(string) (string, bool) { return "", false }

func TestDescribe_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", Describe(opaque{}))
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind("StagingValidationResult"),
		WithAPIVersion(APIVersionV1Alpha1),
		WithMetadata("source", "env://"),
	)

	assert.Equal(t, Kind("StagingValidationResult"), h.Kind)
	assert.Equal(t, "stagecheck.netra.dev/v1alpha1", h.APIVersion)
	assert.Equal(t, "env://", h.Metadata["source"])
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, "v", h.Metadata["k"])
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init("StagingValidationResult", APIVersionV1Alpha1, "v0.3.0")

	assert.Equal(t, Kind("StagingValidationResult"), h.Kind)
	assert.Equal(t, "v0.3.0", h.Metadata[MetadataVersion])
	assert.NotContains(t, h.Metadata, "stale")

	ts, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestInit_NoVersion(t *testing.T) {
	h := &Header{}
	h.Init("Rules", APIVersionV1Alpha1, "")
	assert.NotContains(t, h.Metadata, MetadataVersion)
}

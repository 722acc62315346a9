/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		assert.Equal(t, "/explicit", ResolveKubeconfig("/explicit"))
	})

	t.Run("KUBECONFIG env", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		assert.Equal(t, "/from/env", ResolveKubeconfig(""))
	})

	t.Run("home config when present", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("KUBECONFIG", "")
		path := filepath.Join(home, ".kube", "config")
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NoError(t, os.WriteFile(path, []byte("apiVersion: v1\n"), 0o600))
		assert.Equal(t, path, ResolveKubeconfig(""))
	})

	t.Run("in-cluster when nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("KUBECONFIG", "")
		assert.Empty(t, ResolveKubeconfig(""))
	})
}

func TestGetKubeClient_Cached(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "missing-kubeconfig"))

	first, firstErr := GetKubeClient()
	second, secondErr := GetKubeClient()

	assert.Equal(t, first, second)
	assert.Equal(t, firstErr, secondErr)
	assert.Error(t, firstErr)
}

func TestBuildKubeClient_MissingKubeconfig(t *testing.T) {
	_, _, err := BuildKubeClient(filepath.Join(t.TempDir(), "missing-kubeconfig"))
	assert.Error(t, err)
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package client builds Kubernetes API clients used to read configuration
// objects (ConfigMaps and Secrets) that hold staging environment variables.
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

var (
	clientOnce   sync.Once
	cachedClient kubernetes.Interface
	clientErr    error
)

// GetKubeClient returns a process-wide client, creating it on first call.
// Configuration is discovered from KUBECONFIG, ~/.kube/config, then the
// in-cluster service account.
func GetKubeClient() (kubernetes.Interface, error) {
	clientOnce.Do(func() {
		cachedClient, _, clientErr = BuildKubeClient("")
	})
	return cachedClient, clientErr
}

// BuildKubeClient creates a client from the given kubeconfig path, bypassing
// the cache. An empty path uses the same discovery order as GetKubeClient.
func BuildKubeClient(kubeconfig string) (kubernetes.Interface, *rest.Config, error) {
	kubeconfig = ResolveKubeconfig(kubeconfig)

	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build kube config: %w", err)
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, config, nil
}

// ResolveKubeconfig returns the kubeconfig path to use. An empty result
// means in-cluster configuration.
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

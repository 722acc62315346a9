/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"k8s.io/client-go/kubernetes"

	"github.com/netra-systems/stagecheck/pkg/defaults"
	scerrors "github.com/netra-systems/stagecheck/pkg/errors"
	"github.com/netra-systems/stagecheck/pkg/k8s/client"
)

// URI scheme constants for variable sources.
const (
	// EnvURI selects the process environment.
	EnvURI = "env://"

	// ConfigMapURIScheme selects a Kubernetes ConfigMap.
	// Format: cm://namespace/configmap-name
	ConfigMapURIScheme = "cm://"

	// SecretURIScheme selects a Kubernetes Secret.
	// Format: secret://namespace/secret-name
	SecretURIScheme = "secret://"
)

// KubeClientFunc returns the Kubernetes client used for cm:// and secret:// URIs.
type KubeClientFunc func(kubeconfig string) (kubernetes.Interface, error)

// Opener resolves source URIs.
type Opener struct {
	// KubeClient builds Kubernetes clients. If nil, client.GetKubeClient is
	// used for discovered configuration and client.BuildKubeClient for an
	// explicit kubeconfig.
	KubeClient KubeClientFunc
}

// Open resolves uri with the default Opener.
func Open(ctx context.Context, uri, kubeconfig string) (Source, error) {
	return (&Opener{}).Open(ctx, uri, kubeconfig)
}

// Open resolves uri into a Source. kubeconfig is only used for Kubernetes URIs.
func (o *Opener) Open(ctx context.Context, uri, kubeconfig string) (Source, error) {
	uri = strings.TrimSpace(uri)

	switch {
	case uri == "" || uri == EnvURI:
		return OS(), nil
	case strings.HasPrefix(uri, ConfigMapURIScheme):
		ns, name, err := ParseObjectURI(uri, ConfigMapURIScheme)
		if err != nil {
			return nil, err
		}
		cs, err := o.kubeClient(kubeconfig)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, defaults.KubernetesReadTimeout)
		defer cancel()
		return FromConfigMap(ctx, cs, ns, name)
	case strings.HasPrefix(uri, SecretURIScheme):
		ns, name, err := ParseObjectURI(uri, SecretURIScheme)
		if err != nil {
			return nil, err
		}
		cs, err := o.kubeClient(kubeconfig)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, defaults.KubernetesReadTimeout)
		defer cancel()
		return FromSecret(ctx, cs, ns, name)
	case strings.Contains(uri, "://"):
		return nil, scerrors.WrapWithContext(scerrors.ErrCodeInvalidRequest,
			"unsupported source URI scheme", nil, map[string]any{"uri": uri})
	}

	switch ext := strings.ToLower(filepath.Ext(uri)); {
	case ext == ".yaml", ext == ".yml", ext == ".json":
		return FromYAMLFile(uri)
	default:
		// .env, staging.env, and extensionless files are dotenv.
		return FromDotenv(uri)
	}
}

func (o *Opener) kubeClient(kubeconfig string) (kubernetes.Interface, error) {
	build := o.KubeClient
	if build == nil {
		build = defaultKubeClient
	}

	cs, err := build(kubeconfig)
	if err != nil {
		return nil, scerrors.Wrap(scerrors.ErrCodeUnavailable, "failed to create kubernetes client", err)
	}
	return cs, nil
}

// defaultKubeClient shares the process-wide client for discovered
// configuration and builds a fresh one for an explicit kubeconfig.
func defaultKubeClient(kubeconfig string) (kubernetes.Interface, error) {
	if kubeconfig == "" {
		return client.GetKubeClient()
	}
	cs, _, err := client.BuildKubeClient(kubeconfig)
	return cs, err
}

// ParseObjectURI splits scheme://namespace/name into its parts.
func ParseObjectURI(uri, scheme string) (namespace, name string, err error) {
	rest := strings.TrimPrefix(uri, scheme)
	namespace, name, ok := strings.Cut(rest, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return "", "", scerrors.New(scerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid object URI %q: expected format %snamespace/name", uri, scheme))
	}
	return namespace, name, nil
}

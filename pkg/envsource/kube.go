/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"context"
	"fmt"
	"log/slog"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	scerrors "github.com/netra-systems/stagecheck/pkg/errors"
)

// FromConfigMap reads variables from the data of a ConfigMap.
func FromConfigMap(ctx context.Context, cs kubernetes.Interface, namespace, name string) (Source, error) {
	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, kubeError("configmap", namespace, name, err)
	}

	vars := make(Map, len(cm.Data))
	for k, v := range cm.Data {
		vars[k] = v
	}

	slog.Debug("loaded configmap source", "namespace", namespace, "name", name, "variables", len(vars))
	return named{Map: vars, origin: ConfigMapURIScheme + namespace + "/" + name}, nil
}

// FromSecret reads variables from the data of a Secret.
func FromSecret(ctx context.Context, cs kubernetes.Interface, namespace, name string) (Source, error) {
	secret, err := cs.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, kubeError("secret", namespace, name, err)
	}

	vars := make(Map, len(secret.Data)+len(secret.StringData))
	for k, v := range secret.Data {
		vars[k] = string(v)
	}
	for k, v := range secret.StringData {
		vars[k] = v
	}

	slog.Debug("loaded secret source", "namespace", namespace, "name", name, "variables", len(vars))
	return named{Map: vars, origin: SecretURIScheme + namespace + "/" + name}, nil
}

func kubeError(kind, namespace, name string, err error) error {
	code := scerrors.ErrCodeUnavailable
	switch {
	case apierrors.IsNotFound(err):
		code = scerrors.ErrCodeNotFound
	case apierrors.IsForbidden(err), apierrors.IsUnauthorized(err):
		code = scerrors.ErrCodeUnauthorized
	}
	return scerrors.WrapWithContext(code, fmt.Sprintf("failed to get %s %s/%s", kind, namespace, name), err,
		map[string]any{"namespace": namespace, "name": name})
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	scerrors "github.com/netra-systems/stagecheck/pkg/errors"
)

// FromDotenv loads a .env file using godotenv parsing rules.
func FromDotenv(path string) (Source, error) {
	path = filepath.Clean(path)

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fileError(path, "failed to read dotenv file", err)
	}

	slog.Debug("loaded dotenv source", "path", path, "variables", len(vars))
	return named{Map: Map(vars), origin: path}, nil
}

// FromYAMLFile loads a flat YAML or JSON document of variables.
// Scalar values are kept verbatim; null values are treated as unset.
func FromYAMLFile(path string) (Source, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, "failed to read variables file", err)
	}

	vars, err := ParseYAML(data)
	if err != nil {
		return nil, scerrors.WrapWithContext(scerrors.ErrCodeInvalidRequest,
			"failed to parse variables file", err, map[string]any{"path": path})
	}

	slog.Debug("loaded yaml source", "path", path, "variables", len(vars))
	return named{Map: vars, origin: path}, nil
}

// ParseYAML decodes a flat YAML or JSON mapping into a Map. Scalar values
// keep their source text ("1.50" stays "1.50"); nulls are skipped and
// nested values are rejected.
func ParseYAML(data []byte) (Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	vars := make(Map)
	if len(doc.Content) == 0 {
		return vars, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == nullTag {
		return vars, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("variables document must be a mapping, got %s", nodeKind(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		value := resolveAlias(root.Content[i+1])

		switch {
		case value.Kind != yaml.ScalarNode:
			return nil, fmt.Errorf("variable %s must be a scalar value, got %s", key, nodeKind(value))
		case value.Tag == nullTag:
			continue
		default:
			vars[key] = value.Value
		}
	}
	return vars, nil
}

const nullTag = "!!null"

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "document"
	}
}

func fileError(path, message string, err error) error {
	code := scerrors.ErrCodeInvalidRequest
	if errors.Is(err, fs.ErrNotExist) {
		code = scerrors.ErrCodeNotFound
	}
	return scerrors.WrapWithContext(code, message, err, map[string]any{"path": path})
}

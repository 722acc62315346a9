/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import (
	"os"
	"sort"
	"strings"
)

// Source is a read-only view of environment variables.
type Source interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)
}

// Enumerable is implemented by sources that can list their keys.
type Enumerable interface {
	Keys() []string
}

// Get returns the value of name, or def when it is not set.
func Get(src Source, name, def string) string {
	if v, ok := src.Lookup(name); ok {
		return v
	}
	return def
}

// Describer is implemented by sources that can name their origin.
type Describer interface {
	Describe() string
}

// Describe returns a human-readable origin for src.
func Describe(src Source) string {
	if d, ok := src.(Describer); ok {
		return d.Describe()
	}
	return "unknown"
}

// Map is a Source backed by an in-memory map.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Keys implements Enumerable. Keys are sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe implements Describer.
func (m Map) Describe() string {
	return "memory"
}

// named wraps a Map with its origin description.
type named struct {
	Map
	origin string
}

func (n named) Describe() string {
	return n.origin
}

type osSource struct{}

// OS returns a Source reading the process environment.
func OS() Source {
	return osSource{}
}

func (osSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osSource) Keys() []string {
	env := os.Environ()
	keys := make([]string, 0, len(env))
	for _, kv := range env {
		if k, _, ok := strings.Cut(kv, "="); ok && k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (osSource) Describe() string {
	return EnvURI
}

// LayeredSource resolves each key from the first source that has it.
type LayeredSource struct {
	sources []Source
}

// Layered returns a Source where earlier sources take precedence over later ones.
func Layered(sources ...Source) *LayeredSource {
	return &LayeredSource{sources: sources}
}

// Lookup implements Source.
func (l *LayeredSource) Lookup(name string) (string, bool) {
	for _, s := range l.sources {
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Keys implements Enumerable over the layers that support it.
func (l *LayeredSource) Keys() []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, s := range l.sources {
		e, ok := s.(Enumerable)
		if !ok {
			continue
		}
		for _, k := range e.Keys() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Describe implements Describer.
func (l *LayeredSource) Describe() string {
	parts := make([]string, 0, len(l.sources))
	for _, s := range l.sources {
		parts = append(parts, Describe(s))
	}
	return strings.Join(parts, ",")
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package envsource

import "strings"

// FilteredSource hides variables whose names match any exclude pattern.
type FilteredSource struct {
	src      Source
	patterns []string
}

// Exclude returns src with every variable matching one of patterns treated
// as unset. Supported patterns:
//   - "PREFIX*" matches names starting with "PREFIX"
//   - "*SUFFIX" matches names ending with "SUFFIX"
//   - "*PART*" matches names containing "PART"
//   - "EXACT" matches the name exactly
func Exclude(src Source, patterns ...string) Source {
	if len(patterns) == 0 {
		return src
	}
	return &FilteredSource{src: src, patterns: patterns}
}

// Lookup implements Source.
func (f *FilteredSource) Lookup(name string) (string, bool) {
	if f.excluded(name) {
		return "", false
	}
	return f.src.Lookup(name)
}

// Keys implements Enumerable when the wrapped source does.
func (f *FilteredSource) Keys() []string {
	e, ok := f.src.(Enumerable)
	if !ok {
		return nil
	}
	keys := make([]string, 0)
	for _, k := range e.Keys() {
		if !f.excluded(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Describe implements Describer.
func (f *FilteredSource) Describe() string {
	return Describe(f.src)
}

func (f *FilteredSource) excluded(name string) bool {
	for _, p := range f.patterns {
		if MatchesPattern(name, p) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether name matches a wildcard pattern.
func MatchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *part* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(name, strings.Trim(pattern, "*"))
	}

	// *suffix - ends with match
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(name, suffix)
	}

	// prefix* - starts with match
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}

	return false
}

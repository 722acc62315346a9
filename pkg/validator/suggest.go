/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/netra-systems/stagecheck/pkg/envsource"
)

// recognized holds every variable name a check reads. Such names are never
// offered as suggestions for another variable.
var recognized = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, set := range [][]string{CriticalVariables, ImportantVariables, LocalhostCheckedVariables} {
		for _, name := range set {
			m[name] = struct{}{}
		}
	}
	for _, name := range []string{EnvPostgresDB, EnvCloudRunService, EnvCloudRunRevision, EnvCloudRunConfiguration} {
		m[name] = struct{}{}
	}
	return m
}()

// suggest warns about a present key that is probably a misspelling of missing.
func (r *run) suggest(missing string) {
	if !r.v.suggestions {
		return
	}
	if match, ok := closestKey(r.src, missing); ok {
		r.warnf("Critical variable %s is missing; found similar variable %s (typo?)", missing, match)
	}
}

// closestKey returns the key of src nearest to name within suggestionMaxDistance.
// Comparison is case-insensitive; ties resolve to the first key in sorted order.
func closestKey(src envsource.Source, name string) (string, bool) {
	e, ok := src.(envsource.Enumerable)
	if !ok {
		return "", false
	}

	best, bestDist := "", suggestionMaxDistance+1
	for _, key := range e.Keys() {
		if key == name {
			continue
		}
		if _, known := recognized[key]; known {
			continue
		}
		d := levenshtein.ComputeDistance(strings.ToUpper(key), name)
		if d < bestDist {
			best, bestDist = key, d
		}
	}
	return best, best != ""
}

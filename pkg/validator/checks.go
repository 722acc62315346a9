/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/netra-systems/stagecheck/pkg/envsource"
)

// run accumulates the findings of a single Validate call.
type run struct {
	v   *Validator
	src envsource.Source

	errors          []string
	warnings        []string
	missingCritical []string
	placeholders    map[string]string
}

func newRun(v *Validator, src envsource.Source) *run {
	return &run{
		v:               v,
		src:             src,
		errors:          []string{},
		warnings:        []string{},
		missingCritical: []string{},
		placeholders:    map[string]string{},
	}
}

func (r *run) errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *run) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// get returns the value of name, with unset variables reading as "".
func (r *run) get(name string) string {
	return envsource.Get(r.src, name, "")
}

func (r *run) checkEnvironment() {
	env := r.get(EnvEnvironment)
	switch {
	case env == "":
		r.errorf("ENVIRONMENT variable is not set")
	case !strings.EqualFold(env, ExpectedEnvironment):
		r.errorf("ENVIRONMENT must be '%s', got '%s'", ExpectedEnvironment, env)
	}
}

func (r *run) checkCriticalVariables() {
	for _, name := range CriticalVariables {
		value, ok := r.src.Lookup(name)
		if !ok {
			r.missingCritical = append(r.missingCritical, name)
			r.errorf("Critical variable %s is missing", name)
			r.suggest(name)
			continue
		}
		if IsPlaceholder(value) {
			r.placeholders[name] = value
			r.errorf("Critical variable %s contains placeholder value: %s", name, preview(value))
		}
	}
}

func (r *run) checkImportantVariables() {
	for _, name := range ImportantVariables {
		value, ok := r.src.Lookup(name)
		if !ok {
			r.warnf("Important variable %s is missing (optional but recommended)", name)
			continue
		}
		if IsPlaceholder(value) {
			r.placeholders[name] = value
			r.warnf("Important variable %s contains placeholder value: %s", name, preview(value))
		}
	}
}

func (r *run) checkLocalhostReferences() {
	for _, name := range LocalhostCheckedVariables {
		value := strings.ToLower(r.get(name))
		if value == "" {
			continue
		}
		for _, pattern := range LocalhostPatterns {
			if strings.Contains(value, pattern) {
				r.errorf("%s contains localhost reference (%s), which is not reachable in staging", name, pattern)
				break
			}
		}
	}
}

func (r *run) checkDatabaseConfig() {
	host := r.get(EnvPostgresHost)
	user := r.get(EnvPostgresUser)

	if host != "" && user != "" {
		if r.get(EnvPostgresPassword) == "" {
			r.errorf("POSTGRES_PASSWORD is required when POSTGRES_HOST is set")
		}

		cloudSQL := strings.Contains(host, CloudSQLSocketMarker)
		if !strings.Contains(host, ExpectedEnvironment) && !cloudSQL {
			r.warnf("POSTGRES_HOST '%s' does not look like a staging database", host)
		}
		if !cloudSQL {
			r.warnf("POSTGRES_HOST is not a Cloud SQL socket; ensure SSL is configured for the TCP connection")
		}
	}

	if r.get(EnvPostgresDB) == "" {
		r.warnf("POSTGRES_DB is not set, the default database name will be used")
	}
}

func (r *run) checkAuthConfig() {
	jwt := r.get(EnvJWTSecretKey)
	service := r.get(EnvServiceSecret)

	for _, s := range []struct{ name, value string }{
		{EnvJWTSecretKey, jwt},
		{EnvServiceSecret, service},
	} {
		if s.value == "" {
			continue
		}
		if n := utf8.RuneCountInString(s.value); n < MinSecretLength {
			r.errorf("%s must be at least %d characters (got %d)", s.name, MinSecretLength, n)
		}
	}

	if jwt != "" && service != "" && jwt == service {
		r.errorf("JWT_SECRET_KEY and SERVICE_SECRET must be different")
	}
}

func (r *run) checkGCPConfig() {
	project := r.get(EnvGCPProjectID)
	switch {
	case project == "":
		r.errorf("GCP_PROJECT_ID is required for staging deployment")
	case !slices.Contains(r.v.knownProjects, project):
		r.warnf("GCP_PROJECT_ID '%s' is not a known staging project", project)
	}

	if r.get(EnvCloudRunService) == "" {
		return
	}
	for _, name := range []string{EnvCloudRunRevision, EnvCloudRunConfiguration} {
		if r.get(name) == "" {
			r.warnf("Cloud Run variable %s is not set although K_SERVICE is present", name)
		}
	}
}

// result assembles the final report from the accumulated findings.
func (r *run) result() *ValidationResult {
	res := &ValidationResult{
		Errors:            r.errors,
		Warnings:          r.warnings,
		MissingCritical:   r.missingCritical,
		PlaceholdersFound: r.placeholders,
	}
	res.IsValid = len(res.Errors) == 0 && len(res.MissingCritical) == 0

	res.Summary = ValidationSummary{
		Status:          ValidationStatusFail,
		Errors:          len(res.Errors),
		Warnings:        len(res.Warnings),
		MissingCritical: len(res.MissingCritical),
		Placeholders:    len(res.PlaceholdersFound),
	}
	if res.IsValid {
		res.Summary.Status = ValidationStatusPass
	}
	return res
}

// preview returns at most the first placeholderPreviewLength characters of value.
func preview(value string) string {
	if utf8.RuneCountInString(value) <= placeholderPreviewLength {
		return value
	}
	return string([]rune(value)[:placeholderPreviewLength])
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"regexp"
	"strings"

	"github.com/netra-systems/stagecheck/pkg/header"
)

// Variable names read by the checks.
const (
	EnvEnvironment        = "ENVIRONMENT"
	EnvPostgresHost       = "POSTGRES_HOST"
	EnvPostgresUser       = "POSTGRES_USER"
	EnvPostgresPassword   = "POSTGRES_PASSWORD"
	EnvPostgresDB         = "POSTGRES_DB"
	EnvJWTSecretKey       = "JWT_SECRET_KEY"
	EnvFernetKey          = "FERNET_KEY"
	EnvGCPProjectID       = "GCP_PROJECT_ID"
	EnvServiceSecret      = "SERVICE_SECRET"
	EnvServiceID          = "SERVICE_ID"
	EnvClickHouseURL      = "CLICKHOUSE_URL"
	EnvClickHouseHost     = "CLICKHOUSE_HOST"
	EnvClickHousePassword = "CLICKHOUSE_PASSWORD"
	EnvRedisURL           = "REDIS_URL"
	EnvRedisHost          = "REDIS_HOST"
	EnvAnthropicAPIKey    = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey       = "OPENAI_API_KEY"
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvAPIBaseURL         = "API_BASE_URL"
	EnvFrontendURL        = "FRONTEND_URL"
	EnvAuthServiceURL     = "AUTH_SERVICE_URL"

	// Set by Cloud Run on every container instance.
	EnvCloudRunService       = "K_SERVICE"
	EnvCloudRunRevision      = "K_REVISION"
	EnvCloudRunConfiguration = "K_CONFIGURATION"
)

const (
	// ExpectedEnvironment is the only accepted ENVIRONMENT value, compared case-insensitively.
	ExpectedEnvironment = "staging"

	// MinSecretLength is the minimum length of JWT_SECRET_KEY and SERVICE_SECRET.
	MinSecretLength = 32

	// CloudSQLSocketMarker identifies a Cloud SQL unix socket host.
	CloudSQLSocketMarker = "/cloudsql/"

	// placeholderPreviewLength bounds how much of a placeholder value is echoed in errors.
	placeholderPreviewLength = 50

	// suggestionMaxDistance is the largest edit distance reported as a likely typo.
	suggestionMaxDistance = 2
)

// CriticalVariables must be present and not a placeholder. Violations are errors.
var CriticalVariables = []string{
	EnvEnvironment,
	EnvPostgresHost,
	EnvPostgresUser,
	EnvPostgresPassword,
	EnvJWTSecretKey,
	EnvFernetKey,
	EnvGCPProjectID,
	EnvServiceSecret,
	EnvServiceID,
	EnvClickHouseURL,
}

// ImportantVariables should be present and not a placeholder. Violations are warnings.
var ImportantVariables = []string{
	EnvRedisURL,
	EnvRedisHost,
	EnvClickHouseHost,
	EnvClickHousePassword,
	EnvAnthropicAPIKey,
	EnvOpenAIAPIKey,
	EnvGeminiAPIKey,
}

// LocalhostCheckedVariables hold hosts or URLs that must not point at the local machine.
var LocalhostCheckedVariables = []string{
	EnvPostgresHost,
	EnvRedisURL,
	EnvRedisHost,
	EnvClickHouseHost,
	EnvAPIBaseURL,
	EnvFrontendURL,
	EnvAuthServiceURL,
}

// LocalhostPatterns are matched as substrings, in priority order.
var LocalhostPatterns = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
}

// KnownStagingProjects are the GCP projects staging is expected to deploy to.
var KnownStagingProjects = []string{
	"netra-staging",
}

// PlaceholderPatterns identify unfilled template values. They are searched in
// the lower-cased value; see IsPlaceholder.
var PlaceholderPatterns = []string{
	`^$`,
	`placeholder`,
	`REPLACE`,
	`should-be-replaced`,
	`will-be-set`,
	`change-me`,
	`update-in-production`,
	`staging-.*-should-be-replaced`,
	`your-.*-here`,
	`TODO`,
	`FIXME`,
	`XXX`,
}

var placeholderRegexps = compilePatterns(PlaceholderPatterns)

func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// IsPlaceholder reports whether value is empty or looks like an unfilled template.
//
// The value is lower-cased before the patterns are searched, and the patterns
// are case-sensitive. Upper-case patterns such as TODO therefore never match;
// "replace" and similar words are still caught through their lower-case
// siblings like should-be-replaced.
func IsPlaceholder(value string) bool {
	if value == "" {
		return true
	}
	lowered := strings.ToLower(value)
	for _, re := range placeholderRegexps {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// RulesKind is the kind of the document returned by Validator.Rules.
const RulesKind header.Kind = "StagingValidationRules"

// Rules is a serializable view of the rule sets, used by the rules command.
type Rules struct {
	header.Header `json:",inline" yaml:",inline"`

	CriticalVariables         []string `json:"criticalVariables" yaml:"criticalVariables"`
	ImportantVariables        []string `json:"importantVariables" yaml:"importantVariables"`
	LocalhostCheckedVariables []string `json:"localhostCheckedVariables" yaml:"localhostCheckedVariables"`
	LocalhostPatterns         []string `json:"localhostPatterns" yaml:"localhostPatterns"`
	PlaceholderPatterns       []string `json:"placeholderPatterns" yaml:"placeholderPatterns"`
	KnownStagingProjects      []string `json:"knownStagingProjects" yaml:"knownStagingProjects"`
	MinSecretLength           int      `json:"minSecretLength" yaml:"minSecretLength"`
}

// Rules returns the rule sets this validator applies.
func (v *Validator) Rules() Rules {
	opts := []header.Option{
		header.WithKind(RulesKind),
		header.WithAPIVersion(header.APIVersionV1Alpha1),
	}
	if v.Version != "" {
		opts = append(opts, header.WithMetadata(header.MetadataVersion, v.Version))
	}

	return Rules{
		Header:                    *header.New(opts...),
		CriticalVariables:         append([]string(nil), CriticalVariables...),
		ImportantVariables:        append([]string(nil), ImportantVariables...),
		LocalhostCheckedVariables: append([]string(nil), LocalhostCheckedVariables...),
		LocalhostPatterns:         append([]string(nil), LocalhostPatterns...),
		PlaceholderPatterns:       append([]string(nil), PlaceholderPatterns...),
		KnownStagingProjects:      append([]string(nil), v.knownProjects...),
		MinSecretLength:           MinSecretLength,
	}
}

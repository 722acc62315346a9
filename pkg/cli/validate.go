/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/netra-systems/stagecheck/pkg/defaults"
	"github.com/netra-systems/stagecheck/pkg/envsource"
	"github.com/netra-systems/stagecheck/pkg/serializer"
	"github.com/netra-systems/stagecheck/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate environment variables for a staging deployment",
		Description: `Checks a set of environment variables against the staging rules:
  - ENVIRONMENT must be "staging"
  - Critical variables must be present and must not hold placeholder values
  - Service endpoints must not point at localhost
  - PostgreSQL, auth secrets, and GCP settings must be consistent

Errors make the configuration invalid; warnings are advisory.

# Sources

  env://                     process environment (default)
  cm://namespace/name        Kubernetes ConfigMap
  secret://namespace/name    Kubernetes Secret
  path/to/staging.env        dotenv file
  path/to/vars.yaml          flat YAML or JSON mapping

# Examples

Validate the current environment and fail the deploy step when invalid:
  stagecheck validate --fail-on-error

Validate a ConfigMap and Secret as one deployment:
  stagecheck validate -s cm://netra/backend -s secret://netra/backend --merge

Validate several services independently:
  stagecheck validate -s backend.env -s auth.env --format table`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Variable source URI (repeatable, default: env://): env://, cm://namespace/name, secret://namespace/name, or a file path",
			},
			&cli.BoolFlag{
				Name:  "merge",
				Usage: "Validate all sources as one configuration; the first source defining a variable wins",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Treat variables matching a pattern as unset (repeatable; supports PREFIX*, *SUFFIX, *PART*)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with a non-zero status when any configuration is invalid",
			},
			&cli.StringSliceFlag{
				Name:  "known-project",
				Usage: "Accepted GCP_PROJECT_ID value (repeatable, replaces the built-in list)",
			},
			&cli.BoolFlag{
				Name:  "no-suggestions",
				Usage: "Do not suggest similarly named variables for missing critical ones",
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			output := cmd.String("output")
			if output != "" && !cmd.IsSet("format") {
				outFormat = serializer.FormatFromPath(output)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.ValidationTimeout)
			defer cancel()

			sources, err := loadSources(ctx, cmd.StringSlice("source"), cmd.String("kubeconfig"))
			if err != nil {
				return err
			}
			if patterns := cmd.StringSlice("exclude"); len(patterns) > 0 {
				for i := range sources {
					sources[i].src = envsource.Exclude(sources[i].src, patterns...)
				}
			}

			v := validator.New(validatorOptions(cmd)...)

			results, data, err := runValidation(ctx, v, sources, cmd.Bool("merge"))
			if err != nil {
				return err
			}

			if err := writeResult(ctx, cmd, outFormat, output, data); err != nil {
				return err
			}

			names := sortedKeys(results)
			for _, name := range names {
				slog.Debug("validated source", "source", name)
				validator.LogSummary(results[name])
			}

			if cmd.Bool("fail-on-error") {
				return failures(results, names)
			}
			return nil
		},
	}
}

type namedSource struct {
	uri string
	src envsource.Source
}

func loadSources(ctx context.Context, uris []string, kubeconfig string) ([]namedSource, error) {
	if len(uris) == 0 {
		uris = []string{envsource.EnvURI}
	}

	opener := &envsource.Opener{}
	sources := make([]namedSource, 0, len(uris))
	for _, uri := range uris {
		src, err := opener.Open(ctx, uri, kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load source %q: %w", uri, err)
		}
		sources = append(sources, namedSource{uri: uri, src: src})
	}
	return sources, nil
}

func validatorOptions(cmd *cli.Command) []validator.Option {
	opts := []validator.Option{validator.WithVersion(version)}
	if projects := cmd.StringSlice("known-project"); len(projects) > 0 {
		opts = append(opts, validator.WithKnownProjects(projects...))
	}
	if cmd.Bool("no-suggestions") {
		opts = append(opts, validator.WithSuggestions(false))
	}
	return opts
}

// runValidation returns the results keyed by source name and the value to
// serialize: a single result, or a map when sources are validated separately.
func runValidation(ctx context.Context, v *validator.Validator, sources []namedSource, merge bool) (map[string]*validator.ValidationResult, any, error) {
	if len(sources) == 1 || merge {
		src := sources[0].src
		if len(sources) > 1 {
			layers := make([]envsource.Source, 0, len(sources))
			for _, s := range sources {
				layers = append(layers, s.src)
			}
			src = envsource.Layered(layers...)
		}

		res, err := v.Validate(ctx, src)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to validate %s: %w", envsource.Describe(src), err)
		}
		return map[string]*validator.ValidationResult{envsource.Describe(src): res}, res, nil
	}

	byName := make(map[string]envsource.Source, len(sources))
	for _, s := range sources {
		byName[s.uri] = s.src
	}
	results, err := v.ValidateAll(ctx, byName)
	if err != nil {
		return nil, nil, err
	}
	return results, results, nil
}

func writeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, output string, data any) error {
	var ser serializer.Serializer = serializer.NewWriter(format, cmd.Root().Writer)
	if output != "" && output != serializer.StdoutURI {
		w, err := serializer.NewFileWriterOrStdout(format, output)
		if err != nil {
			return err
		}
		ser = w
	}
	if c, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				slog.Warn("failed to close output", "error", err)
			}
		}()
	}

	if err := ser.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to write validation result: %w", err)
	}
	return nil
}

func failures(results map[string]*validator.ValidationResult, names []string) error {
	var errs []error
	for _, name := range names {
		res := results[name]
		if res.IsValid {
			continue
		}
		cfgErr := &validator.StagingConfigError{Result: res}
		if len(results) == 1 {
			return cfgErr
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, cfgErr))
	}
	return errors.Join(errs...)
}

func sortedKeys(results map[string]*validator.ValidationResult) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/netra-systems/stagecheck/pkg/validator"
)

func rulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "Print the rule sets used by validate",
		Description: `Prints the critical and important variable lists, the variables checked
for localhost references, the placeholder patterns, the accepted GCP
projects, and the minimum secret length.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "known-project",
				Usage: "Accepted GCP_PROJECT_ID value (repeatable, replaces the built-in list)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rules := validator.New(validatorOptions(cmd)...).Rules()
			return writeResult(ctx, cmd, outFormat, cmd.String("output"), rules)
		},
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/netra-systems/stagecheck/pkg/api"
	"github.com/netra-systems/stagecheck/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the validation HTTP API",
		Description: `Starts an HTTP server exposing:
  POST /v1/validate   validate a JSON object of variables
  GET  /health        liveness
  GET  /ready         readiness
  GET  /metrics       Prometheus metrics

The listen port defaults to 8080 and can be set with --port or PORT.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (overrides PORT env)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			if cmd.IsSet("port") {
				cfg.Port = int(cmd.Int("port"))
			}
			return api.Serve(ctx, server.WithConfig(cfg))
		},
	}
}

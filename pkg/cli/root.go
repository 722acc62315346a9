/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/netra-systems/stagecheck/pkg/logging"
)

const name = "stagecheck"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/netra-systems/stagecheck/pkg/cli.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 2
)

func newRootCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate staging deployment configuration",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Writer:                out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("STAGECHECK_DEBUG"),
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Emit logs as JSON",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultCLILogger(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			rulesCmd(),
			serveCmd(),
		},
	}
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, out io.Writer) int {
	err := newRootCmd(out).Run(ctx, args)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
		return ExitInterrupted
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitFailure
	}
}

// Execute runs the CLI against os.Args and exits the process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := Run(ctx, os.Args, os.Stdout)
	stop()
	os.Exit(code)
}

// commandLister prints the names of visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/netra-systems/stagecheck/pkg/logging"
	"github.com/netra-systems/stagecheck/pkg/server"
	"github.com/netra-systems/stagecheck/pkg/validator"
)

const (
	name           = "stagecheck-api-server"
	versionDefault = "dev"

	// PathValidate is the validation endpoint.
	PathValidate = "/v1/validate"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/netra-systems/stagecheck/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the API handlers keyed by path.
func Routes(v *validator.Validator) map[string]http.HandlerFunc {
	h := NewValidateHandler(v)
	return map[string]http.HandlerFunc{
		PathValidate: h.HandleValidate,
	}
}

// Serve starts the API server and blocks until ctx is done or the process
// is signalled. It configures logging, sets up routes, and handles graceful
// shutdown.
func Serve(ctx context.Context, opts ...server.Option) error {
	s := newServer(opts...)

	setupLogging(s.Config())
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"port", s.Config().Port,
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func newServer(opts ...server.Option) *server.Server {
	v := validator.New(validator.WithVersion(version))

	base := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(v)),
	}
	return server.New(append(base, opts...)...)
}

// setupLogging installs the structured logger at the configured level.
func setupLogging(cfg *server.Config) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logging.ParseLevel(cfg.LogLevel))
}

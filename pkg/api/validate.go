/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/netra-systems/stagecheck/pkg/defaults"
	"github.com/netra-systems/stagecheck/pkg/envsource"
	scerrors "github.com/netra-systems/stagecheck/pkg/errors"
	"github.com/netra-systems/stagecheck/pkg/serializer"
	"github.com/netra-systems/stagecheck/pkg/server"
	"github.com/netra-systems/stagecheck/pkg/validator"
)

// ValidateHandler serves POST /v1/validate. The body is a flat JSON (or YAML)
// object of variable names to values; the response is a ValidationResult.
type ValidateHandler struct {
	validator *validator.Validator
}

// NewValidateHandler returns a handler backed by v, or a default Validator if v is nil.
func NewValidateHandler(v *validator.Validator) *ValidateHandler {
	if v == nil {
		v = validator.New()
	}
	return &ValidateHandler{validator: v}
}

// HandleValidate handles POST /v1/validate.
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, scerrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	vars, err := readVariables(w, r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request body", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
	defer cancel()

	res, err := h.validator.Validate(ctx, vars)
	if err != nil {
		code := scerrors.ErrCodeInternal
		if errors.Is(err, context.DeadlineExceeded) {
			code = scerrors.ErrCodeTimeout
		}
		slog.Error("validation failed", "error", err, "requestId", server.RequestIDFromContext(r.Context()))
		server.WriteErrorFromErr(w, r, scerrors.Wrap(code, "validation failed", err), "validation failed", nil)
		return
	}

	slog.Info("validation served",
		"requestId", server.RequestIDFromContext(r.Context()),
		"valid", res.IsValid,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)

	serializer.Respond(w, r, http.StatusOK, res)
}

func readVariables(w http.ResponseWriter, r *http.Request) (envsource.Map, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, scerrors.WrapWithContext(scerrors.ErrCodeInvalidRequest, "request body too large", nil,
				map[string]any{"limit": tooLarge.Limit})
		}
		return nil, scerrors.Wrap(scerrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}

	if strings.TrimSpace(string(body)) == "" {
		return nil, scerrors.New(scerrors.ErrCodeInvalidRequest, "request body is required")
	}

	vars, err := envsource.ParseYAML(body)
	if err != nil {
		return nil, scerrors.Wrap(scerrors.ErrCodeInvalidRequest, "request body must be an object of variable names to scalar values", err)
	}
	return vars, nil
}

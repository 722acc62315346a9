/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/netra-systems/stagecheck/pkg/envsource"
)

// ValidateAll validates each named source concurrently and returns the
// results keyed by name. It fails only if a Validate call fails.
func (v *Validator) ValidateAll(ctx context.Context, sources map[string]envsource.Source) (map[string]*ValidationResult, error) {
	var mu sync.Mutex
	results := make(map[string]*ValidationResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for name, src := range sources {
		g.Go(func() error {
			res, err := v.Validate(ctx, src)
			if err != nil {
				slog.Error("validation failed", "source", name, "error", err)
				return fmt.Errorf("failed to validate %s: %w", name, err)
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

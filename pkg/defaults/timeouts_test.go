/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "testing"

func TestTimeoutOrdering(t *testing.T) {
	if HandlerTimeout >= ServerWriteTimeout {
		t.Fatalf("HandlerTimeout (%s) must be shorter than ServerWriteTimeout (%s)", HandlerTimeout, ServerWriteTimeout)
	}
	if KubernetesReadTimeout >= ValidationTimeout {
		t.Fatalf("KubernetesReadTimeout (%s) must be shorter than ValidationTimeout (%s)", KubernetesReadTimeout, ValidationTimeout)
	}
	if ServerRateLimitBurst < ServerRateLimit {
		t.Fatalf("burst %d must not be below rate %d", ServerRateLimitBurst, ServerRateLimit)
	}
	if MaxRequestBodyBytes != 1<<20 {
		t.Fatalf("MaxRequestBodyBytes = %d, want 1 MiB", MaxRequestBodyBytes)
	}
}

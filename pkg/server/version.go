/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is used when the client does not request a version.
	DefaultAPIVersion = "v1"

	// HeaderAPIVersion reports the API version used to serve a response.
	HeaderAPIVersion = "X-API-Version"

	vendorMediaTypePrefix = "application/vnd.netra.stagecheck."
)

var supportedAPIVersions = map[string]struct{}{
	"v1": {},
}

// negotiateAPIVersion reads a vendor media type such as
// application/vnd.netra.stagecheck.v1+json from the Accept header.
func negotiateAPIVersion(r *http.Request) string {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.TrimSpace(part)
		if i := strings.Index(mt, ";"); i >= 0 {
			mt = mt[:i]
		}
		rest, ok := strings.CutPrefix(mt, vendorMediaTypePrefix)
		if !ok {
			continue
		}
		if i := strings.Index(rest, "+"); i >= 0 {
			rest = rest[:i]
		}
		if isValidAPIVersion(rest) {
			return rest
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(v string) bool {
	_, ok := supportedAPIVersions[v]
	return ok
}

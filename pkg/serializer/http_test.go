/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/yaml.v3"
)

type finding struct {
	Variable string `json:"variable" yaml:"variable"`
	Severity string `json:"severity" yaml:"severity"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := finding{Variable: "JWT_SECRET_KEY", Severity: "error"}

	RespondJSON(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var got finding
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if got != data {
		t.Errorf("expected %+v, got %+v", data, got)
	}
}

func TestRespondJSON_StatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		RespondJSON(w, code, finding{})
		if w.Code != code {
			t.Errorf("expected status %d, got %d", code, w.Code)
		}
	}
}

func TestRespondJSON_EncodingErrorDoesNotWritePartialResponse(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d for encoding error, got %d", http.StatusInternalServerError, w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestRespondJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, nil)

	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected 'null\\n', got %q", body)
	}
}

func TestRespond_NegotiatesYAML(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/yaml")
	w := httptest.NewRecorder()

	Respond(w, req, http.StatusOK, finding{Variable: "REDIS_URL", Severity: "warning"})

	if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Fatalf("expected Content-Type application/yaml, got %s", ct)
	}

	var got finding
	if err := yaml.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal yaml: %v", err)
	}
	if got.Variable != "REDIS_URL" {
		t.Errorf("expected REDIS_URL, got %q", got.Variable)
	}
}

func TestRespond_DefaultsToJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	Respond(w, req, http.StatusOK, finding{})

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %s", ct)
	}
}

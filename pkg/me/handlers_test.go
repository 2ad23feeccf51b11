// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package me

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
)

func newTestAPI() *chi.Mux {
	mux := chi.NewMux()
	NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestHandleMeAnonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestAPI().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var resp httptypes.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if resp.Error.Code != httptypes.CodeUnauthorized {
		t.Fatalf("code = %q, want unauthorized", resp.Error.Code)
	}
}

func TestHandleMe(t *testing.T) {
	i := &identity.Identity{
		User:              "alice",
		Email:             "alice@example.com",
		PreferredUsername: "ally",
		Source:            identity.SourceForwarded,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req = req.WithContext(identity.WithIdentity(req.Context(), i))

	rec := httptest.NewRecorder()
	newTestAPI().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got identity.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got != *i {
		t.Fatalf("identity = %+v, want %+v", got, *i)
	}
}

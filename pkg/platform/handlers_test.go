// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/catalog-service/internal/authorization"
	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/storage"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

func newTestAPI(service ServiceInterface, authz AuthorizerInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(service, authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func withIdentity(r *http.Request, i *identity.Identity) *http.Request {
	return r.WithContext(identity.WithIdentity(r.Context(), i))
}

func decodeError(t *testing.T, body string) httptypes.ErrorResponse {
	t.Helper()
	var resp httptypes.ErrorResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode error envelope %q: %v", body, err)
	}
	return resp
}

func TestHandleListPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListPlatforms(gomock.Any()).Return([]*types.Platform{
		{ID: "platform-b"},
		{ID: "platform-a"},
	}, nil)

	mux := newTestAPI(mockService, NewMockAuthorizerInterface(ctrl))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/platforms?limit=1&offset=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp httptypes.ListResponse[*types.Platform]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || resp.Limit != 1 || resp.Offset != 1 {
		t.Fatalf("envelope = %+v, want total 2 limit 1 offset 1", resp)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "platform-a" {
		t.Fatalf("items = %+v, want the second platform", resp.Items)
	}
}

func TestHandleListInvalidPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := newTestAPI(NewMockServiceInterface(ctrl), NewMockAuthorizerInterface(ctrl))

	for _, target := range []string{
		"/api/v1/platforms?limit=0",
		"/api/v1/platforms?limit=201",
		"/api/v1/platforms?offset=-1",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status = %d, want 422", target, rec.Code)
		}
		if resp := decodeError(t, rec.Body.String()); resp.Error.Code != httptypes.CodeValidationError {
			t.Fatalf("%s: code = %q, want validation_error", target, resp.Error.Code)
		}
	}
}

func TestHandleDetailNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetPlatform(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	mux := newTestAPI(mockService, NewMockAuthorizerInterface(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/platforms/missing", nil)
	req = req.WithContext(httptypes.WithRequestID(req.Context(), "req-123"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeError(t, rec.Body.String())
	if resp.Error.Code != httptypes.CodeNotFound {
		t.Fatalf("code = %q, want not_found", resp.Error.Code)
	}
	if resp.Error.RequestID != "req-123" {
		t.Fatalf("request_id = %q, want req-123", resp.Error.RequestID)
	}
}

func TestHandleCreateAuthorization(t *testing.T) {
	admin := &identity.Identity{User: "devuser", Source: identity.SourceDev}
	viewer := &identity.Identity{User: "viewer@example.com", Source: identity.SourceForwarded}

	tests := []struct {
		name       string
		identity   *identity.Identity
		setupMocks func(*MockServiceInterface, *MockAuthorizerInterface)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "anonymous is unauthorized",
			identity:   nil,
			setupMocks: func(*MockServiceInterface, *MockAuthorizerInterface) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   httptypes.CodeUnauthorized,
		},
		{
			name:     "non admin is forbidden",
			identity: viewer,
			setupMocks: func(_ *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().Require(gomock.Any(), viewer, nil, authorization.RoleAdmin).
					Return(&authorization.PermissionContext{Granted: false}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   httptypes.CodeForbidden,
		},
		{
			name:     "admin creates",
			identity: admin,
			setupMocks: func(service *MockServiceInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().Require(gomock.Any(), admin, nil, authorization.RoleAdmin).
					Return(&authorization.PermissionContext{Granted: true}, nil)
				service.EXPECT().CreatePlatform(gomock.Any(), gomock.Any(), admin).
					Return(&types.Platform{ID: "platform-100", Name: "New Platform"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			tt.setupMocks(mockService, mockAuthz)

			mux := newTestAPI(mockService, mockAuthz)

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/v1/platforms",
				strings.NewReader(`{"name": "New Platform", "owner": "team", "state": "active"}`),
			)
			if tt.identity != nil {
				req = withIdentity(req, tt.identity)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if resp := decodeError(t, rec.Body.String()); resp.Error.Code != tt.wantCode {
					t.Fatalf("code = %q, want %q", resp.Error.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleCreateInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &identity.Identity{User: "devuser", Source: identity.SourceDev}

	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAuthz.EXPECT().Require(gomock.Any(), admin, nil, authorization.RoleAdmin).
		Return(&authorization.PermissionContext{Granted: true}, nil).
		AnyTimes()

	mux := newTestAPI(NewMockServiceInterface(ctrl), mockAuthz)

	for _, body := range []string{
		`{"name": "", "owner": "team", "state": "active"}`,
		`{"name": "   ", "owner": "team", "state": "active"}`,
		`not json`,
	} {
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/platforms", strings.NewReader(body)), admin)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %q: status = %d, want 422", body, rec.Code)
		}
	}
}

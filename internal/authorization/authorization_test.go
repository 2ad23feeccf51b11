// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"reflect"
	"testing"

	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

func newTestAuthorizer(bindings []types.RoleBinding) *Authorizer {
	return NewAuthorizer(
		NewStaticBindingSource(bindings),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestGetRoles(t *testing.T) {
	platform1 := "platform-001"
	platform2 := "platform-002"

	tests := []struct {
		name       string
		identity   *identity.Identity
		platformID *string
		want       []string
	}{
		{
			name:     "anonymous identity has no roles",
			identity: nil,
			want:     nil,
		},
		{
			name:     "global admin binding matches on user",
			identity: &identity.Identity{User: "devuser", Source: identity.SourceDev},
			want:     []string{RoleAdmin},
		},
		{
			name:     "binding matches on email alias",
			identity: &identity.Identity{User: "someone", Email: "viewer@example.com", Source: identity.SourceForwarded},
			want:     []string{RoleViewer},
		},
		{
			name:     "binding matches on preferred username alias",
			identity: &identity.Identity{User: "someone", PreferredUsername: "viewer@example.com", Source: identity.SourceForwarded},
			want:     []string{RoleViewer},
		},
		{
			name:       "platform scoped binding applies within its scope",
			identity:   &identity.Identity{User: "contributor@example.com", Source: identity.SourceForwarded},
			platformID: &platform1,
			want:       []string{RoleContributor},
		},
		{
			name:       "platform scoped binding excluded outside its scope",
			identity:   &identity.Identity{User: "contributor@example.com", Source: identity.SourceForwarded},
			platformID: &platform2,
			want:       nil,
		},
		{
			name:       "global binding applies under any platform scope",
			identity:   &identity.Identity{User: "devuser", Source: identity.SourceDev},
			platformID: &platform2,
			want:       []string{RoleAdmin},
		},
		{
			name:     "unknown principal has no roles",
			identity: &identity.Identity{User: "stranger", Source: identity.SourceForwarded},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := newTestAuthorizer(DefaultBindings())

			got, err := authorizer.GetRoles(context.Background(), tt.identity, tt.platformID)
			if err != nil {
				t.Fatalf("GetRoles returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetRoles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetRolesSkipsInactiveAndNonUserBindings(t *testing.T) {
	bindings := []types.RoleBinding{
		{
			ID:            "rbac-100",
			PrincipalType: PrincipalTypeUser,
			PrincipalID:   "devuser",
			Role:          RoleAdmin,
			State:         "revoked",
		},
		{
			ID:            "rbac-101",
			PrincipalType: "group",
			PrincipalID:   "devuser",
			Role:          RoleViewer,
			State:         BindingStateActive,
		},
	}

	authorizer := newTestAuthorizer(bindings)

	got, err := authorizer.GetRoles(context.Background(), &identity.Identity{User: "devuser"}, nil)
	if err != nil {
		t.Fatalf("GetRoles returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("GetRoles = %v, want no roles", got)
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name          string
		identity      *identity.Identity
		requiredRoles []string
		wantGranted   bool
	}{
		{
			name:          "empty requirement always granted",
			identity:      nil,
			requiredRoles: nil,
			wantGranted:   true,
		},
		{
			name:          "anonymous denied a role requirement",
			identity:      nil,
			requiredRoles: []string{RoleAdmin},
			wantGranted:   false,
		},
		{
			name:          "viewer denied admin requirement",
			identity:      &identity.Identity{User: "viewer@example.com"},
			requiredRoles: []string{RoleAdmin},
			wantGranted:   false,
		},
		{
			name:          "any of requirement grants on one match",
			identity:      &identity.Identity{User: "viewer@example.com"},
			requiredRoles: []string{RoleAdmin, RoleViewer},
			wantGranted:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := newTestAuthorizer(DefaultBindings())

			pctx, err := authorizer.Require(context.Background(), tt.identity, nil, tt.requiredRoles...)
			if err != nil {
				t.Fatalf("Require returned error: %v", err)
			}
			if pctx.Granted != tt.wantGranted {
				t.Fatalf("Granted = %v, want %v", pctx.Granted, tt.wantGranted)
			}
		})
	}
}

func TestNormalizeRoles(t *testing.T) {
	got := NormalizeRoles([]string{"Admin", "", "Viewer", "Admin", "Viewer"})
	want := []string{"Admin", "Viewer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeRoles = %v, want %v", got, want)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/canonical/catalog-service/internal/types"

const (
	RoleViewer          = "Viewer"
	RoleContributor     = "Contributor"
	RoleIncidentTriager = "IncidentTriager"
	RoleServiceOwner    = "ServiceOwner"
	RoleAdmin           = "Admin"

	BindingStateActive = "active"
	PrincipalTypeUser  = "user"
)

func strPtr(s string) *string {
	return &s
}

// DefaultBindings returns the seed role bindings used when no external
// binding source is configured.
func DefaultBindings() []types.RoleBinding {
	seedStamp := "2024-07-12T09:00:00Z"

	newBinding := func(id, principalID, role string, platformID *string) types.RoleBinding {
		return types.RoleBinding{
			ID:            id,
			PrincipalType: PrincipalTypeUser,
			PrincipalID:   principalID,
			Role:          role,
			PlatformID:    platformID,
			State:         BindingStateActive,
			CreatedAt:     seedStamp,
			CreatedBy:     "seed",
			UpdatedAt:     seedStamp,
			UpdatedBy:     "seed",
		}
	}

	return []types.RoleBinding{
		newBinding("rbac-001", "devuser", RoleAdmin, nil),
		newBinding("rbac-002", "viewer@example.com", RoleViewer, nil),
		newBinding("rbac-003", "contributor@example.com", RoleContributor, strPtr("platform-001")),
		newBinding("rbac-004", "triager@example.com", RoleIncidentTriager, strPtr("platform-001")),
		newBinding("rbac-005", "owner@example.com", RoleServiceOwner, strPtr("platform-002")),
	}
}

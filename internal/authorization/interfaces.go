// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/types"
)

// BindingSourceInterface supplies the role bindings the authorizer scans.
type BindingSourceInterface interface {
	ListBindings(ctx context.Context) ([]types.RoleBinding, error)
}

type AuthorizerInterface interface {
	GetRoles(ctx context.Context, i *identity.Identity, platformID *string) ([]string, error)
	HasRole(ctx context.Context, i *identity.Identity, role string, platformID *string) (bool, error)
	Require(ctx context.Context, i *identity.Identity, platformID *string, requiredRoles ...string) (*PermissionContext, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"

	"github.com/canonical/catalog-service/internal/authorization"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/types"
)

type ServiceInterface interface {
	ListPlatforms(ctx context.Context) ([]*types.Platform, error)
	GetPlatform(ctx context.Context, id string) (*types.Platform, error)
	CreatePlatform(ctx context.Context, payload *CreatePlatformRequest, i *identity.Identity) (*types.Platform, error)
}

type StorageInterface interface {
	ListPlatforms(ctx context.Context) ([]*types.Platform, error)
	GetPlatform(ctx context.Context, id string) (*types.Platform, error)
	CreatePlatform(ctx context.Context, platform *types.Platform) (*types.Platform, error)
}

type AuthorizerInterface interface {
	Require(ctx context.Context, i *identity.Identity, platformID *string, requiredRoles ...string) (*authorization.PermissionContext, error)
}

// CreatePlatformRequest is the create payload.
type CreatePlatformRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Owner string `json:"owner" validate:"required,max=200"`
	State string `json:"state" validate:"required,max=50"`
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statuscheck

import (
	"context"

	"github.com/canonical/catalog-service/internal/authorization"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/types"
)

type ServiceInterface interface {
	ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error)
	GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error)
	CreateStatusCheck(ctx context.Context, payload *StatusCheckRequest, i *identity.Identity) (*types.StatusCheck, error)
	UpdateStatusCheck(ctx context.Context, id string, payload *StatusCheckRequest, i *identity.Identity) (*types.StatusCheck, error)
}

type StorageInterface interface {
	ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error)
	GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error)
	CreateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error)
	UpdateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error)
}

type AuthorizerInterface interface {
	Require(ctx context.Context, i *identity.Identity, platformID *string, requiredRoles ...string) (*authorization.PermissionContext, error)
}

// StatusCheckRequest is the payload for both create and update. The warn
// threshold must be strictly below the crit threshold.
type StatusCheckRequest struct {
	PlatformID       string  `json:"platform_id" validate:"required,max=200"`
	Name             string  `json:"name" validate:"required,max=200"`
	CheckType        string  `json:"check_type" validate:"required,max=100"`
	OwnerGroup       *string `json:"owner_group" validate:"omitempty,max=200"`
	Description      *string `json:"description" validate:"omitempty,max=1000"`
	SLAMinutes       int     `json:"sla_minutes" validate:"required,gt=0"`
	WarnAfterMinutes int     `json:"warn_after_minutes" validate:"required,gt=0,ltfield=CritAfterMinutes"`
	CritAfterMinutes int     `json:"crit_after_minutes" validate:"required,gt=0"`
	State            string  `json:"state" validate:"required,max=50"`
}

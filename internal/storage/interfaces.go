// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/catalog-service/internal/types"
)

type StorageInterface interface {
	ListPlatforms(ctx context.Context) ([]*types.Platform, error)
	GetPlatform(ctx context.Context, id string) (*types.Platform, error)
	CreatePlatform(ctx context.Context, platform *types.Platform) (*types.Platform, error)

	ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error)
	GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error)
	CreateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error)
	UpdateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error)

	ListStatusResults(ctx context.Context) ([]*types.StatusResult, error)

	ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error)

	ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error)
}

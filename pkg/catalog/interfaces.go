// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/catalog-service/internal/types"
)

type ServiceInterface interface {
	ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error)
	ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error)
}

type StorageInterface interface {
	ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error)
	ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error)
}

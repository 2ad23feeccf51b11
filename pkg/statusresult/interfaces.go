// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statusresult

import (
	"context"

	"github.com/canonical/catalog-service/internal/query"
	"github.com/canonical/catalog-service/internal/types"
)

type ServiceInterface interface {
	ListStatusResults(ctx context.Context, filter Filter) ([]*types.StatusResult, error)
	LatestStatusResults(ctx context.Context, filter Filter) ([]*types.StatusResult, error)
}

type StorageInterface interface {
	ListStatusResults(ctx context.Context) ([]*types.StatusResult, error)
}

// Filter narrows results by platform, check and an inclusive measured-at
// window. Empty fields match everything.
type Filter struct {
	PlatformID string
	CheckID    string
	Range      query.TimeRange
}

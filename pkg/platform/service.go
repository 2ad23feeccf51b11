// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/query"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListPlatforms returns all platforms ordered newest first, created_at then
// id breaking ties.
func (s *Service) ListPlatforms(ctx context.Context) ([]*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.ListPlatforms")
	defer span.End()

	platforms, err := s.storage.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(platforms, func(p *types.Platform) (query.SortKey, error) {
		created, err := query.ParseRecordTimestamp(p.CreatedAt)
		if err != nil {
			return query.SortKey{}, err
		}
		return query.SortKey{Primary: created, ID: p.ID}, nil
	})
}

func (s *Service) GetPlatform(ctx context.Context, id string) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.GetPlatform")
	defer span.End()

	return s.storage.GetPlatform(ctx, id)
}

func (s *Service) CreatePlatform(ctx context.Context, payload *CreatePlatformRequest, i *identity.Identity) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.CreatePlatform")
	defer span.End()

	timestamp := utcNow()
	platform := &types.Platform{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Owner:     payload.Owner,
		State:     payload.State,
		CreatedAt: timestamp,
		CreatedBy: i.User,
		UpdatedAt: timestamp,
		UpdatedBy: i.User,
	}

	created, err := s.storage.CreatePlatform(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}

	return created, nil
}

// utcNow returns the current UTC time truncated to whole seconds, formatted
// with a Z suffix.
func utcNow() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

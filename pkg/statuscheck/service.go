// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statuscheck

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

func (s *Service) ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "statuscheck.Service.ListStatusChecks")
	defer span.End()

	checks, err := s.storage.ListStatusChecks(ctx, platformID, state)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(checks, func(c *types.StatusCheck) (query.SortKey, error) {
		created, err := query.ParseRecordTimestamp(c.CreatedAt)
		if err != nil {
			return query.SortKey{}, err
		}
		return query.SortKey{Primary: created, ID: c.ID}, nil
	})
}

func (s *Service) GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "statuscheck.Service.GetStatusCheck")
	defer span.End()

	return s.storage.GetStatusCheck(ctx, id)
}

func (s *Service) CreateStatusCheck(ctx context.Context, payload *StatusCheckRequest, i *identity.Identity) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "statuscheck.Service.CreateStatusCheck")
	defer span.End()

	timestamp := utcNow()
	check := &types.StatusCheck{
		ID:               uuid.NewString(),
		PlatformID:       payload.PlatformID,
		Name:             payload.Name,
		CheckType:        payload.CheckType,
		OwnerGroup:       payload.OwnerGroup,
		Description:      payload.Description,
		SLAMinutes:       payload.SLAMinutes,
		WarnAfterMinutes: payload.WarnAfterMinutes,
		CritAfterMinutes: payload.CritAfterMinutes,
		State:            payload.State,
		Version:          1,
		CreatedAt:        timestamp,
		CreatedBy:        i.User,
		UpdatedAt:        timestamp,
		UpdatedBy:        i.User,
	}

	created, err := s.storage.CreateStatusCheck(ctx, check)
	if err != nil {
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}

	return created, nil
}

// UpdateStatusCheck replaces all configurable fields, bumps the version by
// exactly one and carries the creation and deletion fields forward untouched.
func (s *Service) UpdateStatusCheck(ctx context.Context, id string, payload *StatusCheckRequest, i *identity.Identity) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "statuscheck.Service.UpdateStatusCheck")
	defer span.End()

	existing, err := s.storage.GetStatusCheck(ctx, id)
	if err != nil {
		return nil, err
	}

	check := &types.StatusCheck{
		ID:               existing.ID,
		PlatformID:       payload.PlatformID,
		Name:             payload.Name,
		CheckType:        payload.CheckType,
		OwnerGroup:       payload.OwnerGroup,
		Description:      payload.Description,
		SLAMinutes:       payload.SLAMinutes,
		WarnAfterMinutes: payload.WarnAfterMinutes,
		CritAfterMinutes: payload.CritAfterMinutes,
		State:            payload.State,
		Version:          existing.Version + 1,
		CreatedAt:        existing.CreatedAt,
		CreatedBy:        existing.CreatedBy,
		UpdatedAt:        utcNow(),
		UpdatedBy:        i.User,
		IsDeleted:        existing.IsDeleted,
		DeletedAt:        existing.DeletedAt,
		DeletedBy:        existing.DeletedBy,
	}

	updated, err := s.storage.UpdateStatusCheck(ctx, check)
	if err != nil {
		return nil, fmt.Errorf("failed to update status check: %w", err)
	}

	return updated, nil
}

func utcNow() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statusresult

import (
	"context"

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

func resultSortKey(r *types.StatusResult) (query.SortKey, error) {
	measured, err := query.ParseRecordTimestamp(r.MeasuredAt)
	if err != nil {
		return query.SortKey{}, err
	}
	created, err := query.ParseRecordTimestamp(r.CreatedAt)
	if err != nil {
		return query.SortKey{}, err
	}
	return query.SortKey{Primary: measured, Secondary: created, ID: r.ID}, nil
}

func (s *Service) filter(results []*types.StatusResult, filter Filter) ([]*types.StatusResult, error) {
	var filtered []*types.StatusResult
	for _, result := range results {
		if filter.PlatformID != "" && result.PlatformID != filter.PlatformID {
			continue
		}
		if filter.CheckID != "" && result.CheckID != filter.CheckID {
			continue
		}

		measured, err := query.ParseRecordTimestamp(result.MeasuredAt)
		if err != nil {
			return nil, err
		}
		if !filter.Range.Contains(measured) {
			continue
		}
		filtered = append(filtered, result)
	}
	return filtered, nil
}

// ListStatusResults returns the filtered results ordered newest first by
// measured_at, with created_at and id breaking ties.
func (s *Service) ListStatusResults(ctx context.Context, filter Filter) ([]*types.StatusResult, error) {
	ctx, span := s.tracer.Start(ctx, "statusresult.Service.ListStatusResults")
	defer span.End()

	results, err := s.storage.ListStatusResults(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.filter(results, filter)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(filtered, resultSortKey)
}

// LatestStatusResults reduces the filtered results to the newest one per
// check. Filtering happens before the reduction, so a time window yields the
// latest result within that window.
func (s *Service) LatestStatusResults(ctx context.Context, filter Filter) ([]*types.StatusResult, error) {
	ctx, span := s.tracer.Start(ctx, "statusresult.Service.LatestStatusResults")
	defer span.End()

	results, err := s.storage.ListStatusResults(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.filter(results, filter)
	if err != nil {
		return nil, err
	}

	latest, err := query.LatestPerKey(filtered, func(r *types.StatusResult) string { return r.CheckID }, resultSortKey)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(latest, resultSortKey)
}

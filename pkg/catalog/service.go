// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package catalog serves the read-only announcement collections, status
// messages and work items.
package catalog

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

func (s *Service) ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListStatusMessages")
	defer span.End()

	messages, err := s.storage.ListStatusMessages(ctx)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(messages, func(m *types.StatusMessage) (query.SortKey, error) {
		created, err := query.ParseRecordTimestamp(m.CreatedAt)
		if err != nil {
			return query.SortKey{}, err
		}
		return query.SortKey{Primary: created, ID: m.ID}, nil
	})
}

// ListWorkItems filters by state when one is given, ordered newest first.
func (s *Service) ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListWorkItems")
	defer span.End()

	workItems, err := s.storage.ListWorkItems(ctx, state)
	if err != nil {
		return nil, err
	}

	return query.SortDesc(workItems, func(w *types.WorkItem) (query.SortKey, error) {
		created, err := query.ParseRecordTimestamp(w.CreatedAt)
		if err != nil {
			return query.SortKey{}, err
		}
		return query.SortKey{Primary: created, ID: w.ID}, nil
	})
}

// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/catalog-service/internal/db"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	platformColumns = []string{"id", "name", "owner", "state", "created_at", "created_by", "updated_at", "updated_by"}

	statusCheckColumns = []string{
		"id", "platform_id", "name", "check_type", "owner_group", "description",
		"sla_minutes", "warn_after_minutes", "crit_after_minutes", "state", "version",
		"created_at", "created_by", "updated_at", "updated_by",
		"is_deleted", "deleted_at", "deleted_by",
	}

	statusResultColumns = []string{
		"id", "check_id", "platform_id", "state", "measured_at", "created_at",
		"observed_value", "message", "ingestion_run_id",
	}

	statusMessageColumns = []string{"id", "platform_id", "severity", "title", "body_md", "state", "created_at", "start_at", "end_at"}

	workItemColumns = []string{"id", "platform_id", "title", "state", "priority", "created_at", "requester"}
)

// Storage is the warehouse backed repository.
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanPlatform(row sq.RowScanner) (*types.Platform, error) {
	var p types.Platform
	err := row.Scan(&p.ID, &p.Name, &p.Owner, &p.State, &p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanStatusCheck(row sq.RowScanner) (*types.StatusCheck, error) {
	var c types.StatusCheck
	err := row.Scan(
		&c.ID, &c.PlatformID, &c.Name, &c.CheckType, &c.OwnerGroup, &c.Description,
		&c.SLAMinutes, &c.WarnAfterMinutes, &c.CritAfterMinutes, &c.State, &c.Version,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
		&c.IsDeleted, &c.DeletedAt, &c.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListPlatforms(ctx context.Context) ([]*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlatforms")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(platformColumns...).
		From("platforms").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*types.Platform
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platform rows: %w", err)
	}

	return platforms, nil
}

func (s *Storage) GetPlatform(ctx context.Context, id string) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlatform")
	defer span.End()

	p, err := scanPlatform(s.db.Statement(ctx).
		Select(platformColumns...).
		From("platforms").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	return p, nil
}

func (s *Storage) CreatePlatform(ctx context.Context, platform *types.Platform) (*types.Platform, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePlatform")
	defer span.End()

	created, err := scanPlatform(s.db.Statement(ctx).
		Insert("platforms").
		Columns(platformColumns...).
		Values(
			platform.ID, platform.Name, platform.Owner, platform.State,
			platform.CreatedAt, platform.CreatedBy, platform.UpdatedAt, platform.UpdatedBy,
		).
		Suffix("RETURNING " + joinColumns(platformColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "platform id already exists")
		}
		return nil, fmt.Errorf("failed to insert platform: %w", err)
	}

	return created, nil
}

func (s *Storage) ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStatusChecks")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(statusCheckColumns...).
		From("status_checks")

	if platformID != "" {
		query = query.Where(sq.Eq{"platform_id": platformID})
	}
	if state != "" {
		query = query.Where(sq.Eq{"state": state})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer rows.Close()

	var checks []*types.StatusCheck
	for rows.Next() {
		c, err := scanStatusCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status check: %w", err)
		}
		checks = append(checks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status check rows: %w", err)
	}

	return checks, nil
}

func (s *Storage) GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetStatusCheck")
	defer span.End()

	c, err := scanStatusCheck(s.db.Statement(ctx).
		Select(statusCheckColumns...).
		From("status_checks").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get status check: %w", err)
	}

	return c, nil
}

func (s *Storage) CreateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateStatusCheck")
	defer span.End()

	created, err := scanStatusCheck(s.db.Statement(ctx).
		Insert("status_checks").
		Columns(statusCheckColumns...).
		Values(
			check.ID, check.PlatformID, check.Name, check.CheckType, check.OwnerGroup, check.Description,
			check.SLAMinutes, check.WarnAfterMinutes, check.CritAfterMinutes, check.State, check.Version,
			check.CreatedAt, check.CreatedBy, check.UpdatedAt, check.UpdatedBy,
			check.IsDeleted, check.DeletedAt, check.DeletedBy,
		).
		Suffix("RETURNING " + joinColumns(statusCheckColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "status check id already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "status check references an unknown platform")
		}
		return nil, fmt.Errorf("failed to insert status check: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateStatusCheck")
	defer span.End()

	updated, err := scanStatusCheck(s.db.Statement(ctx).
		Update("status_checks").
		SetMap(map[string]interface{}{
			"platform_id":        check.PlatformID,
			"name":               check.Name,
			"check_type":         check.CheckType,
			"owner_group":        check.OwnerGroup,
			"description":        check.Description,
			"sla_minutes":        check.SLAMinutes,
			"warn_after_minutes": check.WarnAfterMinutes,
			"crit_after_minutes": check.CritAfterMinutes,
			"state":              check.State,
			"version":            check.Version,
			"updated_at":         check.UpdatedAt,
			"updated_by":         check.UpdatedBy,
		}).
		Where(sq.Eq{"id": check.ID}).
		Suffix("RETURNING " + joinColumns(statusCheckColumns)).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status check: %w", err)
	}

	return updated, nil
}

func (s *Storage) ListStatusResults(ctx context.Context) ([]*types.StatusResult, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStatusResults")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(statusResultColumns...).
		From("status_results").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status results: %w", err)
	}
	defer rows.Close()

	var results []*types.StatusResult
	for rows.Next() {
		var r types.StatusResult
		err := rows.Scan(
			&r.ID, &r.CheckID, &r.PlatformID, &r.State, &r.MeasuredAt, &r.CreatedAt,
			&r.ObservedValue, &r.Message, &r.IngestionRunID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status result: %w", err)
		}
		results = append(results, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status result rows: %w", err)
	}

	return results, nil
}

func (s *Storage) ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStatusMessages")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(statusMessageColumns...).
		From("status_messages").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status messages: %w", err)
	}
	defer rows.Close()

	var messages []*types.StatusMessage
	for rows.Next() {
		var m types.StatusMessage
		err := rows.Scan(&m.ID, &m.PlatformID, &m.Severity, &m.Title, &m.BodyMD, &m.State, &m.CreatedAt, &m.StartAt, &m.EndAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status message rows: %w", err)
	}

	return messages, nil
}

func (s *Storage) ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkItems")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(workItemColumns...).
		From("work_items")

	if state != "" {
		query = query.Where(sq.Eq{"state": state})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	defer rows.Close()

	var items []*types.WorkItem
	for rows.Next() {
		var w types.WorkItem
		err := rows.Scan(&w.ID, &w.PlatformID, &w.Title, &w.State, &w.Priority, &w.CreatedAt, &w.Requester)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work item: %w", err)
		}
		items = append(items, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work item rows: %w", err)
	}

	return items, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

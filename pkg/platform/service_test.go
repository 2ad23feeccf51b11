// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package platform -destination ./mock_platform.go -source=./interfaces.go

func newTestService(storage StorageInterface) *Service {
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceListPlatformsOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListPlatforms(gomock.Any()).Return([]*types.Platform{
		{ID: "platform-a", CreatedAt: "2024-07-12T09:00:00Z"},
		{ID: "platform-c", CreatedAt: "2024-07-12T10:00:00Z"},
		// Same created_at as platform-a, id breaks the tie.
		{ID: "platform-b", CreatedAt: "2024-07-12T09:00:00Z"},
	}, nil)

	s := newTestService(mockStorage)

	platforms, err := s.ListPlatforms(context.Background())
	if err != nil {
		t.Fatalf("ListPlatforms returned error: %v", err)
	}

	var ids []string
	for _, p := range platforms {
		ids = append(ids, p.ID)
	}
	want := []string{"platform-c", "platform-b", "platform-a"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestServiceListPlatformsBadStoredTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListPlatforms(gomock.Any()).Return([]*types.Platform{
		{ID: "platform-a", CreatedAt: "not-a-timestamp"},
	}, nil)

	s := newTestService(mockStorage)

	if _, err := s.ListPlatforms(context.Background()); err == nil {
		t.Fatal("expected error for malformed stored timestamp")
	}
}

func TestServiceCreatePlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	var stored *types.Platform
	mockStorage.EXPECT().CreatePlatform(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, p *types.Platform) (*types.Platform, error) {
			stored = p
			return p, nil
		})

	s := newTestService(mockStorage)

	payload := &CreatePlatformRequest{Name: "New Platform", Owner: "team", State: "active"}
	i := &identity.Identity{User: "devuser", Source: identity.SourceDev}

	created, err := s.CreatePlatform(context.Background(), payload, i)
	if err != nil {
		t.Fatalf("CreatePlatform returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.CreatedBy != "devuser" || created.UpdatedBy != "devuser" {
		t.Fatalf("identity stamps = %q/%q, want devuser", created.CreatedBy, created.UpdatedBy)
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Fatalf("created_at %q and updated_at %q should match on create", created.CreatedAt, created.UpdatedAt)
	}
	if stored == nil || stored.Name != "New Platform" {
		t.Fatalf("stored platform = %+v, want name New Platform", stored)
	}
}

func TestServiceCreatePlatformStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreatePlatform(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	s := newTestService(mockStorage)

	_, err := s.CreatePlatform(
		context.Background(),
		&CreatePlatformRequest{Name: "p", Owner: "o", State: "active"},
		&identity.Identity{User: "devuser"},
	)
	if !errors.Is(err, dbErr) {
		t.Fatalf("CreatePlatform error = %v, want wrapped db error", err)
	}
}

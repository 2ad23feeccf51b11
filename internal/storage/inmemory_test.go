// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/canonical/catalog-service/internal/types"
)

func TestInMemoryStorageSeeds(t *testing.T) {
	s := NewInMemoryStorage()
	ctx := context.Background()

	platforms, err := s.ListPlatforms(ctx)
	if err != nil {
		t.Fatalf("ListPlatforms returned error: %v", err)
	}
	if len(platforms) == 0 {
		t.Fatal("expected seed platforms")
	}

	checks, err := s.ListStatusChecks(ctx, "platform-001", "")
	if err != nil {
		t.Fatalf("ListStatusChecks returned error: %v", err)
	}
	for _, check := range checks {
		if check.PlatformID != "platform-001" {
			t.Fatalf("platform filter leaked check %s for %s", check.ID, check.PlatformID)
		}
	}

	paused, err := s.ListStatusChecks(ctx, "", "paused")
	if err != nil {
		t.Fatalf("ListStatusChecks returned error: %v", err)
	}
	if len(paused) != 0 {
		t.Fatalf("state filter leaked %d checks", len(paused))
	}

	items, err := s.ListWorkItems(ctx, "open")
	if err != nil {
		t.Fatalf("ListWorkItems returned error: %v", err)
	}
	for _, item := range items {
		if item.State != "open" {
			t.Fatalf("state filter leaked work item %s in state %s", item.ID, item.State)
		}
	}
}

func TestInMemoryStorageCreatePlatform(t *testing.T) {
	s := NewEmptyInMemoryStorage()
	ctx := context.Background()

	platform := &types.Platform{ID: "platform-100", Name: "New Platform", Owner: "team", State: "active"}
	created, err := s.CreatePlatform(ctx, platform)
	if err != nil {
		t.Fatalf("CreatePlatform returned error: %v", err)
	}

	// Mutating the returned record must not affect the stored copy.
	created.Name = "mutated"

	stored, err := s.GetPlatform(ctx, "platform-100")
	if err != nil {
		t.Fatalf("GetPlatform returned error: %v", err)
	}
	if stored.Name != "New Platform" {
		t.Fatalf("stored name = %q, want %q", stored.Name, "New Platform")
	}
}

func TestInMemoryStorageGetPlatformNotFound(t *testing.T) {
	s := NewEmptyInMemoryStorage()

	if _, err := s.GetPlatform(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPlatform error = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStorageUpdateStatusCheck(t *testing.T) {
	s := NewInMemoryStorage()
	ctx := context.Background()

	existing, err := s.GetStatusCheck(ctx, "check-001")
	if err != nil {
		t.Fatalf("GetStatusCheck returned error: %v", err)
	}

	existing.Name = "renamed"
	existing.Version = existing.Version + 1
	updated, err := s.UpdateStatusCheck(ctx, existing)
	if err != nil {
		t.Fatalf("UpdateStatusCheck returned error: %v", err)
	}
	if updated.Name != "renamed" || updated.Version != 2 {
		t.Fatalf("updated = %+v, want renamed version 2", updated)
	}

	missing := &types.StatusCheck{ID: "missing"}
	if _, err := s.UpdateStatusCheck(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateStatusCheck error = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStorageConcurrentAccess(t *testing.T) {
	s := NewInMemoryStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.ListStatusResults(ctx)
		}()
		go func() {
			defer wg.Done()
			s.AddStatusResult(&types.StatusResult{
				ID:         "result-x",
				CheckID:    "check-001",
				PlatformID: "platform-001",
				State:      "ok",
				MeasuredAt: "2024-07-12T10:00:00Z",
				CreatedAt:  "2024-07-12T10:00:01Z",
			})
		}()
	}
	wg.Wait()

	results, err := s.ListStatusResults(ctx)
	if err != nil {
		t.Fatalf("ListStatusResults returned error: %v", err)
	}
	if len(results) < 16 {
		t.Fatalf("expected at least 16 results, got %d", len(results))
	}
}

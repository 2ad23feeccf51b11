// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statusresult

//go:generate mockgen -build_flags=--mod=mod -package statusresult -destination ./mock_statusresult.go -source=./interfaces.go

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/query"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

func newTestService(storage StorageInterface) *Service {
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func fixtureResults() []*types.StatusResult {
	return []*types.StatusResult{
		{ID: "r1", CheckID: "c1", PlatformID: "p1", State: "ok", MeasuredAt: "2024-07-01T10:00:00Z", CreatedAt: "2024-07-01T10:01:00Z"},
		{ID: "r2", CheckID: "c1", PlatformID: "p1", State: "warn", MeasuredAt: "2024-07-02T10:00:00Z", CreatedAt: "2024-07-02T10:01:00Z"},
		{ID: "r3", CheckID: "c2", PlatformID: "p1", State: "ok", MeasuredAt: "2024-07-01T12:00:00Z", CreatedAt: "2024-07-01T12:01:00Z"},
		{ID: "r4", CheckID: "c2", PlatformID: "p1", State: "crit", MeasuredAt: "2024-07-03T08:00:00Z", CreatedAt: "2024-07-03T08:01:00Z"},
		{ID: "r5", CheckID: "c3", PlatformID: "p2", State: "ok", MeasuredAt: "2024-07-02T09:00:00Z", CreatedAt: "2024-07-02T09:01:00Z"},
	}
}

func resultIDs(results []*types.StatusResult) []string {
	var ids []string
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestListStatusResultsOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return(fixtureResults(), nil)

	results, err := newTestService(mockStorage).ListStatusResults(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"r4", "r2", "r5", "r3", "r1"}
	if got := resultIDs(results); !equalIDs(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestListStatusResultsFilters(t *testing.T) {
	windowed, err := query.NewTimeRange("2024-07-01T00:00:00Z", "2024-07-02T23:59:59Z")
	if err != nil {
		t.Fatalf("failed to build time range: %v", err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "by platform", filter: Filter{PlatformID: "p2"}, want: []string{"r5"}},
		{name: "by check", filter: Filter{CheckID: "c1"}, want: []string{"r2", "r1"}},
		{name: "by window", filter: Filter{Range: windowed}, want: []string{"r2", "r5", "r3", "r1"}},
		{name: "no match", filter: Filter{PlatformID: "p9"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return(fixtureResults(), nil)

			results, err := newTestService(mockStorage).ListStatusResults(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := resultIDs(results); !equalIDs(got, tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLatestStatusResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return(fixtureResults(), nil)

	results, err := newTestService(mockStorage).LatestStatusResults(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// one result per check, newest first
	want := []string{"r4", "r2", "r5"}
	if got := resultIDs(results); !equalIDs(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestLatestStatusResultsWindowedBeforeReduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return(fixtureResults(), nil)

	windowed, err := query.NewTimeRange("2024-07-01T00:00:00Z", "2024-07-01T23:59:59Z")
	if err != nil {
		t.Fatalf("failed to build time range: %v", err)
	}

	results, err := newTestService(mockStorage).LatestStatusResults(context.Background(), Filter{Range: windowed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the window hides r2 and r4, so the older results win per check
	want := []string{"r3", "r1"}
	if got := resultIDs(results); !equalIDs(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestLatestStatusResultsTieBreakByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return([]*types.StatusResult{
		{ID: "r-a", CheckID: "c1", MeasuredAt: "2024-07-01T10:00:00Z", CreatedAt: "2024-07-01T10:00:00Z"},
		{ID: "r-b", CheckID: "c1", MeasuredAt: "2024-07-01T10:00:00Z", CreatedAt: "2024-07-01T10:00:00Z"},
	}, nil)

	results, err := newTestService(mockStorage).LatestStatusResults(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 || results[0].ID != "r-b" {
		t.Fatalf("ids = %v, want the higher id to win the tie", resultIDs(results))
	}
}

func TestListStatusResultsBadStoredTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListStatusResults(gomock.Any()).Return([]*types.StatusResult{
		{ID: "r1", CheckID: "c1", MeasuredAt: "not a timestamp", CreatedAt: "2024-07-01T10:00:00Z"},
	}, nil)

	_, err := newTestService(mockStorage).ListStatusResults(context.Background(), Filter{})
	if !errors.Is(err, query.ErrBadRecord) {
		t.Fatalf("err = %v, want ErrBadRecord", err)
	}
}

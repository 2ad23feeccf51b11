// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import "github.com/canonical/catalog-service/internal/types"

// Seed fixtures for local development. The ids line up with the seed role
// bindings so the RBAC scenarios can be exercised out of the box.

func strPtr(s string) *string {
	return &s
}

func seedPlatforms() []*types.Platform {
	return []*types.Platform{
		{
			ID:        "platform-001",
			Name:      "Data Platform",
			Owner:     "data-platform-team",
			State:     "active",
			CreatedAt: "2024-07-12T09:00:00Z",
			CreatedBy: "seed",
			UpdatedAt: "2024-07-12T09:00:00Z",
			UpdatedBy: "seed",
		},
		{
			ID:        "platform-002",
			Name:      "Observability",
			Owner:     "observability-team",
			State:     "active",
			CreatedAt: "2024-07-12T09:00:00Z",
			CreatedBy: "seed",
			UpdatedAt: "2024-07-12T09:00:00Z",
			UpdatedBy: "seed",
		},
	}
}

func seedStatusChecks() []*types.StatusCheck {
	return []*types.StatusCheck{
		{
			ID:               "check-001",
			PlatformID:       "platform-001",
			Name:             "ingestion-freshness",
			CheckType:        "freshness",
			OwnerGroup:       strPtr("data-platform-team"),
			Description:      strPtr("Raw layer ingestion freshness"),
			SLAMinutes:       60,
			WarnAfterMinutes: 30,
			CritAfterMinutes: 60,
			State:            "active",
			Version:          1,
			CreatedAt:        "2024-07-12T09:00:00Z",
			CreatedBy:        "seed",
			UpdatedAt:        "2024-07-12T09:00:00Z",
			UpdatedBy:        "seed",
		},
		{
			ID:               "check-002",
			PlatformID:       "platform-001",
			Name:             "pipeline-success-rate",
			CheckType:        "quality",
			OwnerGroup:       strPtr("data-platform-team"),
			SLAMinutes:       120,
			WarnAfterMinutes: 60,
			CritAfterMinutes: 120,
			State:            "active",
			Version:          1,
			CreatedAt:        "2024-07-12T09:00:00Z",
			CreatedBy:        "seed",
			UpdatedAt:        "2024-07-12T09:00:00Z",
			UpdatedBy:        "seed",
		},
		{
			ID:               "check-003",
			PlatformID:       "platform-002",
			Name:             "alert-delivery",
			CheckType:        "heartbeat",
			OwnerGroup:       strPtr("observability-team"),
			SLAMinutes:       15,
			WarnAfterMinutes: 5,
			CritAfterMinutes: 15,
			State:            "active",
			Version:          1,
			CreatedAt:        "2024-07-12T09:00:00Z",
			CreatedBy:        "seed",
			UpdatedAt:        "2024-07-12T09:00:00Z",
			UpdatedBy:        "seed",
		},
	}
}

func seedStatusResults() []*types.StatusResult {
	return []*types.StatusResult{
		{
			ID:            "result-001",
			CheckID:       "check-001",
			PlatformID:    "platform-001",
			State:         "ok",
			MeasuredAt:    "2024-07-12T08:00:00Z",
			CreatedAt:     "2024-07-12T08:00:05Z",
			ObservedValue: strPtr("12"),
		},
		{
			ID:            "result-002",
			CheckID:       "check-001",
			PlatformID:    "platform-001",
			State:         "warn",
			MeasuredAt:    "2024-07-12T09:00:00Z",
			CreatedAt:     "2024-07-12T09:00:05Z",
			ObservedValue: strPtr("42"),
			Message:       strPtr("Freshness above warning threshold"),
		},
		{
			ID:         "result-003",
			CheckID:    "check-002",
			PlatformID: "platform-001",
			State:      "ok",
			MeasuredAt: "2024-07-12T09:00:00Z",
			CreatedAt:  "2024-07-12T09:00:06Z",
		},
		{
			ID:         "result-004",
			CheckID:    "check-003",
			PlatformID: "platform-002",
			State:      "crit",
			MeasuredAt: "2024-07-12T08:30:00Z",
			CreatedAt:  "2024-07-12T08:30:02Z",
			Message:    strPtr("Heartbeat missing"),
		},
	}
}

func seedStatusMessages() []*types.StatusMessage {
	return []*types.StatusMessage{
		{
			ID:         "message-001",
			PlatformID: strPtr("platform-001"),
			Severity:   "warning",
			Title:      "Ingestion delays",
			BodyMD:     "Raw layer ingestion is delayed while a backfill runs.",
			State:      "published",
			CreatedAt:  "2024-07-12T07:00:00Z",
			StartAt:    strPtr("2024-07-12T07:00:00Z"),
			EndAt:      strPtr("2024-07-12T12:00:00Z"),
		},
		{
			ID:        "message-002",
			Severity:  "info",
			Title:     "Planned maintenance window",
			BodyMD:    "Catalog maintenance on Saturday, short read-only periods expected.",
			State:     "published",
			CreatedAt: "2024-07-11T15:00:00Z",
		},
	}
}

func seedWorkItems() []*types.WorkItem {
	return []*types.WorkItem{
		{
			ID:         "work-001",
			PlatformID: strPtr("platform-001"),
			Title:      "Tune ingestion freshness thresholds",
			State:      "open",
			Priority:   "high",
			CreatedAt:  "2024-07-12T09:30:00Z",
			Requester:  "owner@example.com",
		},
		{
			ID:         "work-002",
			PlatformID: strPtr("platform-002"),
			Title:      "Review alert delivery runbook",
			State:      "in_progress",
			Priority:   "medium",
			CreatedAt:  "2024-07-11T10:00:00Z",
			Requester:  "triager@example.com",
		},
		{
			ID:        "work-003",
			Title:     "Quarterly catalog cleanup",
			State:     "done",
			Priority:  "low",
			CreatedAt: "2024-06-30T09:00:00Z",
			Requester: "devuser",
		},
	}
}

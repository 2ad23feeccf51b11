// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Timestamps are carried as ISO-8601 strings end to end. The warehouse hands
// them back as text and the API echoes them verbatim; parsing happens only
// where ordering or filtering needs it.

type Platform struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Owner     string `json:"owner" db:"owner"`
	State     string `json:"state" db:"state"`
	CreatedAt string `json:"created_at" db:"created_at"`
	CreatedBy string `json:"created_by" db:"created_by"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
	UpdatedBy string `json:"updated_by" db:"updated_by"`
}

type StatusCheck struct {
	ID               string  `json:"id" db:"id"`
	PlatformID       string  `json:"platform_id" db:"platform_id"`
	Name             string  `json:"name" db:"name"`
	CheckType        string  `json:"check_type" db:"check_type"`
	OwnerGroup       *string `json:"owner_group" db:"owner_group"`
	Description      *string `json:"description" db:"description"`
	SLAMinutes       int     `json:"sla_minutes" db:"sla_minutes"`
	WarnAfterMinutes int     `json:"warn_after_minutes" db:"warn_after_minutes"`
	CritAfterMinutes int     `json:"crit_after_minutes" db:"crit_after_minutes"`
	State            string  `json:"state" db:"state"`
	Version          int     `json:"version" db:"version"`
	CreatedAt        string  `json:"created_at" db:"created_at"`
	CreatedBy        string  `json:"created_by" db:"created_by"`
	UpdatedAt        string  `json:"updated_at" db:"updated_at"`
	UpdatedBy        string  `json:"updated_by" db:"updated_by"`
	IsDeleted        bool    `json:"is_deleted" db:"is_deleted"`
	DeletedAt        *string `json:"deleted_at" db:"deleted_at"`
	DeletedBy        *string `json:"deleted_by" db:"deleted_by"`
}

type StatusResult struct {
	ID             string  `json:"id" db:"id"`
	CheckID        string  `json:"check_id" db:"check_id"`
	PlatformID     string  `json:"platform_id" db:"platform_id"`
	State          string  `json:"state" db:"state"`
	MeasuredAt     string  `json:"measured_at" db:"measured_at"`
	CreatedAt      string  `json:"created_at" db:"created_at"`
	ObservedValue  *string `json:"observed_value" db:"observed_value"`
	Message        *string `json:"message" db:"message"`
	IngestionRunID *string `json:"ingestion_run_id" db:"ingestion_run_id"`
}

type StatusMessage struct {
	ID         string  `json:"id" db:"id"`
	PlatformID *string `json:"platform_id" db:"platform_id"`
	Severity   string  `json:"severity" db:"severity"`
	Title      string  `json:"title" db:"title"`
	BodyMD     string  `json:"body_md" db:"body_md"`
	State      string  `json:"state" db:"state"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
	StartAt    *string `json:"start_at" db:"start_at"`
	EndAt      *string `json:"end_at" db:"end_at"`
}

type WorkItem struct {
	ID         string  `json:"id" db:"id"`
	PlatformID *string `json:"platform_id" db:"platform_id"`
	Title      string  `json:"title" db:"title"`
	State      string  `json:"state" db:"state"`
	Priority   string  `json:"priority" db:"priority"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
	Requester  string  `json:"requester" db:"requester"`
}

// RoleBinding grants a role to a principal, optionally scoped to a single
// platform. A nil PlatformID grants globally.
type RoleBinding struct {
	ID            string  `json:"id" db:"id"`
	PrincipalType string  `json:"principal_type" db:"principal_type"`
	PrincipalID   string  `json:"principal_id" db:"principal_id"`
	Role          string  `json:"role" db:"role"`
	PlatformID    *string `json:"platform_id" db:"platform_id"`
	State         string  `json:"state" db:"state"`
	CreatedAt     string  `json:"created_at" db:"created_at"`
	CreatedBy     string  `json:"created_by" db:"created_by"`
	UpdatedAt     string  `json:"updated_at" db:"updated_at"`
	UpdatedBy     string  `json:"updated_by" db:"updated_by"`
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// WarehouseHost marks a production deployment. While it is set the dev
	// identity override is disabled.
	WarehouseHost string `envconfig:"warehouse_host"`

	DevUser  string `envconfig:"dev_user"`
	DevEmail string `envconfig:"dev_email"`

	// DSN selects the warehouse backed repository, empty runs on the
	// in-memory fixtures.
	DSN string `envconfig:"dsn"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}

// DevOverrideEnabled reports whether the dev identity fallback may be used.
func (e *EnvSpec) DevOverrideEnabled() bool {
	return e.WarehouseHost == ""
}

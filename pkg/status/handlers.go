// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package status exposes the liveness and readiness probes.
package status

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
)

// PingerInterface is the readiness probe of the backing store. A nil pinger
// means the service runs on the fixture repository and is always ready.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Ready  *bool  `json:"ready,omitempty"`
}

type API struct {
	pinger PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(pinger PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		pinger:  pinger,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v1/healthz", a.handleAlive)
	mux.Get("/api/v1/readyz", a.handleReady)
}

func (a *API) handleAlive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (a *API) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.handleReady")
	defer span.End()

	ready := true
	if a.pinger != nil {
		if err := a.pinger.Ping(ctx); err != nil {
			a.logger.Errorf("database not reachable: %v", err)
			ready = false
		}
	}

	availability := 1.0
	if !ready {
		availability = 0.0
	}
	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, availability); err != nil {
		a.logger.Errorf("failed to record dependency availability: %v", err)
	}

	statusCode := http.StatusOK
	status := "ok"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "degraded"
	}

	httptypes.WriteJSON(w, statusCode, healthResponse{Status: status, Ready: &ready})
}

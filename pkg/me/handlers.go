// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package me exposes the resolved caller identity.
package me

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
)

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v1/me", a.handleMe)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "me.API.handleMe")
	defer span.End()
	r = r.WithContext(ctx)

	i := identity.FromContext(ctx)
	if i == nil {
		httptypes.Unauthorized(w, r, "authentication required")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, i)
}

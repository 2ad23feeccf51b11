// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statusresult

import (
	"context"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/query"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v1/status-results", a.handleList)
	mux.Get("/api/v1/status-results/latest", a.handleLatest)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statusresult.API.handleList")
	defer span.End()
	r = r.WithContext(ctx)

	a.respond(w, r, a.service.ListStatusResults)
}

func (a *API) handleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statusresult.API.handleLatest")
	defer span.End()
	r = r.WithContext(ctx)

	a.respond(w, r, a.service.LatestStatusResults)
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, list func(context.Context, Filter) ([]*types.StatusResult, error)) {
	q := r.URL.Query()

	page, err := query.ParsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	timeRange, err := query.NewTimeRange(q.Get("start_at"), q.Get("end_at"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	results, err := list(r.Context(), Filter{
		PlatformID: q.Get("platform_id"),
		CheckID:    q.Get("check_id"),
		Range:      timeRange,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	items, total := query.Paginate(results, page)
	httptypes.WriteJSON(w, http.StatusOK, httptypes.ListResponse[*types.StatusResult]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidInput):
		httptypes.ValidationError(w, r, err.Error())
	case errors.Is(err, query.ErrBadRecord):
		a.logger.Errorf("malformed status result in storage: %v", err)
		httptypes.InternalError(w, r)
	default:
		a.logger.Errorf("status result request failed: %v", err)
		httptypes.InternalError(w, r)
	}
}

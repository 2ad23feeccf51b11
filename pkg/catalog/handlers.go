// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
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
	mux.Get("/api/v1/status-messages", a.handleStatusMessages)
	mux.Get("/api/v1/work-items", a.handleWorkItems)
}

func (a *API) handleStatusMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.handleStatusMessages")
	defer span.End()
	r = r.WithContext(ctx)

	page, err := query.ParsePage(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	messages, err := a.service.ListStatusMessages(ctx)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	items, total := query.Paginate(messages, page)
	httptypes.WriteJSON(w, http.StatusOK, httptypes.ListResponse[*types.StatusMessage]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (a *API) handleWorkItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "catalog.API.handleWorkItems")
	defer span.End()
	r = r.WithContext(ctx)

	page, err := query.ParsePage(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	workItems, err := a.service.ListWorkItems(ctx, r.URL.Query().Get("state"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	items, total := query.Paginate(workItems, page)
	httptypes.WriteJSON(w, http.StatusOK, httptypes.ListResponse[*types.WorkItem]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrBadRecord):
		a.logger.Errorf("malformed record in storage: %v", err)
		httptypes.InternalError(w, r)
	default:
		a.logger.Errorf("catalog request failed: %v", err)
		httptypes.InternalError(w, r)
	}
}

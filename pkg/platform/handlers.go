// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/catalog-service/internal/authorization"
	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/query"
	"github.com/canonical/catalog-service/internal/storage"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/internal/types"
)

type API struct {
	service ServiceInterface
	authz   AuthorizerInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v1/platforms", a.handleList)
	mux.Get("/api/v1/platforms/{id}", a.handleDetail)
	mux.Post("/api/v1/platforms", a.handleCreate)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleList")
	defer span.End()
	r = r.WithContext(ctx)

	page, err := query.ParsePage(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	platforms, err := a.service.ListPlatforms(ctx)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	items, total := query.Paginate(platforms, page)
	httptypes.WriteJSON(w, http.StatusOK, httptypes.ListResponse[*types.Platform]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleDetail")
	defer span.End()
	r = r.WithContext(ctx)

	platform, err := a.service.GetPlatform(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, platform)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleCreate")
	defer span.End()
	r = r.WithContext(ctx)

	i := identity.FromContext(ctx)
	if i == nil {
		httptypes.Unauthorized(w, r, "authentication required")
		return
	}

	pctx, err := a.authz.Require(ctx, i, nil, authorization.RoleAdmin)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if !pctx.Granted {
		httptypes.Forbidden(w, r, "Admin role required")
		return
	}

	payload := new(CreatePlatformRequest)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		httptypes.ValidationError(w, r, "invalid JSON payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Owner = strings.TrimSpace(payload.Owner)
	payload.State = strings.TrimSpace(payload.State)

	if err := a.validate.Struct(payload); err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	created, err := a.service.CreatePlatform(ctx, payload, i)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httptypes.NotFound(w, r, "Platform not found")
	case errors.Is(err, query.ErrInvalidInput):
		httptypes.ValidationError(w, r, err.Error())
	default:
		a.logger.Errorf("platform request failed: %v", err)
		httptypes.InternalError(w, r)
	}
}

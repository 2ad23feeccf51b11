// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package statuscheck

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
	mux.Get("/api/v1/status-checks", a.handleList)
	mux.Get("/api/v1/status-checks/{id}", a.handleDetail)
	mux.Post("/api/v1/status-checks", a.handleCreate)
	mux.Put("/api/v1/status-checks/{id}", a.handleUpdate)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statuscheck.API.handleList")
	defer span.End()
	r = r.WithContext(ctx)

	page, err := query.ParsePage(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return
	}

	checks, err := a.service.ListStatusChecks(ctx, r.URL.Query().Get("platform_id"), r.URL.Query().Get("state"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	items, total := query.Paginate(checks, page)
	httptypes.WriteJSON(w, http.StatusOK, httptypes.ListResponse[*types.StatusCheck]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statuscheck.API.handleDetail")
	defer span.End()
	r = r.WithContext(ctx)

	check, err := a.service.GetStatusCheck(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, check)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statuscheck.API.handleCreate")
	defer span.End()
	r = r.WithContext(ctx)

	i, payload, ok := a.authorizeWrite(w, r)
	if !ok {
		return
	}

	created, err := a.service.CreateStatusCheck(ctx, payload, i)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "statuscheck.API.handleUpdate")
	defer span.End()
	r = r.WithContext(ctx)

	i, payload, ok := a.authorizeWrite(w, r)
	if !ok {
		return
	}

	updated, err := a.service.UpdateStatusCheck(ctx, chi.URLParam(r, "id"), payload, i)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

// authorizeWrite resolves the identity, enforces the Admin requirement and
// decodes the payload shared by create and update. It writes the error
// response itself when the request must not proceed.
func (a *API) authorizeWrite(w http.ResponseWriter, r *http.Request) (*identity.Identity, *StatusCheckRequest, bool) {
	ctx := r.Context()

	i := identity.FromContext(ctx)
	if i == nil {
		httptypes.Unauthorized(w, r, "authentication required")
		return nil, nil, false
	}

	pctx, err := a.authz.Require(ctx, i, nil, authorization.RoleAdmin)
	if err != nil {
		a.writeError(w, r, err)
		return nil, nil, false
	}
	if !pctx.Granted {
		httptypes.Forbidden(w, r, "Admin role required")
		return nil, nil, false
	}

	payload := new(StatusCheckRequest)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		httptypes.ValidationError(w, r, "invalid JSON payload")
		return nil, nil, false
	}

	payload.PlatformID = strings.TrimSpace(payload.PlatformID)
	payload.Name = strings.TrimSpace(payload.Name)
	payload.CheckType = strings.TrimSpace(payload.CheckType)
	payload.State = strings.TrimSpace(payload.State)

	if err := a.validate.Struct(payload); err != nil {
		httptypes.ValidationError(w, r, err.Error())
		return nil, nil, false
	}

	return i, payload, true
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httptypes.NotFound(w, r, "Status check not found")
	case errors.Is(err, query.ErrInvalidInput):
		httptypes.ValidationError(w, r, err.Error())
	default:
		a.logger.Errorf("status check request failed: %v", err)
		httptypes.InternalError(w, r)
	}
}

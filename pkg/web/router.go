// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/catalog-service/internal/authorization"
	"github.com/canonical/catalog-service/internal/db"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/storage"
	"github.com/canonical/catalog-service/internal/tracing"
	"github.com/canonical/catalog-service/pkg/catalog"
	"github.com/canonical/catalog-service/pkg/me"
	"github.com/canonical/catalog-service/pkg/metrics"
	"github.com/canonical/catalog-service/pkg/platform"
	"github.com/canonical/catalog-service/pkg/status"
	"github.com/canonical/catalog-service/pkg/statuscheck"
	"github.com/canonical/catalog-service/pkg/statusresult"
)

// RouterConfig carries the collaborators the router wires together. DBClient
// is nil when the fixture repository is in use.
type RouterConfig struct {
	Storage  storage.StorageInterface
	DBClient db.DBClientInterface
	Resolver *identity.Resolver
	Authz    authorization.AuthorizerInterface
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		requestIDMiddleware,
		recoveryMiddleware(logger),
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(cfg.Resolver, tracer, monitor, logger).HTTPMiddleware,
		requestLogMiddleware(logger),
	)
	if cfg.DBClient != nil {
		middlewares = append(middlewares, db.TransactionMiddleware(cfg.DBClient, logger))
	}

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)

	var pinger status.PingerInterface
	if cfg.DBClient != nil {
		pinger = cfg.DBClient
	}
	status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(router)

	me.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	platformService := platform.NewService(cfg.Storage, tracer, monitor, logger)
	platform.NewAPI(platformService, cfg.Authz, tracer, monitor, logger).RegisterEndpoints(router)

	statusCheckService := statuscheck.NewService(cfg.Storage, tracer, monitor, logger)
	statuscheck.NewAPI(statusCheckService, cfg.Authz, tracer, monitor, logger).RegisterEndpoints(router)

	statusResultService := statusresult.NewService(cfg.Storage, tracer, monitor, logger)
	statusresult.NewAPI(statusResultService, tracer, monitor, logger).RegisterEndpoints(router)

	catalogService := catalog.NewService(cfg.Storage, tracer, monitor, logger)
	catalog.NewAPI(catalogService, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
)

type Middleware struct {
	resolver *Resolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(resolver *Resolver, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HTTPMiddleware stores the resolved identity in the request context.
// Anonymous requests pass through, authorization is enforced per handler.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if i := m.resolver.Resolve(r.Header); i != nil {
			ctx = WithIdentity(ctx, i)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

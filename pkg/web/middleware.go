// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
)

// requestIDMiddleware propagates the caller supplied request id or generates
// one, stores it in the context and echoes it on the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(httptypes.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(httptypes.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(httptypes.WithRequestID(r.Context(), requestID)))
	})
}

// recoveryMiddleware turns panics into the uniform internal error envelope.
func recoveryMiddleware(logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
					httptypes.InternalError(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogMiddleware writes one structured line per request.
func requestLogMiddleware(logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			user := ""
			if i := identity.FromContext(r.Context()); i != nil {
				user = i.User
			}

			logger.Infof(
				"request method=%s path=%s status_code=%d latency_ms=%d request_id=%s user=%s",
				r.Method,
				r.URL.Path,
				rw.statusCode,
				time.Since(start).Milliseconds(),
				httptypes.RequestIDFromContext(r.Context()),
				user,
			)
		})
	}
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", httptypes.RequestIDHeader},
		MaxAge:         300,
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity resolves the caller identity from trusted proxy headers,
// with an opt-in developer override for local environments.
package identity

import (
	"context"
	"net/http"
)

const (
	ForwardedUserHeader              = "X-Forwarded-User"
	ForwardedEmailHeader             = "X-Forwarded-Email"
	ForwardedPreferredUsernameHeader = "X-Forwarded-Preferred-Username"

	SourceForwarded = "forwarded"
	SourceDev       = "dev"
)

type Identity struct {
	User              string `json:"user"`
	Email             string `json:"email,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	Source            string `json:"source"`
}

type contextKey struct{}

func WithIdentity(ctx context.Context, i *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, i)
}

// FromContext returns the resolved identity, nil for anonymous requests.
func FromContext(ctx context.Context) *Identity {
	if i, ok := ctx.Value(contextKey{}).(*Identity); ok {
		return i
	}
	return nil
}

type Resolver struct {
	devUser            string
	devEmail           string
	devOverrideEnabled bool
}

func NewResolver(devUser, devEmail string, devOverrideEnabled bool) *Resolver {
	return &Resolver{
		devUser:            devUser,
		devEmail:           devEmail,
		devOverrideEnabled: devOverrideEnabled,
	}
}

// Resolve extracts the caller identity from forwarded headers. Forwarded
// headers always win over the dev override, and the dev override only applies
// when no warehouse deployment is configured. Returns nil when the request is
// anonymous.
func (r *Resolver) Resolve(headers http.Header) *Identity {
	forwardedUser := headers.Get(ForwardedUserHeader)
	forwardedEmail := headers.Get(ForwardedEmailHeader)
	preferredUsername := headers.Get(ForwardedPreferredUsernameHeader)

	if forwardedUser != "" || forwardedEmail != "" {
		user := forwardedUser
		if user == "" {
			user = forwardedEmail
		}

		return &Identity{
			User:              user,
			Email:             forwardedEmail,
			PreferredUsername: preferredUsername,
			Source:            SourceForwarded,
		}
	}

	if r.devOverrideEnabled && (r.devUser != "" || r.devEmail != "") {
		user := r.devUser
		if user == "" {
			user = r.devEmail
		}

		return &Identity{
			User:   user,
			Email:  r.devEmail,
			Source: SourceDev,
		}
	}

	return nil
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization implements declarative role based access control on
// top of a role binding source.
package authorization

import (
	"context"

	httptypes "github.com/canonical/catalog-service/internal/http/types"
	"github.com/canonical/catalog-service/internal/identity"
	"github.com/canonical/catalog-service/internal/logging"
	"github.com/canonical/catalog-service/internal/monitoring"
	"github.com/canonical/catalog-service/internal/tracing"
)

// PermissionContext captures the outcome of an authorization decision.
type PermissionContext struct {
	Identity      *identity.Identity
	Roles         []string
	RequiredRoles []string
	PlatformID    *string
	Granted       bool
}

type Authorizer struct {
	source BindingSourceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetRoles returns the roles the identity holds for the given platform scope.
// Global bindings (no platform id) always apply, platform scoped bindings
// only apply when the scope matches. An anonymous identity holds no roles.
func (a *Authorizer) GetRoles(ctx context.Context, i *identity.Identity, platformID *string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.GetRoles")
	defer span.End()

	if i == nil {
		return nil, nil
	}

	bindings, err := a.source.ListBindings(ctx)
	if err != nil {
		return nil, err
	}

	principals := identityPrincipals(i)

	var roles []string
	seen := make(map[string]bool)
	for _, binding := range bindings {
		if binding.State != BindingStateActive {
			continue
		}
		if binding.PrincipalType != PrincipalTypeUser {
			continue
		}
		if !principals[binding.PrincipalID] {
			continue
		}
		if platformID != nil && binding.PlatformID != nil && *binding.PlatformID != *platformID {
			continue
		}
		if !seen[binding.Role] {
			seen[binding.Role] = true
			roles = append(roles, binding.Role)
		}
	}

	return roles, nil
}

func (a *Authorizer) HasRole(ctx context.Context, i *identity.Identity, role string, platformID *string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasRole")
	defer span.End()

	roles, err := a.GetRoles(ctx, i, platformID)
	if err != nil {
		return false, err
	}

	return HasAnyRole(roles, []string{role}), nil
}

// Require evaluates an any-of role requirement and returns the full decision
// context. An empty requirement is always granted. Denials are written to the
// security log.
func (a *Authorizer) Require(ctx context.Context, i *identity.Identity, platformID *string, requiredRoles ...string) (*PermissionContext, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Require")
	defer span.End()

	required := NormalizeRoles(requiredRoles)

	roles, err := a.GetRoles(ctx, i, platformID)
	if err != nil {
		return nil, err
	}

	granted := HasAnyRole(roles, required)
	if !granted {
		user := ""
		if i != nil {
			user = i.User
		}
		a.logger.Security().AuthorizationDenied(user, httptypes.RequestIDFromContext(ctx), required)
	}

	return &PermissionContext{
		Identity:      i,
		Roles:         roles,
		RequiredRoles: required,
		PlatformID:    platformID,
		Granted:       granted,
	}, nil
}

// HasAnyRole reports whether any required role is held. An empty requirement
// is satisfied by any caller, including anonymous ones.
func HasAnyRole(roles, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}

	held := make(map[string]bool, len(roles))
	for _, role := range roles {
		held[role] = true
	}

	for _, role := range requiredRoles {
		if held[role] {
			return true
		}
	}
	return false
}

// NormalizeRoles drops empty entries and deduplicates while preserving the
// first occurrence order.
func NormalizeRoles(roles []string) []string {
	var normalized []string
	seen := make(map[string]bool, len(roles))
	for _, role := range roles {
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		normalized = append(normalized, role)
	}
	return normalized
}

func identityPrincipals(i *identity.Identity) map[string]bool {
	principals := map[string]bool{i.User: true}
	if i.Email != "" {
		principals[i.Email] = true
	}
	if i.PreferredUsername != "" {
		principals[i.PreferredUsername] = true
	}
	return principals
}

func NewAuthorizer(source BindingSourceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.source = source
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}

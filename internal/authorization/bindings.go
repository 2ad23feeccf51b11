// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/catalog-service/internal/types"
)

// StaticBindingSource serves a fixed set of role bindings.
type StaticBindingSource struct {
	bindings []types.RoleBinding
}

func (s *StaticBindingSource) ListBindings(ctx context.Context) ([]types.RoleBinding, error) {
	return s.bindings, nil
}

func NewStaticBindingSource(bindings []types.RoleBinding) *StaticBindingSource {
	return &StaticBindingSource{bindings: bindings}
}

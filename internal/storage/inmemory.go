// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"sync"

	"github.com/canonical/catalog-service/internal/types"
)

var _ StorageInterface = (*InMemoryStorage)(nil)

// InMemoryStorage is a fixture backed repository used when no warehouse DSN
// is configured. All methods return copies so callers cannot mutate the
// stored records.
type InMemoryStorage struct {
	mu sync.RWMutex

	platforms      []*types.Platform
	statusChecks   []*types.StatusCheck
	statusResults  []*types.StatusResult
	statusMessages []*types.StatusMessage
	workItems      []*types.WorkItem
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		platforms:      seedPlatforms(),
		statusChecks:   seedStatusChecks(),
		statusResults:  seedStatusResults(),
		statusMessages: seedStatusMessages(),
		workItems:      seedWorkItems(),
	}
}

// NewEmptyInMemoryStorage returns a repository without seed fixtures.
func NewEmptyInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{}
}

func (s *InMemoryStorage) ListPlatforms(ctx context.Context) ([]*types.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	platforms := make([]*types.Platform, len(s.platforms))
	for i, platform := range s.platforms {
		p := *platform
		platforms[i] = &p
	}
	return platforms, nil
}

func (s *InMemoryStorage) GetPlatform(ctx context.Context, id string) (*types.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, platform := range s.platforms {
		if platform.ID == id {
			p := *platform
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStorage) CreatePlatform(ctx context.Context, platform *types.Platform) (*types.Platform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *platform
	s.platforms = append(s.platforms, &p)

	created := p
	return &created, nil
}

func (s *InMemoryStorage) ListStatusChecks(ctx context.Context, platformID, state string) ([]*types.StatusCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var checks []*types.StatusCheck
	for _, check := range s.statusChecks {
		if platformID != "" && check.PlatformID != platformID {
			continue
		}
		if state != "" && check.State != state {
			continue
		}
		c := *check
		checks = append(checks, &c)
	}
	return checks, nil
}

func (s *InMemoryStorage) GetStatusCheck(ctx context.Context, id string) (*types.StatusCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, check := range s.statusChecks {
		if check.ID == id {
			c := *check
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStorage) CreateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *check
	s.statusChecks = append(s.statusChecks, &c)

	created := c
	return &created, nil
}

func (s *InMemoryStorage) UpdateStatusCheck(ctx context.Context, check *types.StatusCheck) (*types.StatusCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.statusChecks {
		if existing.ID == check.ID {
			c := *check
			s.statusChecks[i] = &c

			updated := c
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStorage) ListStatusResults(ctx context.Context) ([]*types.StatusResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*types.StatusResult, len(s.statusResults))
	for i, result := range s.statusResults {
		r := *result
		results[i] = &r
	}
	return results, nil
}

func (s *InMemoryStorage) ListStatusMessages(ctx context.Context) ([]*types.StatusMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]*types.StatusMessage, len(s.statusMessages))
	for i, message := range s.statusMessages {
		m := *message
		messages[i] = &m
	}
	return messages, nil
}

func (s *InMemoryStorage) ListWorkItems(ctx context.Context, state string) ([]*types.WorkItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*types.WorkItem
	for _, item := range s.workItems {
		if state != "" && item.State != state {
			continue
		}
		w := *item
		items = append(items, &w)
	}
	return items, nil
}

// AddStatusResult seeds an extra result, for tests.
func (s *InMemoryStorage) AddStatusResult(result *types.StatusResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *result
	s.statusResults = append(s.statusResults, &r)
}

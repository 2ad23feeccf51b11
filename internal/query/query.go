// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package query implements the collection query primitives shared by the API
// resources: pagination bounds, descending ordering with deterministic
// tie-breaks, time range filtering and latest-per-key reduction.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	DefaultLimit = 25
	MaxLimit     = 200
)

// ErrInvalidInput marks malformed client input, surfaced as a validation
// error.
var ErrInvalidInput = errors.New("invalid input")

// ErrBadRecord marks malformed stored data, surfaced as an internal error
// because it signals a data integrity problem rather than a client mistake.
var ErrBadRecord = errors.New("bad record")

type Page struct {
	Limit  int
	Offset int
}

func NewPage(limit, offset int) (Page, error) {
	if limit < 1 || limit > MaxLimit {
		return Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// ParsePage reads limit and offset query parameters, applying defaults for
// missing values and validating bounds.
func ParsePage(limitParam, offsetParam string) (Page, error) {
	limit := DefaultLimit
	offset := 0

	if limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return Page{}, fmt.Errorf("%w: limit must be an integer", ErrInvalidInput)
		}
		limit = parsed
	}
	if offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil {
			return Page{}, fmt.Errorf("%w: offset must be an integer", ErrInvalidInput)
		}
		offset = parsed
	}

	return NewPage(limit, offset)
}

// Paginate slices items for the page and returns the pre-pagination total.
func Paginate[T any](items []T, p Page) ([]T, int) {
	total := len(items)

	if p.Offset >= total {
		return []T{}, total
	}

	end := p.Offset + p.Limit
	if end > total {
		end = total
	}
	return items[p.Offset:end], total
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. "Z" and "+00:00" suffixes are
// equivalent, and timestamps without a zone are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", value)
}

// ParseQueryTimestamp parses a timestamp from a query parameter, mapping
// failures to client input errors.
func ParseQueryTimestamp(value, label string) (time.Time, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be ISO-8601", ErrInvalidInput, label)
	}
	return t, nil
}

// ParseRecordTimestamp parses a timestamp read back from storage, mapping
// failures to data integrity errors.
func ParseRecordTimestamp(value string) (time.Time, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid stored timestamp", ErrBadRecord)
	}
	return t, nil
}

// TimeRange is an inclusive measured-at window. Nil bounds are open.
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// NewTimeRange parses optional start and end query parameters and rejects
// inverted ranges.
func NewTimeRange(startAt, endAt string) (TimeRange, error) {
	var r TimeRange

	if startAt != "" {
		start, err := ParseQueryTimestamp(startAt, "start_at")
		if err != nil {
			return TimeRange{}, err
		}
		r.Start = &start
	}
	if endAt != "" {
		end, err := ParseQueryTimestamp(endAt, "end_at")
		if err != nil {
			return TimeRange{}, err
		}
		r.End = &end
	}

	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return TimeRange{}, fmt.Errorf("%w: start_at must be <= end_at", ErrInvalidInput)
	}
	return r, nil
}

// Contains reports whether t falls within the range, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// SortKey orders records by primary timestamp, then secondary timestamp, then
// id. The secondary timestamp is left zero for collections ordered by a
// single timestamp.
type SortKey struct {
	Primary   time.Time
	Secondary time.Time
	ID        string
}

func (k SortKey) Less(other SortKey) bool {
	if !k.Primary.Equal(other.Primary) {
		return k.Primary.Before(other.Primary)
	}
	if !k.Secondary.Equal(other.Secondary) {
		return k.Secondary.Before(other.Secondary)
	}
	return k.ID < other.ID
}

// SortDesc returns items ordered newest first according to keyFn. The input
// slice is not modified.
func SortDesc[T any](items []T, keyFn func(T) (SortKey, error)) ([]T, error) {
	type keyed struct {
		item T
		key  SortKey
	}

	keyedItems := make([]keyed, 0, len(items))
	for _, item := range items {
		key, err := keyFn(item)
		if err != nil {
			return nil, err
		}
		keyedItems = append(keyedItems, keyed{item: item, key: key})
	}

	sort.SliceStable(keyedItems, func(i, j int) bool {
		return keyedItems[j].key.Less(keyedItems[i].key)
	})

	sorted := make([]T, len(keyedItems))
	for i, k := range keyedItems {
		sorted[i] = k.item
	}
	return sorted, nil
}

// LatestPerKey keeps the single newest item per group, using the same sort
// key that orders the collection. Group order in the output is unspecified,
// callers sort afterwards.
func LatestPerKey[T any](items []T, groupFn func(T) string, keyFn func(T) (SortKey, error)) ([]T, error) {
	type entry struct {
		item T
		key  SortKey
	}

	latest := make(map[string]entry)
	for _, item := range items {
		key, err := keyFn(item)
		if err != nil {
			return nil, err
		}

		group := groupFn(item)
		existing, ok := latest[group]
		if !ok || existing.key.Less(key) {
			latest[group] = entry{item: item, key: key}
		}
	}

	result := make([]T, 0, len(latest))
	for _, e := range latest {
		result = append(result, e.item)
	}
	return result, nil
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package query

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		offset  int
		wantErr bool
	}{
		{name: "minimum limit", limit: 1, offset: 0},
		{name: "maximum limit", limit: 200, offset: 0},
		{name: "limit too small", limit: 0, offset: 0, wantErr: true},
		{name: "limit too large", limit: 201, offset: 0, wantErr: true},
		{name: "negative offset", limit: 25, offset: -1, wantErr: true},
		{name: "offset beyond collection is valid", limit: 25, offset: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPage(tt.limit, tt.offset)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("NewPage error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPage returned error: %v", err)
			}
		})
	}
}

func TestParsePageDefaults(t *testing.T) {
	p, err := ParsePage("", "")
	if err != nil {
		t.Fatalf("ParsePage returned error: %v", err)
	}
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Fatalf("ParsePage = %+v, want limit %d offset 0", p, DefaultLimit)
	}

	if _, err := ParsePage("abc", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ParsePage error = %v, want ErrInvalidInput", err)
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c"}

	page, total := Paginate(items, Page{Limit: 1, Offset: 1})
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if !reflect.DeepEqual(page, []string{"b"}) {
		t.Fatalf("page = %v, want [b]", page)
	}

	page, total = Paginate(items, Page{Limit: 25, Offset: 10})
	if total != 3 || len(page) != 0 {
		t.Fatalf("page beyond collection = %v total %d, want empty total 3", page, total)
	}
}

func TestParseTimestamp(t *testing.T) {
	zulu, err := ParseTimestamp("2024-07-12T09:00:00Z")
	if err != nil {
		t.Fatalf("ParseTimestamp returned error: %v", err)
	}
	offset, err := ParseTimestamp("2024-07-12T09:00:00+00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp returned error: %v", err)
	}
	if !zulu.Equal(offset) {
		t.Fatalf("Z suffix %v and +00:00 offset %v should be equal", zulu, offset)
	}

	naive, err := ParseTimestamp("2024-07-12T09:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp returned error: %v", err)
	}
	if !naive.Equal(zulu) {
		t.Fatalf("naive timestamp %v should be read as UTC %v", naive, zulu)
	}

	if _, err := ParseTimestamp("not-a-timestamp"); err == nil {
		t.Fatal("ParseTimestamp accepted garbage")
	}
}

func TestParseQueryAndRecordTimestampErrorKinds(t *testing.T) {
	if _, err := ParseQueryTimestamp("garbage", "start_at"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ParseQueryTimestamp error = %v, want ErrInvalidInput", err)
	}
	if _, err := ParseRecordTimestamp("garbage"); !errors.Is(err, ErrBadRecord) {
		t.Fatalf("ParseRecordTimestamp error = %v, want ErrBadRecord", err)
	}
}

func TestNewTimeRange(t *testing.T) {
	r, err := NewTimeRange("2024-07-12T09:00:00Z", "2024-07-12T10:00:00Z")
	if err != nil {
		t.Fatalf("NewTimeRange returned error: %v", err)
	}

	boundary, _ := ParseTimestamp("2024-07-12T09:00:00Z")
	if !r.Contains(boundary) {
		t.Fatal("range should include its start bound")
	}
	end, _ := ParseTimestamp("2024-07-12T10:00:00Z")
	if !r.Contains(end) {
		t.Fatal("range should include its end bound")
	}
	after, _ := ParseTimestamp("2024-07-12T10:00:01Z")
	if r.Contains(after) {
		t.Fatal("range should exclude instants after its end bound")
	}

	if _, err := NewTimeRange("2024-07-12T10:00:00Z", "2024-07-12T09:00:00Z"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted range error = %v, want ErrInvalidInput", err)
	}

	open, err := NewTimeRange("", "")
	if err != nil {
		t.Fatalf("NewTimeRange returned error: %v", err)
	}
	if !open.Contains(after) {
		t.Fatal("open range should include everything")
	}
}

type record struct {
	id         string
	measuredAt string
	createdAt  string
	checkID    string
}

func recordKey(r record) (SortKey, error) {
	measured, err := ParseRecordTimestamp(r.measuredAt)
	if err != nil {
		return SortKey{}, err
	}
	created, err := ParseRecordTimestamp(r.createdAt)
	if err != nil {
		return SortKey{}, err
	}
	return SortKey{Primary: measured, Secondary: created, ID: r.id}, nil
}

func TestSortDescTieBreaks(t *testing.T) {
	items := []record{
		{id: "a", measuredAt: "2024-07-12T09:00:00Z", createdAt: "2024-07-12T09:00:00Z"},
		{id: "b", measuredAt: "2024-07-12T09:00:00Z", createdAt: "2024-07-12T09:00:00Z"},
		{id: "c", measuredAt: "2024-07-12T09:00:00Z", createdAt: "2024-07-12T09:01:00Z"},
		{id: "d", measuredAt: "2024-07-12T10:00:00Z", createdAt: "2024-07-12T08:00:00Z"},
	}

	sorted, err := SortDesc(items, recordKey)
	if err != nil {
		t.Fatalf("SortDesc returned error: %v", err)
	}

	var ids []string
	for _, item := range sorted {
		ids = append(ids, item.id)
	}
	want := []string{"d", "c", "b", "a"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("order = %v, want %v", ids, want)
	}
}

func TestSortDescBadRecord(t *testing.T) {
	items := []record{
		{id: "a", measuredAt: "garbage", createdAt: "2024-07-12T09:00:00Z"},
	}
	if _, err := SortDesc(items, recordKey); !errors.Is(err, ErrBadRecord) {
		t.Fatalf("SortDesc error = %v, want ErrBadRecord", err)
	}
}

func TestLatestPerKey(t *testing.T) {
	items := []record{
		{id: "r1", checkID: "c1", measuredAt: "2024-07-12T09:00:00Z", createdAt: "2024-07-12T09:00:00Z"},
		{id: "r2", checkID: "c1", measuredAt: "2024-07-12T10:00:00Z", createdAt: "2024-07-12T10:00:00Z"},
		{id: "r3", checkID: "c2", measuredAt: "2024-07-12T08:00:00Z", createdAt: "2024-07-12T08:00:00Z"},
		// Same measured and created stamps as r3, higher id wins.
		{id: "r4", checkID: "c2", measuredAt: "2024-07-12T08:00:00Z", createdAt: "2024-07-12T08:00:00Z"},
	}

	latest, err := LatestPerKey(items, func(r record) string { return r.checkID }, recordKey)
	if err != nil {
		t.Fatalf("LatestPerKey returned error: %v", err)
	}

	byCheck := make(map[string]string)
	for _, item := range latest {
		byCheck[item.checkID] = item.id
	}
	if byCheck["c1"] != "r2" || byCheck["c2"] != "r4" {
		t.Fatalf("latest = %v, want c1:r2 c2:r4", byCheck)
	}

}

package canny_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPageFailed = errors.New("page failed")

type TestResource struct {
	ID string
}

// mockCursorServer serves pages keyed by the cursor that requests them ("" for the first page).
type mockCursorServer struct {
	pages   map[string]*canny.CursorPage[TestResource]
	cursors []string
	limits  []int
}

func (m *mockCursorServer) fetch(ctx context.Context, cursor *string, limit int) (*canny.CursorPage[TestResource], error) {
	key := canny.StringValue(cursor)
	m.cursors = append(m.cursors, key)
	m.limits = append(m.limits, limit)

	page, ok := m.pages[key]
	if !ok {
		return &canny.CursorPage[TestResource]{}, nil
	}

	return page, nil
}

func resources(ids ...string) []TestResource {
	out := make([]TestResource, 0, len(ids))
	for _, id := range ids {
		out = append(out, TestResource{ID: id})
	}

	return out
}

func TestFetchAllCursor_TwoPages(t *testing.T) {
	t.Parallel()

	server := &mockCursorServer{
		pages: map[string]*canny.CursorPage[TestResource]{
			"":   {Items: resources("A", "B"), HasNextPage: true, Cursor: canny.String("c1")},
			"c1": {Items: resources("C"), HasNextPage: false},
		},
	}

	var progress []int

	all, err := canny.FetchAllCursor(context.Background(), server.fetch, func(count int) {
		progress = append(progress, count)
	})
	require.NoError(t, err)

	assert.Equal(t, resources("A", "B", "C"), all)
	assert.Equal(t, []string{"", "c1"}, server.cursors)
	assert.Equal(t, []int{2, 3}, progress)
	assert.Equal(t, []int{canny.CursorPageSize, canny.CursorPageSize}, server.limits)
}

func TestFetchAllCursor_FullPagesThenShortPage(t *testing.T) {
	t.Parallel()

	server := &mockCursorServer{pages: map[string]*canny.CursorPage[TestResource]{}}

	var expected []TestResource

	for page := 0; page < 3; page++ {
		items := make([]TestResource, 0, canny.CursorPageSize)
		for i := 0; i < canny.CursorPageSize; i++ {
			items = append(items, TestResource{ID: fmt.Sprintf("%d-%d", page, i)})
		}

		key := ""
		if page > 0 {
			key = fmt.Sprintf("p%d", page)
		}

		server.pages[key] = &canny.CursorPage[TestResource]{
			Items:       items,
			HasNextPage: true,
			Cursor:      canny.String(fmt.Sprintf("p%d", page+1)),
		}
		expected = append(expected, items...)
	}

	server.pages["p3"] = &canny.CursorPage[TestResource]{Items: resources("last"), HasNextPage: false}
	expected = append(expected, TestResource{ID: "last"})

	all, err := canny.FetchAllCursor(context.Background(), server.fetch, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, all)
	assert.Len(t, server.cursors, 4)
}

func TestFetchAllCursor_EmptyPageWithHasNext(t *testing.T) {
	t.Parallel()

	server := &mockCursorServer{
		pages: map[string]*canny.CursorPage[TestResource]{
			"":   {Items: resources("A"), HasNextPage: true, Cursor: canny.String("c1")},
			"c1": {Items: nil, HasNextPage: true, Cursor: canny.String("c2")},
			"c2": {Items: resources("never"), HasNextPage: false},
		},
	}

	calls := 0

	all, err := canny.FetchAllCursor(context.Background(), server.fetch, func(int) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, resources("A"), all)
	assert.Equal(t, []string{"", "c1"}, server.cursors)
	assert.Equal(t, 1, calls)
}

func TestFetchAllCursor_MissingCursorStops(t *testing.T) {
	t.Parallel()

	server := &mockCursorServer{
		pages: map[string]*canny.CursorPage[TestResource]{
			"": {Items: resources("A", "B"), HasNextPage: true},
		},
	}

	all, err := canny.FetchAllCursor(context.Background(), server.fetch, nil)
	require.NoError(t, err)
	assert.Equal(t, resources("A", "B"), all)
	assert.Len(t, server.cursors, 1)
}

func TestFetchAllCursor_FirstPageEmpty(t *testing.T) {
	t.Parallel()

	server := &mockCursorServer{pages: map[string]*canny.CursorPage[TestResource]{}}

	all, err := canny.FetchAllCursor(context.Background(), server.fetch, nil)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestFetchAllCursor_SafetyCeiling(t *testing.T) {
	t.Parallel()

	page := &canny.CursorPage[TestResource]{
		Items:       make([]TestResource, canny.CursorPageSize),
		HasNextPage: true,
		Cursor:      canny.String("forever"),
	}

	fetches := 0
	fetch := func(ctx context.Context, cursor *string, limit int) (*canny.CursorPage[TestResource], error) {
		fetches++

		return page, nil
	}

	last := 0
	reports := 0

	all, err := canny.FetchAllCursor(context.Background(), fetch, func(count int) {
		assert.GreaterOrEqual(t, count, last)
		last = count
		reports++
	})
	require.NoError(t, err)

	assert.Greater(t, len(all), canny.MaxAccumulatedItems)
	assert.LessOrEqual(t, len(all), canny.MaxAccumulatedItems+canny.CursorPageSize)
	assert.Equal(t, len(all), last)
	assert.Equal(t, fetches, reports)
	assert.Equal(t, canny.MaxAccumulatedItems/canny.CursorPageSize+1, fetches)
}

func TestFetchAllCursor_ErrorAbortsRun(t *testing.T) {
	t.Parallel()

	fetches := 0
	fetch := func(ctx context.Context, cursor *string, limit int) (*canny.CursorPage[TestResource], error) {
		fetches++
		if fetches == 2 {
			return nil, &canny.APIError{StatusCode: 500, Body: "boom"}
		}

		return &canny.CursorPage[TestResource]{
			Items:       resources("A"),
			HasNextPage: true,
			Cursor:      canny.String("next"),
		}, nil
	}

	all, err := canny.FetchAllCursor(context.Background(), fetch, nil)
	require.Error(t, err)
	assert.Nil(t, all)
	assert.True(t, canny.IsStatus(err, 500))
	assert.Contains(t, err.Error(), "fetching page 2")
}

func TestFetchAllCursor_DecodeErrorPropagates(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, cursor *string, limit int) (*canny.CursorPage[TestResource], error) {
		return nil, &canny.DecodeError{Endpoint: "users/list", Err: errPageFailed}
	}

	_, err := canny.FetchAllCursor(context.Background(), fetch, nil)
	require.Error(t, err)
	assert.True(t, canny.IsDecodeError(err))
	assert.ErrorIs(t, err, errPageFailed)
}

func TestCursorPage_NextCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		page   canny.CursorPage[TestResource]
		want   string
		wantOK bool
	}{
		{name: "has next with cursor", page: canny.CursorPage[TestResource]{HasNextPage: true, Cursor: canny.String("x")}, want: "x", wantOK: true},
		{name: "no next flag", page: canny.CursorPage[TestResource]{HasNextPage: false, Cursor: canny.String("x")}},
		{name: "nil cursor", page: canny.CursorPage[TestResource]{HasNextPage: true}},
		{name: "empty cursor", page: canny.CursorPage[TestResource]{HasNextPage: true, Cursor: canny.String("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.page.NextCursor()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffsetPage_NextSkip(t *testing.T) {
	t.Parallel()

	page := &canny.OffsetPage[TestResource]{Items: resources("A"), HasMore: true, Skip: 20, Limit: 10}
	assert.Equal(t, 30, page.NextSkip())
}

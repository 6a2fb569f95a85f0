package canny

import (
	"context"
	"fmt"
)

const (
	// CursorPageSize is the largest page the v2 list endpoints accept.
	CursorPageSize = 100

	// MaxAccumulatedItems stops a depagination run once more than this many
	// items have been collected. The check runs after a page has been appended
	// and reported, so the result and the last progress value may exceed it by
	// up to one page.
	MaxAccumulatedItems = 100000
)

// OffsetPage is one page of a skip/limit listing.
type OffsetPage[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"hasMore"`
	Skip    int  `json:"-"`
	Limit   int  `json:"-"`
}

// NextSkip returns the offset of the following page. It advances by the
// requested limit, not by the number of items actually returned.
func (p *OffsetPage[T]) NextSkip() int {
	return p.Skip + p.Limit
}

// CursorPage is one page of a cursor listing.
type CursorPage[T any] struct {
	Items       []T     `json:"items"`
	HasNextPage bool    `json:"hasNextPage"`
	Cursor      *string `json:"cursor,omitempty"`
}

// NextCursor returns the cursor for the following page and whether there is one.
func (p *CursorPage[T]) NextCursor() (string, bool) {
	if !p.HasNextPage || p.Cursor == nil || *p.Cursor == "" {
		return "", false
	}

	return *p.Cursor, true
}

// ListShape tells which key a v2 list payload was found under.
type ListShape int

const (
	// ListShapeEmpty means neither payload key was present.
	ListShapeEmpty ListShape = iota
	// ListShapeItems means the payload was under "items".
	ListShapeItems
	// ListShapeLegacy means the payload was under the legacy resource key.
	ListShapeLegacy
)

// String returns the shape name.
func (s ListShape) String() string {
	switch s {
	case ListShapeItems:
		return "items"
	case ListShapeLegacy:
		return "legacy"
	default:
		return "empty"
	}
}

// TaggedList is the result of decoding a v2 list payload.
type TaggedList[T any] struct {
	Shape ListShape
	Items []T
}

// ProgressFunc is called after each non-empty page with the number of items collected so far.
type ProgressFunc func(count int)

// CursorFetchFunc fetches one cursor page. cursor is nil for the first page.
type CursorFetchFunc[T any] func(ctx context.Context, cursor *string, limit int) (*CursorPage[T], error)

// FetchAllCursor drains a cursor listing into one slice, in server order.
//
// The loop ends on the first empty page, when the server reports no next page
// or returns no cursor, or once MaxAccumulatedItems is exceeded. Pages are
// requested strictly one after another. Any fetch error aborts the run and no
// partial result is returned.
func FetchAllCursor[T any](ctx context.Context, fetch CursorFetchFunc[T], progress ProgressFunc) ([]T, error) {
	var cursor *string

	all := make([]T, 0)

	for page := 1; ; page++ {
		resp, err := fetch(ctx, cursor, CursorPageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		// Some servers report hasNextPage with an empty final page.
		if resp == nil || len(resp.Items) == 0 {
			break
		}

		all = append(all, resp.Items...)

		if progress != nil {
			progress(len(all))
		}

		next, ok := resp.NextCursor()
		if !ok {
			break
		}

		cursor = &next

		if len(all) > MaxAccumulatedItems {
			break
		}
	}

	return all, nil
}

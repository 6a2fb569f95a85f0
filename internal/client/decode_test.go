package client

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWrapped(t *testing.T) {
	t.Parallel()

	t.Run("record present", func(t *testing.T) {
		t.Parallel()

		post, err := decodeWrapped[canny.Post]("posts/retrieve", []byte(`{"post":{"id":"p1","title":"Dark mode"}}`), "post")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "p1", post.ID)
	})

	t.Run("null record is not found", func(t *testing.T) {
		t.Parallel()

		post, err := decodeWrapped[canny.Post]("posts/retrieve", []byte(`{"post":null}`), "post")
		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		t.Parallel()

		post, err := decodeWrapped[canny.Post]("posts/retrieve", []byte(`{}`), "post")
		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		_, err := decodeWrapped[canny.Post]("posts/retrieve", []byte(`{"post":`), "post")
		require.Error(t, err)
		assert.True(t, canny.IsDecodeError(err))
	})

	t.Run("wrong record shape", func(t *testing.T) {
		t.Parallel()

		_, err := decodeWrapped[canny.Post]("posts/retrieve", []byte(`{"post":"p1"}`), "post")
		require.Error(t, err)
		assert.True(t, canny.IsDecodeError(err))
	})
}

func TestDecodeTaggedList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantShape canny.ListShape
		wantIDs   []string
	}{
		{
			name:      "items key",
			body:      `{"items":[{"id":"a"},{"id":"b"}]}`,
			wantShape: canny.ListShapeItems,
			wantIDs:   []string{"a", "b"},
		},
		{
			name:      "legacy key",
			body:      `{"users":[{"id":"c"}]}`,
			wantShape: canny.ListShapeLegacy,
			wantIDs:   []string{"c"},
		},
		{
			name:      "items wins over legacy key",
			body:      `{"items":[{"id":"a"}],"users":[{"id":"c"}]}`,
			wantShape: canny.ListShapeItems,
			wantIDs:   []string{"a"},
		},
		{
			name:      "neither key",
			body:      `{"hasNextPage":false}`,
			wantShape: canny.ListShapeEmpty,
			wantIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fields map[string]json.RawMessage

			require.NoError(t, json.Unmarshal([]byte(tt.body), &fields))

			list, err := decodeTaggedList[canny.UserFull]("users/list", fields, "users")
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, list.Shape)

			ids := make([]string, 0, len(list.Items))
			for _, user := range list.Items {
				ids = append(ids, user.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDecodeTaggedList_BadElement(t *testing.T) {
	t.Parallel()

	fields := map[string]json.RawMessage{"items": json.RawMessage(`[{"id":1}]`)}

	_, err := decodeTaggedList[canny.UserFull]("users/list", fields, "users")
	require.Error(t, err)
	assert.True(t, canny.IsDecodeError(err))
}

func TestDecodeCursorPage(t *testing.T) {
	t.Parallel()

	page, err := decodeCursorPage[canny.Company]("companies/list", []byte(`{"companies":[{"id":"co1"}],"hasNextPage":true,"cursor":"next"}`), "companies")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	cursor, ok := page.NextCursor()
	assert.True(t, ok)
	assert.Equal(t, "next", cursor)

	page, err = decodeCursorPage[canny.Company]("companies/list", []byte(`{"items":[],"hasNextPage":false,"cursor":null}`), "companies")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Cursor)
}

func TestDecodeOffsetPage(t *testing.T) {
	t.Parallel()

	page, err := decodeOffsetPage[canny.Vote]("votes/list", []byte(`{"hasMore":true,"votes":[{"id":"v1"}]}`), "votes", 20, 10)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 30, page.NextSkip())

	page, err = decodeOffsetPage[canny.Vote]("votes/list", []byte(`{"hasMore":false}`), "votes", 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	_, err = decodeOffsetPage[canny.Vote]("votes/list", []byte(`[]`), "votes", 0, 10)
	assert.True(t, canny.IsDecodeError(err))
}

func TestDecodeHasMorePage(t *testing.T) {
	t.Parallel()

	page, err := decodeHasMorePage[canny.Group]("groups/list", []byte(`{"hasMore":true,"cursor":"g2","groups":[{"id":"g1"}]}`), "groups")
	require.NoError(t, err)
	assert.True(t, page.HasNextPage)

	cursor, ok := page.NextCursor()
	assert.True(t, ok)
	assert.Equal(t, "g2", cursor)
}

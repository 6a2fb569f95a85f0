package client

import (
	"bytes"
	"encoding/json"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

var jsonNull = []byte("null")

func decodeInto(endpoint string, data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return &canny.DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// decodeWrapped reads the record stored under key. An absent or null key
// means the record does not exist and yields nil without error.
func decodeWrapped[T any](endpoint string, data []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage

	err := decodeInto(endpoint, data, &envelope)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[key]
	if !ok || isNull(raw) {
		return nil, nil
	}

	var record T

	err = decodeInto(endpoint, raw, &record)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// decodeCreated reads the id returned by create style endpoints.
func decodeCreated(endpoint string, data []byte) (string, error) {
	var created canny.CreateResponse

	err := decodeInto(endpoint, data, &created)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

// decodeTaggedList finds the payload array of a v2 listing under "items",
// else under legacyKey, else treats it as empty.
func decodeTaggedList[T any](endpoint string, fields map[string]json.RawMessage, legacyKey string) (canny.TaggedList[T], error) {
	list := canny.TaggedList[T]{Shape: canny.ListShapeEmpty, Items: []T{}}

	raw, ok := fields["items"]
	if ok {
		list.Shape = canny.ListShapeItems
	} else if raw, ok = fields[legacyKey]; ok {
		list.Shape = canny.ListShapeLegacy
	}

	if !ok || isNull(raw) {
		return list, nil
	}

	err := decodeInto(endpoint, raw, &list.Items)
	if err != nil {
		return canny.TaggedList[T]{}, err
	}

	return list, nil
}

// decodeCursorPage decodes a v2 cursor listing whose payload key may vary.
func decodeCursorPage[T any](endpoint string, data []byte, legacyKey string) (*canny.CursorPage[T], error) {
	var fields map[string]json.RawMessage

	err := decodeInto(endpoint, data, &fields)
	if err != nil {
		return nil, err
	}

	list, err := decodeTaggedList[T](endpoint, fields, legacyKey)
	if err != nil {
		return nil, err
	}

	page := &canny.CursorPage[T]{Items: list.Items}

	if raw, ok := fields["hasNextPage"]; ok && !isNull(raw) {
		err = decodeInto(endpoint, raw, &page.HasNextPage)
		if err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["cursor"]; ok && !isNull(raw) {
		var cursor string

		err = decodeInto(endpoint, raw, &cursor)
		if err != nil {
			return nil, err
		}

		page.Cursor = &cursor
	}

	return page, nil
}

// decodeOffsetPage decodes a v1 listing of the form {"hasMore": bool, key: [...]}.
func decodeOffsetPage[T any](endpoint string, data []byte, key string, skip, limit int) (*canny.OffsetPage[T], error) {
	var envelope map[string]json.RawMessage

	err := decodeInto(endpoint, data, &envelope)
	if err != nil {
		return nil, err
	}

	page := &canny.OffsetPage[T]{Items: []T{}, Skip: skip, Limit: limit}

	if raw, ok := envelope["hasMore"]; ok && !isNull(raw) {
		err = decodeInto(endpoint, raw, &page.HasMore)
		if err != nil {
			return nil, err
		}
	}

	if raw, ok := envelope[key]; ok && !isNull(raw) {
		err = decodeInto(endpoint, raw, &page.Items)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

// decodeHasMorePage decodes a v1 cursor listing of the form
// {"hasMore": bool, "cursor": string, key: [...]}.
func decodeHasMorePage[T any](endpoint string, data []byte, key string) (*canny.CursorPage[T], error) {
	offset, err := decodeOffsetPage[T](endpoint, data, key, 0, 0)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Cursor *string `json:"cursor"`
	}

	err = decodeInto(endpoint, data, &envelope)
	if err != nil {
		return nil, err
	}

	return &canny.CursorPage[T]{Items: offset.Items, HasNextPage: offset.HasMore, Cursor: envelope.Cursor}, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

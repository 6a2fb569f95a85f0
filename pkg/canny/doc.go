// Package canny holds the public types of the Canny API client: resource
// models, request parameters, the error taxonomy, the depagination engine and
// the client interfaces implemented by internal/client.
//
// Every API call is a JSON POST to {base}/{resource}/{action} carrying the API
// key in the body. List endpoints come in two flavours:
//
//   - offset listings return {"hasMore": bool, "<plural>": [...]} and are
//     modelled by OffsetPage;
//   - cursor listings return {"hasNextPage"|"hasMore": bool, "cursor": ...} and
//     are modelled by CursorPage.
//
// FetchAllCursor drains a cursor listing, bounded by MaxAccumulatedItems:
//
//	users, err := canny.FetchAllCursor(ctx, client.Users().ListPage, func(n int) {
//		fmt.Fprintf(os.Stderr, "\rFetching users... %d", n)
//	})
//
// Errors are typed: *TransportError, *APIError, *DecodeError and
// *ValidationError. Retrieve style methods return a nil record, not an error,
// when the resource does not exist.
package canny

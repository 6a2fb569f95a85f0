// Package cannyclient is the entry point for constructing a Canny API client
// that implements the canny.Client interface.
//
// It layers URL normalization, HTTP transport, retries and the optional read
// cache on top of the resource interfaces and types defined in the canny
// package. Build a client here, then use the returned canny.Client to reach
// the resource clients, for example Posts(), Users() or Boards().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/canny-cli/pkg/canny"
//	  "github.com/fivetwenty-io/canny-cli/pkg/cannyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The default API URL:
//	  cli, err := cannyclient.NewWithAPIKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a company subdomain:
//	  cli, err = cannyclient.NewForSubdomain("acme", "your-api-key")
//
//	  // Or full control over transport and caching:
//	  cli, err = cannyclient.New(&canny.Config{
//	    APIURL:   "https://acme.canny.io/api/v1",
//	    APIKey:   "your-api-key",
//	    RetryMax: 3,
//	    Cache:    canny.NewMemoryCache(500),
//	  })
//
//	  boards, err := cli.Boards().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = boards
//	}
//
// Errors
//
// A non-2xx response is reported as *canny.APIError, a failed connection as
// *canny.TransportError and a malformed 2xx body as *canny.DecodeError. Bad
// input caught before a request is sent is a *canny.ValidationError.
//
// Records that do not exist are returned as nil with a nil error.
package cannyclient

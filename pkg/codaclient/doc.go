// Package codaclient provides the primary entry point for constructing a
// Coda API client that implements the coda.Client interface.
//
// It layers configuration, HTTP transport, and bearer authentication on
// top of the resource interfaces and types defined in the coda package.
// Most applications should import codaclient to build a client, then use
// the returned coda.Client to access resource-specific clients, for
// example Docs(), Tables(), Rows(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/licht1stein/codaio/pkg/coda"
//	  "github.com/licht1stein/codaio/pkg/codaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API token.
//	  cli, err := codaclient.NewWithToken(ctx, "<token>")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = codaclient.New(ctx, &coda.Config{
//	    APIKey:   "<token>",
//	    Endpoint: "https://coda.io/apis/v1beta1",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from the environment (CODA_API_KEY, CODA_API_ENDPOINT):
//	  cli, err = codaclient.NewFromEnvironment(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the coda.Client interface
//	  docs, err := cli.Docs().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = docs
//	}
//
// # Endpoint normalization
//
// An empty Endpoint means the public API root. Otherwise the value is
// normalized: a trailing slash is trimmed and "https://" is prepended
// when no scheme is present, so "coda.example.com/apis/v1beta1" and
// "https://coda.example.com/apis/v1beta1/" configure the same client.
package codaclient

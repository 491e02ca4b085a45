// Package coda provides types, interfaces, and helpers for working with
// the Coda REST API.
//
// # Overview
//
// The coda package defines the domain types (e.g., Doc, Table, Column,
// Row) and the interfaces for resource-oriented clients (e.g., DocsClient,
// RowsClient). A concrete implementation of these clients is provided by
// the codaclient package, which wires configuration, transport, and
// authentication. Most consumers should import codaclient to construct a
// client and then interact with the resource client interfaces exposed
// here, or use the document package for a lazy object model over docs,
// tables, rows, and cells.
//
// # Getting a client
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
//	  cli, err := codaclient.New(ctx, &coda.Config{APIKey: "<token>"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List every doc the token can see
//	  docs, err := cli.Docs().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = docs
//	}
//
// # Queries and pagination
//
// List methods take a params struct (ListParams, DocListParams,
// RowListParams) expressing limit, continuation token, and per-resource
// filters. A List call without a Limit transparently follows the server's
// continuation cursor and returns the complete item set; ListPage fetches
// a single page. The package also provides generic helpers for walking
// pages lazily:
//
//	lister := coda.PageListerFunc[coda.Doc](func(ctx context.Context, req coda.PageRequest) (*coda.Page[coda.Doc], error) {
//	  params := coda.NewDocListParams()
//	  params.WithLimit(req.Limit)
//	  params.WithPageToken(req.PageToken)
//	  return cli.Docs().ListPage(ctx, params)
//	})
//	it := coda.NewPaginationIterator(ctx, lister, nil)
//	for it.HasNext() {
//	  doc, err := it.Next()
//	  if err != nil { break }
//	  _ = doc
//	}
//
// # Errors
//
// Server rejections are represented by APIError, which carries the HTTP
// status and the server's message verbatim. Failures to complete a
// request at all wrap ErrTransport. Helpers such as IsNotFound,
// IsUnauthorized, IsTooManyRequests, and IsTransport make it easy to
// branch on common cases; IsAmbiguous recognizes name lookups that
// matched more than one object.
//
// # Writes are asynchronous
//
// The API accepts row mutations with 202 Accepted and applies them in the
// background. Upsert, Update, and Delete therefore return acknowledgment
// results, and a read issued right after a write may still observe the
// previous state until the mutation lands.
package coda

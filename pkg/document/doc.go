// Package document provides a lazy object model over the Coda API: a
// Document owning Tables, which own Columns, Rows, and Cells.
//
// Every wrapper in this package is a view over remote state, not an
// authoritative copy. Attributes are fetched on first access and memoized
// on the instance; subsequent accesses reuse the cached representation
// until an explicit Refresh. Staleness is the caller's to manage: the API
// applies writes asynchronously, so a value written through SetValue or
// Upsert is only representative until the row is refreshed.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/licht1stein/codaio/pkg/document"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  doc, err := document.FromEnvironment(ctx, "AbCDeFGH")
//	  if err != nil { log.Fatal(err) }
//
//	  table, err := doc.Table(ctx, "Tasks")
//	  if err != nil { log.Fatal(err) }
//
//	  row, err := table.FindRowByColumn(ctx, "Name", "Buy milk")
//	  if err != nil { log.Fatal(err) }
//
//	  cell, err := row.Cell(ctx, "Done")
//	  if err != nil { log.Fatal(err) }
//
//	  // Write-through: the API acknowledges the write and applies it in
//	  // the background. Refresh the row to observe the confirmed state.
//	  if err := cell.SetValue(ctx, true); err != nil { log.Fatal(err) }
//	  if err := row.Refresh(ctx); err != nil { log.Fatal(err) }
//	}
//
// # Resolving by id or name
//
// Methods accepting an id-or-name argument first check the input against
// the resource's structural id prefix (tables "grid-", columns "c-", and
// so on) and fetch directly on a match. Anything else is treated as a
// display name: the listing is scanned in server order, a single match
// resolves, no match fails with coda.ErrNotFound, and multiple matches
// fail with coda.AmbiguousReferenceError because names are not unique.
// The find-by-value helpers FindRowByColumn and FindRowsByColumn are the
// documented exception: the singular form returns the first match in
// listing order and never errors on multiplicity.
package document

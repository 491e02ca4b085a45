package document

import (
	"context"
	"fmt"

	"github.com/licht1stein/codaio/pkg/coda"
)

// Table is a lazy view over one table of a doc. Columns are memoized on
// first access; rows are always a fresh snapshot.
type Table struct {
	client coda.Client
	docID  string
	meta   *coda.Table

	// columns is nil until the first column fetch.
	columns []coda.Column
}

func newTable(client coda.Client, docID string, meta *coda.Table) *Table {
	return &Table{client: client, docID: docID, meta: meta}
}

// ID returns the table id.
func (t *Table) ID() string {
	return t.meta.ID
}

// Name returns the table name as of the last metadata fetch.
func (t *Table) Name() string {
	return t.meta.Name
}

// Meta returns the table metadata as of the last fetch.
func (t *Table) Meta() *coda.Table {
	return t.meta
}

// Refresh reloads the table metadata and drops the memoized columns.
func (t *Table) Refresh(ctx context.Context) error {
	meta, err := t.client.Tables().Get(ctx, t.docID, t.meta.ID)
	if err != nil {
		return fmt.Errorf("refreshing table %s: %w", t.meta.ID, err)
	}

	t.meta = meta
	t.columns = nil

	return nil
}

// Columns returns the table's columns in listing order. The result is
// fetched once and memoized; Refresh drops it.
func (t *Table) Columns(ctx context.Context) ([]coda.Column, error) {
	if t.columns != nil {
		return t.columns, nil
	}

	page, err := t.client.Columns().List(ctx, t.docID, t.meta.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("listing columns of table %s: %w", t.meta.ID, err)
	}

	t.columns = page.Items

	return t.columns, nil
}

// Column resolves one column by id or name. An input with the column id
// shape is matched by id; anything else is matched against column names
// in listing order. No match fails with coda.ErrNotFound; more than one
// match fails with coda.AmbiguousReferenceError.
func (t *Table) Column(ctx context.Context, idOrName string) (*coda.Column, error) {
	columns, err := t.Columns(ctx)
	if err != nil {
		return nil, err
	}

	if coda.IsColumnID(idOrName) {
		for i := range columns {
			if columns[i].ID == idOrName {
				return &columns[i], nil
			}
		}

		return nil, fmt.Errorf("column %s in table %s: %w", idOrName, t.meta.ID, coda.ErrNotFound)
	}

	return uniqueByName("column", idOrName, columns,
		func(c *coda.Column) string { return c.Name },
		func(c *coda.Column) string { return c.ID })
}

// Rows returns a fresh, fully paginated snapshot of the table's rows.
// Nothing is memoized: every call reflects the remote state at call time,
// and mutating rows afterwards does not change an already returned slice.
func (t *Table) Rows(ctx context.Context, params *coda.RowListParams) ([]*Row, error) {
	page, err := t.client.Rows().List(ctx, t.docID, t.meta.ID, params)
	if err != nil {
		return nil, fmt.Errorf("listing rows of table %s: %w", t.meta.ID, err)
	}

	rows := make([]*Row, 0, len(page.Items))
	for i := range page.Items {
		rows = append(rows, newRow(t, &page.Items[i]))
	}

	return rows, nil
}

// RowIterator starts an iteration over the table's rows. The backing
// listing is fetched once, fully paginated, when the iterator is created;
// see RowIterator for the snapshot semantics.
func (t *Table) RowIterator(ctx context.Context, params *coda.RowListParams) (*RowIterator, error) {
	rows, err := t.Rows(ctx, params)
	if err != nil {
		return nil, err
	}

	return &RowIterator{rows: rows}, nil
}

// Row fetches one row by id.
func (t *Table) Row(ctx context.Context, rowID string) (*Row, error) {
	row, err := t.client.Rows().Get(ctx, t.docID, t.meta.ID, rowID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting row %s of table %s: %w", rowID, t.meta.ID, err)
	}

	return newRow(t, row), nil
}

// FindRowsByColumn returns every row whose column holds value, in listing
// order. The column may be given by id or name; the filter is evaluated
// server-side.
func (t *Table) FindRowsByColumn(ctx context.Context, column string, value interface{}) ([]*Row, error) {
	params := coda.NewRowListParams().WithColumnFilter(column, value)

	rows, err := t.Rows(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("finding rows by %s: %w", column, err)
	}

	return rows, nil
}

// FindRowByColumn returns the first row, in listing order, whose column
// holds value. Unlike the name resolvers this deliberately never fails on
// multiple matches; it fails with coda.ErrNotFound when nothing matches.
func (t *Table) FindRowByColumn(ctx context.Context, column string, value interface{}) (*Row, error) {
	rows, err := t.FindRowsByColumn(ctx, column, value)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("row with %s = %v in table %s: %w", column, value, t.meta.ID, coda.ErrNotFound)
	}

	return rows[0], nil
}

// Upsert submits one batched write inserting rows, or updating rows in
// place when keyColumns designate a match key. The API accepts the write
// and applies it asynchronously: the returned result is an
// acknowledgment, not the post-write row state.
func (t *Table) Upsert(ctx context.Context, rows []coda.RowEdit, keyColumns ...string) (*coda.RowUpsertResult, error) {
	request := &coda.RowUpsertRequest{Rows: rows, KeyColumns: keyColumns}

	result, err := t.client.Rows().Upsert(ctx, t.docID, t.meta.ID, request)
	if err != nil {
		return nil, fmt.Errorf("upserting %d rows into table %s: %w", len(rows), t.meta.ID, err)
	}

	return result, nil
}

// UpdateRow replaces the given cells of one row. Asynchronous, like
// Upsert.
func (t *Table) UpdateRow(ctx context.Context, rowID string, edit coda.RowEdit) (*coda.RowUpdateResult, error) {
	result, err := t.client.Rows().Update(ctx, t.docID, t.meta.ID, rowID, edit)
	if err != nil {
		return nil, fmt.Errorf("updating row %s of table %s: %w", rowID, t.meta.ID, err)
	}

	return result, nil
}

// DeleteRow deletes one row. Asynchronous, like Upsert.
func (t *Table) DeleteRow(ctx context.Context, rowID string) (*coda.RowDeleteResult, error) {
	result, err := t.client.Rows().Delete(ctx, t.docID, t.meta.ID, rowID)
	if err != nil {
		return nil, fmt.Errorf("deleting row %s of table %s: %w", rowID, t.meta.ID, err)
	}

	return result, nil
}

// DeleteRows deletes several rows by id in one request. Asynchronous,
// like Upsert.
func (t *Table) DeleteRows(ctx context.Context, rowIDs []string) (*coda.RowsDeleteResult, error) {
	result, err := t.client.Rows().DeleteMany(ctx, t.docID, t.meta.ID, rowIDs)
	if err != nil {
		return nil, fmt.Errorf("deleting %d rows of table %s: %w", len(rowIDs), t.meta.ID, err)
	}

	return result, nil
}

package document

import (
	"context"
	"fmt"

	"github.com/licht1stein/codaio/pkg/coda"
)

// Row is a view over one table row. Its values are the ones carried by
// the fetch that produced it and are not implicitly kept in sync with the
// remote state; Refresh refetches them.
type Row struct {
	table *Table
	data  *coda.Row
}

func newRow(table *Table, data *coda.Row) *Row {
	return &Row{table: table, data: data}
}

// ID returns the row id.
func (r *Row) ID() string {
	return r.data.ID
}

// Index returns the row's position in its table as of the last fetch.
func (r *Row) Index() int {
	return r.data.Index
}

// Name returns the row's display name as of the last fetch.
func (r *Row) Name() string {
	return r.data.Name
}

// Data returns the raw row as of the last fetch.
func (r *Row) Data() *coda.Row {
	return r.data
}

// Refresh refetches the row. This is the only way to observe a write
// after the API has acknowledged it, since writes apply asynchronously.
func (r *Row) Refresh(ctx context.Context) error {
	data, err := r.table.client.Rows().Get(ctx, r.table.docID, r.table.meta.ID, r.data.ID, nil)
	if err != nil {
		return fmt.Errorf("refreshing row %s: %w", r.data.ID, err)
	}

	r.data = data

	return nil
}

// Value returns the raw value stored under a column id, as of the last
// fetch. The second result reports whether the column was present.
func (r *Row) Value(columnID string) (interface{}, bool) {
	value, ok := r.data.Values[columnID]

	return value, ok
}

// Cells returns one Cell per table column, in column listing order.
// Columns absent from the row's value map yield cells with a nil value.
func (r *Row) Cells(ctx context.Context) ([]*Cell, error) {
	columns, err := r.table.Columns(ctx)
	if err != nil {
		return nil, err
	}

	cells := make([]*Cell, 0, len(columns))
	for i := range columns {
		cells = append(cells, &Cell{
			row:    r,
			column: &columns[i],
			value:  r.data.Values[columns[i].ID],
		})
	}

	return cells, nil
}

// Cell resolves one cell by column id or name, with the column resolver's
// uniqueness contract.
func (r *Row) Cell(ctx context.Context, columnIDOrName string) (*Cell, error) {
	column, err := r.table.Column(ctx, columnIDOrName)
	if err != nil {
		return nil, err
	}

	return &Cell{row: r, column: column, value: r.data.Values[column.ID]}, nil
}

// Update replaces the given cells of this row. Asynchronous: the result
// acknowledges acceptance, and Refresh observes the applied state.
func (r *Row) Update(ctx context.Context, edit coda.RowEdit) (*coda.RowUpdateResult, error) {
	return r.table.UpdateRow(ctx, r.data.ID, edit)
}

// Delete deletes this row. Asynchronous, like Update.
func (r *Row) Delete(ctx context.Context) (*coda.RowDeleteResult, error) {
	return r.table.DeleteRow(ctx, r.data.ID)
}

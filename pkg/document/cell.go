package document

import (
	"context"
	"fmt"

	"github.com/licht1stein/codaio/pkg/coda"
)

// Cell is the intersection of one Row and one Column.
type Cell struct {
	row    *Row
	column *coda.Column
	value  interface{}
}

// Column returns the cell's column.
func (c *Cell) Column() *coda.Column {
	return c.column
}

// Row returns the cell's row.
func (c *Cell) Row() *Row {
	return c.row
}

// Value returns the cell value as of the last row fetch, or as last
// written through SetValue.
func (c *Cell) Value() interface{} {
	return c.value
}

// SetValue writes value to the cell. This is a remote write, not an
// in-memory assignment: the API acknowledges it and applies it in the
// background, so the locally recorded value is representative only until
// the row is refreshed. Calculated columns are formula-derived and reject
// writes before any request is made.
func (c *Cell) SetValue(ctx context.Context, value interface{}) error {
	if c.column.Calculated {
		return fmt.Errorf("setting %s: %w", c.column.ID, coda.ErrReadOnlyColumn)
	}

	edit := coda.RowEdit{Cells: []coda.CellEdit{{Column: c.column.ID, Value: value}}}

	if _, err := c.row.Update(ctx, edit); err != nil {
		return fmt.Errorf("setting %s on row %s: %w", c.column.ID, c.row.ID(), err)
	}

	c.value = value

	if c.row.data.Values == nil {
		c.row.data.Values = make(map[string]interface{})
	}

	c.row.data.Values[c.column.ID] = value

	return nil
}

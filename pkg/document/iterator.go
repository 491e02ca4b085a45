package document

// RowIterator walks a snapshot of a table's rows. The backing listing is
// fetched once, fully paginated, when the iterator is created: rows
// upserted or deleted afterwards do not affect an in-progress iteration.
// Reset rewinds over the same snapshot; observing newer remote state
// takes a new iterator. It is not safe for concurrent use.
type RowIterator struct {
	rows []*Row
	pos  int
}

// HasNext reports whether another row is available.
func (it *RowIterator) HasNext() bool {
	return it.pos < len(it.rows)
}

// Next returns the next row and advances, or nil once the snapshot is
// exhausted.
func (it *RowIterator) Next() *Row {
	if !it.HasNext() {
		return nil
	}

	row := it.rows[it.pos]
	it.pos++

	return row
}

// Reset rewinds the iteration to the start of the snapshot.
func (it *RowIterator) Reset() {
	it.pos = 0
}

// Len returns the snapshot size.
func (it *RowIterator) Len() int {
	return len(it.rows)
}

// ForEach calls fn for each remaining row, stopping at the first error.
func (it *RowIterator) ForEach(fn func(*Row) error) error {
	for it.HasNext() {
		if err := fn(it.Next()); err != nil {
			return err
		}
	}

	return nil
}

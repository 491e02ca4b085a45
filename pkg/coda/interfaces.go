package coda

import "context"

// DocsClient provides access to docs.
type DocsClient interface {
	// List returns docs matching params. Without a Limit it pages through
	// the full listing and returns the complete set; with a Limit it
	// returns at most that many items.
	List(ctx context.Context, params *DocListParams) (*Page[Doc], error)
	// ListPage returns a single page of docs.
	ListPage(ctx context.Context, params *DocListParams) (*Page[Doc], error)
	// Get returns one doc by id.
	Get(ctx context.Context, docID string) (*Doc, error)
	// Create creates a doc, optionally copying a source doc.
	Create(ctx context.Context, request *DocCreateRequest) (*Doc, error)
	// Delete deletes a doc by id.
	Delete(ctx context.Context, docID string) error
}

// SectionsClient provides access to the sections of a doc.
type SectionsClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[Section], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[Section], error)
	// Get returns one section by id or name.
	Get(ctx context.Context, docID, sectionIDOrName string) (*Section, error)
}

// FoldersClient provides access to the folders of a doc.
type FoldersClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[Folder], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[Folder], error)
	// Get returns one folder by id or name.
	Get(ctx context.Context, docID, folderIDOrName string) (*Folder, error)
}

// TablesClient provides access to the tables of a doc.
type TablesClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[Table], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[Table], error)
	// Get returns one table by id or name. Name resolution happens
	// server-side and picks the first match; pass an id for an exact
	// target.
	Get(ctx context.Context, docID, tableIDOrName string) (*Table, error)
}

// ViewsClient provides access to the views of a doc.
type ViewsClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[View], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[View], error)
	// Get returns one view by id or name.
	Get(ctx context.Context, docID, viewIDOrName string) (*View, error)
}

// ColumnsClient provides access to the columns of a table.
type ColumnsClient interface {
	List(ctx context.Context, docID, tableIDOrName string, params *ListParams) (*Page[Column], error)
	ListPage(ctx context.Context, docID, tableIDOrName string, params *ListParams) (*Page[Column], error)
	// Get returns one column by id or name.
	Get(ctx context.Context, docID, tableIDOrName, columnIDOrName string) (*Column, error)
}

// RowsClient provides access to the rows of a table. All writes are
// processed asynchronously by the API: the returned results acknowledge
// acceptance, not completion, and a subsequent read may still observe the
// previous state.
type RowsClient interface {
	List(ctx context.Context, docID, tableIDOrName string, params *RowListParams) (*Page[Row], error)
	ListPage(ctx context.Context, docID, tableIDOrName string, params *RowListParams) (*Page[Row], error)
	// Get returns one row by id or name.
	Get(ctx context.Context, docID, tableIDOrName, rowIDOrName string, params *RowGetParams) (*Row, error)
	// Upsert inserts rows, or updates matching rows when the request
	// names key columns.
	Upsert(ctx context.Context, docID, tableIDOrName string, request *RowUpsertRequest) (*RowUpsertResult, error)
	// Update replaces the given cells of one row.
	Update(ctx context.Context, docID, tableIDOrName, rowIDOrName string, edit RowEdit) (*RowUpdateResult, error)
	// Delete deletes one row.
	Delete(ctx context.Context, docID, tableIDOrName, rowIDOrName string) (*RowDeleteResult, error)
	// DeleteMany deletes several rows by id in one request.
	DeleteMany(ctx context.Context, docID, tableIDOrName string, rowIDs []string) (*RowsDeleteResult, error)
}

// FormulasClient provides access to the named formulas of a doc.
type FormulasClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[Formula], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[Formula], error)
	// Get returns one formula by id or name.
	Get(ctx context.Context, docID, formulaIDOrName string) (*Formula, error)
}

// ControlsClient provides access to the controls of a doc.
type ControlsClient interface {
	List(ctx context.Context, docID string, params *ListParams) (*Page[Control], error)
	ListPage(ctx context.Context, docID string, params *ListParams) (*Page[Control], error)
	// Get returns one control by id or name.
	Get(ctx context.Context, docID, controlIDOrName string) (*Control, error)
}

package coda

import "time"

// Doc represents a Coda doc.
type Doc struct {
	ID          string     `json:"id"                  yaml:"id"`
	Type        string     `json:"type"                yaml:"type"`
	Href        string     `json:"href"                yaml:"href"`
	BrowserLink string     `json:"browserLink"         yaml:"browserLink"`
	Name        string     `json:"name"                yaml:"name"`
	Owner       string     `json:"owner"               yaml:"owner"`
	OwnerName   string     `json:"ownerName,omitempty" yaml:"ownerName,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"           yaml:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"           yaml:"updatedAt"`
	SourceDoc   *Reference `json:"sourceDoc,omitempty" yaml:"sourceDoc,omitempty"`
}

// DocCreateRequest represents a request to create a doc.
type DocCreateRequest struct {
	// Title names the new doc; defaults server-side when empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// SourceDoc optionally copies an existing doc by id.
	SourceDoc string `json:"sourceDoc,omitempty" yaml:"sourceDoc,omitempty"`
	// Timezone sets the doc timezone, e.g. "America/Los_Angeles".
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Section represents a section of a doc's canvas.
type Section struct {
	ID          string `json:"id"          yaml:"id"`
	Type        string `json:"type"        yaml:"type"`
	Href        string `json:"href"        yaml:"href"`
	Name        string `json:"name"        yaml:"name"`
	BrowserLink string `json:"browserLink" yaml:"browserLink"`
}

// Folder represents a folder of sections within a doc.
type Folder struct {
	ID          string    `json:"id"                 yaml:"id"`
	Type        string    `json:"type"               yaml:"type"`
	Href        string    `json:"href"               yaml:"href"`
	Name        string    `json:"name"               yaml:"name"`
	BrowserLink string    `json:"browserLink"        yaml:"browserLink"`
	Children    []Section `json:"children,omitempty" yaml:"children,omitempty"`
}

// Table represents a table within a doc.
type Table struct {
	ID            string     `json:"id"                      yaml:"id"`
	Type          string     `json:"type"                    yaml:"type"`
	Href          string     `json:"href"                    yaml:"href"`
	Name          string     `json:"name"                    yaml:"name"`
	BrowserLink   string     `json:"browserLink,omitempty"   yaml:"browserLink,omitempty"`
	DisplayColumn *Reference `json:"displayColumn,omitempty" yaml:"displayColumn,omitempty"`
	RowCount      int        `json:"rowCount,omitempty"      yaml:"rowCount,omitempty"`
	Layout        string     `json:"layout,omitempty"        yaml:"layout,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"     yaml:"updatedAt,omitempty"`
}

// View represents a view over a table.
type View struct {
	ID          string     `json:"id"              yaml:"id"`
	Type        string     `json:"type"            yaml:"type"`
	Href        string     `json:"href"            yaml:"href"`
	Name        string     `json:"name"            yaml:"name"`
	BrowserLink string     `json:"browserLink"     yaml:"browserLink"`
	Table       *Reference `json:"table,omitempty" yaml:"table,omitempty"`
}

// ColumnFormat describes how a column renders and stores values.
type ColumnFormat struct {
	Type      string `json:"type"                yaml:"type"`
	IsArray   bool   `json:"isArray,omitempty"   yaml:"isArray,omitempty"`
	Precision int    `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// Column represents a column of a table. Calculated columns derive their
// values from a formula and reject writes.
type Column struct {
	ID         string        `json:"id"                   yaml:"id"`
	Type       string        `json:"type"                 yaml:"type"`
	Href       string        `json:"href"                 yaml:"href"`
	Name       string        `json:"name"                 yaml:"name"`
	Display    bool          `json:"display,omitempty"    yaml:"display,omitempty"`
	Calculated bool          `json:"calculated,omitempty" yaml:"calculated,omitempty"`
	Format     *ColumnFormat `json:"format,omitempty"     yaml:"format,omitempty"`
}

// Row represents a row of a table. Values maps column ids (or display
// names, when the listing asked for them) to cell values.
type Row struct {
	ID          string                 `json:"id"          yaml:"id"`
	Type        string                 `json:"type"        yaml:"type"`
	Href        string                 `json:"href"        yaml:"href"`
	Name        string                 `json:"name"        yaml:"name"`
	Index       int                    `json:"index"       yaml:"index"`
	BrowserLink string                 `json:"browserLink" yaml:"browserLink"`
	CreatedAt   time.Time              `json:"createdAt"   yaml:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"   yaml:"updatedAt"`
	Values      map[string]interface{} `json:"values"      yaml:"values"`
}

// CellEdit is one column/value pair of a row write. Column takes a column
// id or name; Value takes any JSON-encodable scalar or structure.
type CellEdit struct {
	Column string      `json:"column" yaml:"column"`
	Value  interface{} `json:"value"  yaml:"value"`
}

// RowEdit is the writable portion of one row.
type RowEdit struct {
	Cells []CellEdit `json:"cells" yaml:"cells"`
}

// RowUpsertRequest inserts or updates rows in one batched write. When
// KeyColumns is set, existing rows whose key cells match an incoming row
// are updated in place; otherwise every row is inserted.
type RowUpsertRequest struct {
	Rows       []RowEdit `json:"rows"                 yaml:"rows"`
	KeyColumns []string  `json:"keyColumns,omitempty" yaml:"keyColumns,omitempty"`
}

// RowUpsertResult acknowledges an accepted upsert. The write is processed
// asynchronously; AddedRowIDs names rows that will exist once it lands.
type RowUpsertResult struct {
	RequestID   string   `json:"requestId"             yaml:"requestId"`
	AddedRowIDs []string `json:"addedRowIds,omitempty" yaml:"addedRowIds,omitempty"`
}

// RowUpdateRequest replaces the cells of one row.
type RowUpdateRequest struct {
	Row RowEdit `json:"row" yaml:"row"`
}

// RowUpdateResult acknowledges an accepted row update.
type RowUpdateResult struct {
	RequestID string `json:"requestId"    yaml:"requestId"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
}

// RowDeleteResult acknowledges an accepted row deletion.
type RowDeleteResult struct {
	RequestID string `json:"requestId"    yaml:"requestId"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
}

// RowsDeleteRequest deletes several rows in one request.
type RowsDeleteRequest struct {
	RowIDs []string `json:"rowIds" yaml:"rowIds"`
}

// RowsDeleteResult acknowledges an accepted bulk deletion.
type RowsDeleteResult struct {
	RequestID string   `json:"requestId"        yaml:"requestId"`
	RowIDs    []string `json:"rowIds,omitempty" yaml:"rowIds,omitempty"`
}

// Formula represents a named formula of a doc.
type Formula struct {
	ID    string      `json:"id"              yaml:"id"`
	Type  string      `json:"type"            yaml:"type"`
	Href  string      `json:"href"            yaml:"href"`
	Name  string      `json:"name"            yaml:"name"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

// Control represents an interactive control of a doc.
type Control struct {
	ID          string      `json:"id"                    yaml:"id"`
	Type        string      `json:"type"                  yaml:"type"`
	Href        string      `json:"href"                  yaml:"href"`
	Name        string      `json:"name"                  yaml:"name"`
	ControlType string      `json:"controlType,omitempty" yaml:"controlType,omitempty"`
	Value       interface{} `json:"value,omitempty"       yaml:"value,omitempty"`
}

// Workspace identifies the workspace a token belongs to.
type Workspace struct {
	ID           string `json:"id"                     yaml:"id"`
	Type         string `json:"type"                   yaml:"type"`
	BrowserLink  string `json:"browserLink,omitempty"  yaml:"browserLink,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// User represents the account behind the configured token.
type User struct {
	Name        string     `json:"name"                  yaml:"name"`
	LoginID     string     `json:"loginId"               yaml:"loginId"`
	Type        string     `json:"type"                  yaml:"type"`
	Href        string     `json:"href,omitempty"        yaml:"href,omitempty"`
	TokenName   string     `json:"tokenName,omitempty"   yaml:"tokenName,omitempty"`
	Scoped      bool       `json:"scoped,omitempty"      yaml:"scoped,omitempty"`
	PictureLink string     `json:"pictureLink,omitempty" yaml:"pictureLink,omitempty"`
	Workspace   *Workspace `json:"workspace,omitempty"   yaml:"workspace,omitempty"`
}

// Resolution is the API resource behind a browser link.
type Resolution struct {
	Type        string     `json:"type"                  yaml:"type"`
	Href        string     `json:"href"                  yaml:"href"`
	BrowserLink string     `json:"browserLink,omitempty" yaml:"browserLink,omitempty"`
	Resource    *Reference `json:"resource,omitempty"    yaml:"resource,omitempty"`
}

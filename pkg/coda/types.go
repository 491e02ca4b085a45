package coda

// Page represents one decoded page of a list response. Items holds the
// page's objects in server order; NextPageToken and NextPageLink are the
// opaque continuation handles for the following page, absent on the last
// one.
type Page[T any] struct {
	Items         []T    `json:"items"                   yaml:"items"`
	Href          string `json:"href,omitempty"          yaml:"href,omitempty"`
	NextPageToken string `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
	NextPageLink  string `json:"nextPageLink,omitempty"  yaml:"nextPageLink,omitempty"`
}

// HasMore reports whether the server advertised a further page.
func (p *Page[T]) HasMore() bool {
	return p.NextPageToken != "" || p.NextPageLink != ""
}

// Reference points at another API resource.
type Reference struct {
	ID          string `json:"id"                    yaml:"id"`
	Type        string `json:"type"                  yaml:"type"`
	Href        string `json:"href,omitempty"        yaml:"href,omitempty"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	BrowserLink string `json:"browserLink,omitempty" yaml:"browserLink,omitempty"`
}

// DocList represents a page of Doc resources.
type DocList = Page[Doc]

// TableList represents a page of Table resources.
type TableList = Page[Table]

// ColumnList represents a page of Column resources.
type ColumnList = Page[Column]

// RowList represents a page of Row resources.
type RowList = Page[Row]

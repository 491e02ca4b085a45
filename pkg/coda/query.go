package coda

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListParams carries the pagination controls shared by every listing.
// A zero Limit asks for the logically complete result set; a non-zero
// Limit caps the number of returned items. PageToken resumes a listing
// from a server-issued cursor and is resubmitted verbatim.
type ListParams struct {
	Limit     int
	PageToken string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithLimit sets the maximum number of items to return.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithPageToken resumes the listing from a continuation token.
func (p *ListParams) WithPageToken(token string) *ListParams {
	p.PageToken = token

	return p
}

// ToValues converts the params to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.PageToken != "" {
		values.Set("pageToken", p.PageToken)
	}

	return values
}

// DocListParams filters a doc listing.
type DocListParams struct {
	ListParams

	// IsOwner restricts the listing to docs owned by the token's user.
	IsOwner bool
	// Query is a free-text search over doc names.
	Query string
	// SourceDoc restricts the listing to copies of the given doc id.
	SourceDoc string
}

// NewDocListParams creates an empty DocListParams.
func NewDocListParams() *DocListParams {
	return &DocListParams{}
}

// WithIsOwner restricts the listing to owned docs.
func (p *DocListParams) WithIsOwner() *DocListParams {
	p.IsOwner = true

	return p
}

// WithQuery sets a free-text search term.
func (p *DocListParams) WithQuery(query string) *DocListParams {
	p.Query = query

	return p
}

// WithSourceDoc restricts the listing to copies of a doc.
func (p *DocListParams) WithSourceDoc(docID string) *DocListParams {
	p.SourceDoc = docID

	return p
}

// ToValues converts the params to url.Values.
func (p *DocListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.IsOwner {
		values.Set("isOwner", "true")
	}

	if p.Query != "" {
		values.Set("query", p.Query)
	}

	if p.SourceDoc != "" {
		values.Set("sourceDoc", p.SourceDoc)
	}

	return values
}

// RowListParams filters a row listing.
type RowListParams struct {
	ListParams

	// Query filters rows to those whose column matches a value; build it
	// with ColumnFilter.
	Query string
	// UseColumnNames keys row values by column display name instead of
	// column id.
	UseColumnNames bool
}

// NewRowListParams creates an empty RowListParams.
func NewRowListParams() *RowListParams {
	return &RowListParams{}
}

// WithQuery sets a column/value filter built with ColumnFilter.
func (p *RowListParams) WithQuery(query string) *RowListParams {
	p.Query = query

	return p
}

// WithColumnFilter filters rows to those whose column holds value.
func (p *RowListParams) WithColumnFilter(column string, value interface{}) *RowListParams {
	p.Query = ColumnFilter(column, value)

	return p
}

// WithUseColumnNames keys row values by column display name.
func (p *RowListParams) WithUseColumnNames() *RowListParams {
	p.UseColumnNames = true

	return p
}

// ToValues converts the params to url.Values.
func (p *RowListParams) ToValues() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.ListParams.ToValues()

	if p.Query != "" {
		values.Set("query", p.Query)
	}

	if p.UseColumnNames {
		values.Set("useColumnNames", "true")
	}

	return values
}

// RowGetParams controls a single-row fetch.
type RowGetParams struct {
	// UseColumnNames keys row values by column display name instead of
	// column id.
	UseColumnNames bool
}

// ToValues converts the params to url.Values.
func (p *RowGetParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.UseColumnNames {
		values.Set("useColumnNames", "true")
	}

	return values
}

// ColumnFilter builds a row filter expression matching rows whose column
// holds value. The column may be given by id or display name; names are
// quoted in the expression, ids are not. The value is always quoted.
func ColumnFilter(column string, value interface{}) string {
	target := column
	if !IsColumnID(column) {
		target = quoteFilterTerm(column)
	}

	return fmt.Sprintf("%s:%s", target, quoteFilterTerm(fmt.Sprintf("%v", value)))
}

func quoteFilterTerm(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// TablesClient implements coda.TablesClient
type TablesClient struct {
	httpClient *http.Client
}

// NewTablesClient creates a new tables client
func NewTablesClient(httpClient *http.Client) *TablesClient {
	return &TablesClient{httpClient: httpClient}
}

// List implements coda.TablesClient.List
func (c *TablesClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Table], error) {
	path := fmt.Sprintf("/docs/%s/tables", docID)

	return listAll[coda.Table](ctx, c.httpClient, path, params.ToValues(), "tables")
}

// ListPage implements coda.TablesClient.ListPage
func (c *TablesClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Table], error) {
	path := fmt.Sprintf("/docs/%s/tables", docID)

	return fetchPage[coda.Table](ctx, c.httpClient, path, params.ToValues(), "tables")
}

// Get implements coda.TablesClient.Get
func (c *TablesClient) Get(ctx context.Context, docID, tableIDOrName string) (*coda.Table, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s", docID, url.PathEscape(tableIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	var table coda.Table
	if err := http.DecodeJSON(resp.Body, &table); err != nil {
		return nil, fmt.Errorf("parsing table response: %w", err)
	}

	return &table, nil
}

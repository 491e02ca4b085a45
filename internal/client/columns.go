package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// ColumnsClient implements coda.ColumnsClient
type ColumnsClient struct {
	httpClient *http.Client
}

// NewColumnsClient creates a new columns client
func NewColumnsClient(httpClient *http.Client) *ColumnsClient {
	return &ColumnsClient{httpClient: httpClient}
}

// List implements coda.ColumnsClient.List
func (c *ColumnsClient) List(ctx context.Context, docID, tableIDOrName string, params *coda.ListParams) (*coda.Page[coda.Column], error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/columns", docID, url.PathEscape(tableIDOrName))

	return listAll[coda.Column](ctx, c.httpClient, path, params.ToValues(), "columns")
}

// ListPage implements coda.ColumnsClient.ListPage
func (c *ColumnsClient) ListPage(ctx context.Context, docID, tableIDOrName string, params *coda.ListParams) (*coda.Page[coda.Column], error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/columns", docID, url.PathEscape(tableIDOrName))

	return fetchPage[coda.Column](ctx, c.httpClient, path, params.ToValues(), "columns")
}

// Get implements coda.ColumnsClient.Get
func (c *ColumnsClient) Get(ctx context.Context, docID, tableIDOrName, columnIDOrName string) (*coda.Column, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/columns/%s", docID, url.PathEscape(tableIDOrName), url.PathEscape(columnIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting column: %w", err)
	}

	var column coda.Column
	if err := http.DecodeJSON(resp.Body, &column); err != nil {
		return nil, fmt.Errorf("parsing column response: %w", err)
	}

	return &column, nil
}

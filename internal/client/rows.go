package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// RowsClient implements coda.RowsClient. The API processes every row
// write asynchronously: successful calls return accepted-state results,
// and reads may briefly observe the previous state.
type RowsClient struct {
	httpClient *http.Client
}

// NewRowsClient creates a new rows client
func NewRowsClient(httpClient *http.Client) *RowsClient {
	return &RowsClient{httpClient: httpClient}
}

// List implements coda.RowsClient.List
func (c *RowsClient) List(ctx context.Context, docID, tableIDOrName string, params *coda.RowListParams) (*coda.Page[coda.Row], error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows", docID, url.PathEscape(tableIDOrName))

	return listAll[coda.Row](ctx, c.httpClient, path, params.ToValues(), "rows")
}

// ListPage implements coda.RowsClient.ListPage
func (c *RowsClient) ListPage(ctx context.Context, docID, tableIDOrName string, params *coda.RowListParams) (*coda.Page[coda.Row], error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows", docID, url.PathEscape(tableIDOrName))

	return fetchPage[coda.Row](ctx, c.httpClient, path, params.ToValues(), "rows")
}

// Get implements coda.RowsClient.Get
func (c *RowsClient) Get(ctx context.Context, docID, tableIDOrName, rowIDOrName string, params *coda.RowGetParams) (*coda.Row, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows/%s", docID, url.PathEscape(tableIDOrName), url.PathEscape(rowIDOrName))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting row: %w", err)
	}

	var row coda.Row
	if err := http.DecodeJSON(resp.Body, &row); err != nil {
		return nil, fmt.Errorf("parsing row response: %w", err)
	}

	return &row, nil
}

// Upsert implements coda.RowsClient.Upsert
func (c *RowsClient) Upsert(ctx context.Context, docID, tableIDOrName string, request *coda.RowUpsertRequest) (*coda.RowUpsertResult, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows", docID, url.PathEscape(tableIDOrName))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("upserting rows: %w", err)
	}

	var result coda.RowUpsertResult
	if err := http.DecodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing upsert response: %w", err)
	}

	return &result, nil
}

// Update implements coda.RowsClient.Update
func (c *RowsClient) Update(ctx context.Context, docID, tableIDOrName, rowIDOrName string, edit coda.RowEdit) (*coda.RowUpdateResult, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows/%s", docID, url.PathEscape(tableIDOrName), url.PathEscape(rowIDOrName))

	resp, err := c.httpClient.Put(ctx, path, coda.RowUpdateRequest{Row: edit})
	if err != nil {
		return nil, fmt.Errorf("updating row: %w", err)
	}

	var result coda.RowUpdateResult
	if err := http.DecodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing update response: %w", err)
	}

	return &result, nil
}

// Delete implements coda.RowsClient.Delete
func (c *RowsClient) Delete(ctx context.Context, docID, tableIDOrName, rowIDOrName string) (*coda.RowDeleteResult, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows/%s", docID, url.PathEscape(tableIDOrName), url.PathEscape(rowIDOrName))

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting row: %w", err)
	}

	var result coda.RowDeleteResult
	if err := http.DecodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}

// DeleteMany implements coda.RowsClient.DeleteMany
func (c *RowsClient) DeleteMany(ctx context.Context, docID, tableIDOrName string, rowIDs []string) (*coda.RowsDeleteResult, error) {
	path := fmt.Sprintf("/docs/%s/tables/%s/rows", docID, url.PathEscape(tableIDOrName))

	resp, err := c.httpClient.DeleteWithBody(ctx, path, coda.RowsDeleteRequest{RowIDs: rowIDs})
	if err != nil {
		return nil, fmt.Errorf("deleting rows: %w", err)
	}

	var result coda.RowsDeleteResult
	if err := http.DecodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}

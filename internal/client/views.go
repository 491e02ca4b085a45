package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// ViewsClient implements coda.ViewsClient
type ViewsClient struct {
	httpClient *http.Client
}

// NewViewsClient creates a new views client
func NewViewsClient(httpClient *http.Client) *ViewsClient {
	return &ViewsClient{httpClient: httpClient}
}

// List implements coda.ViewsClient.List
func (c *ViewsClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.View], error) {
	path := fmt.Sprintf("/docs/%s/views", docID)

	return listAll[coda.View](ctx, c.httpClient, path, params.ToValues(), "views")
}

// ListPage implements coda.ViewsClient.ListPage
func (c *ViewsClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.View], error) {
	path := fmt.Sprintf("/docs/%s/views", docID)

	return fetchPage[coda.View](ctx, c.httpClient, path, params.ToValues(), "views")
}

// Get implements coda.ViewsClient.Get
func (c *ViewsClient) Get(ctx context.Context, docID, viewIDOrName string) (*coda.View, error) {
	path := fmt.Sprintf("/docs/%s/views/%s", docID, url.PathEscape(viewIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	var view coda.View
	if err := http.DecodeJSON(resp.Body, &view); err != nil {
		return nil, fmt.Errorf("parsing view response: %w", err)
	}

	return &view, nil
}

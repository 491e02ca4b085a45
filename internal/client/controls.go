package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// ControlsClient implements coda.ControlsClient
type ControlsClient struct {
	httpClient *http.Client
}

// NewControlsClient creates a new controls client
func NewControlsClient(httpClient *http.Client) *ControlsClient {
	return &ControlsClient{httpClient: httpClient}
}

// List implements coda.ControlsClient.List
func (c *ControlsClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Control], error) {
	path := fmt.Sprintf("/docs/%s/controls", docID)

	return listAll[coda.Control](ctx, c.httpClient, path, params.ToValues(), "controls")
}

// ListPage implements coda.ControlsClient.ListPage
func (c *ControlsClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Control], error) {
	path := fmt.Sprintf("/docs/%s/controls", docID)

	return fetchPage[coda.Control](ctx, c.httpClient, path, params.ToValues(), "controls")
}

// Get implements coda.ControlsClient.Get
func (c *ControlsClient) Get(ctx context.Context, docID, controlIDOrName string) (*coda.Control, error) {
	path := fmt.Sprintf("/docs/%s/controls/%s", docID, url.PathEscape(controlIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting control: %w", err)
	}

	var control coda.Control
	if err := http.DecodeJSON(resp.Body, &control); err != nil {
		return nil, fmt.Errorf("parsing control response: %w", err)
	}

	return &control, nil
}

package client

import (
	"context"
	"fmt"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// DocsClient implements coda.DocsClient
type DocsClient struct {
	httpClient *http.Client
}

// NewDocsClient creates a new docs client
func NewDocsClient(httpClient *http.Client) *DocsClient {
	return &DocsClient{httpClient: httpClient}
}

// List implements coda.DocsClient.List
func (c *DocsClient) List(ctx context.Context, params *coda.DocListParams) (*coda.Page[coda.Doc], error) {
	return listAll[coda.Doc](ctx, c.httpClient, "/docs", params.ToValues(), "docs")
}

// ListPage implements coda.DocsClient.ListPage
func (c *DocsClient) ListPage(ctx context.Context, params *coda.DocListParams) (*coda.Page[coda.Doc], error) {
	return fetchPage[coda.Doc](ctx, c.httpClient, "/docs", params.ToValues(), "docs")
}

// Get implements coda.DocsClient.Get
func (c *DocsClient) Get(ctx context.Context, docID string) (*coda.Doc, error) {
	path := fmt.Sprintf("/docs/%s", docID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting doc: %w", err)
	}

	var doc coda.Doc
	if err := http.DecodeJSON(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("parsing doc response: %w", err)
	}

	return &doc, nil
}

// Create implements coda.DocsClient.Create
func (c *DocsClient) Create(ctx context.Context, request *coda.DocCreateRequest) (*coda.Doc, error) {
	resp, err := c.httpClient.Post(ctx, "/docs", request)
	if err != nil {
		return nil, fmt.Errorf("creating doc: %w", err)
	}

	var doc coda.Doc
	if err := http.DecodeJSON(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("parsing doc response: %w", err)
	}

	return &doc, nil
}

// Delete implements coda.DocsClient.Delete
func (c *DocsClient) Delete(ctx context.Context, docID string) error {
	path := fmt.Sprintf("/docs/%s", docID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting doc: %w", err)
	}

	return nil
}

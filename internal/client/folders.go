package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// FoldersClient implements coda.FoldersClient
type FoldersClient struct {
	httpClient *http.Client
}

// NewFoldersClient creates a new folders client
func NewFoldersClient(httpClient *http.Client) *FoldersClient {
	return &FoldersClient{httpClient: httpClient}
}

// List implements coda.FoldersClient.List
func (c *FoldersClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Folder], error) {
	path := fmt.Sprintf("/docs/%s/folders", docID)

	return listAll[coda.Folder](ctx, c.httpClient, path, params.ToValues(), "folders")
}

// ListPage implements coda.FoldersClient.ListPage
func (c *FoldersClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Folder], error) {
	path := fmt.Sprintf("/docs/%s/folders", docID)

	return fetchPage[coda.Folder](ctx, c.httpClient, path, params.ToValues(), "folders")
}

// Get implements coda.FoldersClient.Get
func (c *FoldersClient) Get(ctx context.Context, docID, folderIDOrName string) (*coda.Folder, error) {
	path := fmt.Sprintf("/docs/%s/folders/%s", docID, url.PathEscape(folderIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	var folder coda.Folder
	if err := http.DecodeJSON(resp.Body, &folder); err != nil {
		return nil, fmt.Errorf("parsing folder response: %w", err)
	}

	return &folder, nil
}

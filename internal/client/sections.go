package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// SectionsClient implements coda.SectionsClient
type SectionsClient struct {
	httpClient *http.Client
}

// NewSectionsClient creates a new sections client
func NewSectionsClient(httpClient *http.Client) *SectionsClient {
	return &SectionsClient{httpClient: httpClient}
}

// List implements coda.SectionsClient.List
func (c *SectionsClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Section], error) {
	path := fmt.Sprintf("/docs/%s/sections", docID)

	return listAll[coda.Section](ctx, c.httpClient, path, params.ToValues(), "sections")
}

// ListPage implements coda.SectionsClient.ListPage
func (c *SectionsClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Section], error) {
	path := fmt.Sprintf("/docs/%s/sections", docID)

	return fetchPage[coda.Section](ctx, c.httpClient, path, params.ToValues(), "sections")
}

// Get implements coda.SectionsClient.Get
func (c *SectionsClient) Get(ctx context.Context, docID, sectionIDOrName string) (*coda.Section, error) {
	path := fmt.Sprintf("/docs/%s/sections/%s", docID, url.PathEscape(sectionIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	var section coda.Section
	if err := http.DecodeJSON(resp.Body, &section); err != nil {
		return nil, fmt.Errorf("parsing section response: %w", err)
	}

	return &section, nil
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// FormulasClient implements coda.FormulasClient
type FormulasClient struct {
	httpClient *http.Client
}

// NewFormulasClient creates a new formulas client
func NewFormulasClient(httpClient *http.Client) *FormulasClient {
	return &FormulasClient{httpClient: httpClient}
}

// List implements coda.FormulasClient.List
func (c *FormulasClient) List(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Formula], error) {
	path := fmt.Sprintf("/docs/%s/formulas", docID)

	return listAll[coda.Formula](ctx, c.httpClient, path, params.ToValues(), "formulas")
}

// ListPage implements coda.FormulasClient.ListPage
func (c *FormulasClient) ListPage(ctx context.Context, docID string, params *coda.ListParams) (*coda.Page[coda.Formula], error) {
	path := fmt.Sprintf("/docs/%s/formulas", docID)

	return fetchPage[coda.Formula](ctx, c.httpClient, path, params.ToValues(), "formulas")
}

// Get implements coda.FormulasClient.Get
func (c *FormulasClient) Get(ctx context.Context, docID, formulaIDOrName string) (*coda.Formula, error) {
	path := fmt.Sprintf("/docs/%s/formulas/%s", docID, url.PathEscape(formulaIDOrName))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting formula: %w", err)
	}

	var formula coda.Formula
	if err := http.DecodeJSON(resp.Body, &formula); err != nil {
		return nil, fmt.Errorf("parsing formula response: %w", err)
	}

	return &formula, nil
}

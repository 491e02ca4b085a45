// Package client implements the coda.Client interface: one typed client
// per API resource on top of the shared HTTP transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// Client implements the coda.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager http.TokenManager
	baseURL      string
	logger       coda.Logger

	// Resource clients
	docs     coda.DocsClient
	sections coda.SectionsClient
	folders  coda.FoldersClient
	tables   coda.TablesClient
	views    coda.ViewsClient
	columns  coda.ColumnsClient
	rows     coda.RowsClient
	formulas coda.FormulasClient
	controls coda.ControlsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *coda.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.RateLimit > 0 {
		httpOpts = append(httpOpts, http.WithRateLimit(config.RateLimit))
	}

	return httpOpts
}

// New creates a new API client from the given configuration. An empty
// Endpoint falls back to the public API root. The API key may be empty;
// requests will then go out unauthenticated, which the server rejects
// with 401. The public constructors in pkg/codaclient validate the key
// up front.
func New(ctx context.Context, config *coda.Config) (*Client, error) {
	if config == nil {
		return nil, coda.ErrConfigRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	var tokenManager http.TokenManager
	if config.APIKey != "" {
		tokenManager = &staticTokenManager{token: config.APIKey}
	}

	httpClient := http.NewClient(endpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Get implements coda.RawClient.Get. When the response is a listing and
// query has no "limit", the continuation cursor is followed and the
// returned document holds the complete item set.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	resp, err := c.httpClient.GetAll(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", path, err)
	}

	return rawOrStatus(resp), nil
}

// Post implements coda.RawClient.Post.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", path, err)
	}

	return rawOrStatus(resp), nil
}

// Put implements coda.RawClient.Put.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("putting to %s: %w", path, err)
	}

	return rawOrStatus(resp), nil
}

// Delete implements coda.RawClient.Delete.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", path, err)
	}

	return rawOrStatus(resp), nil
}

// rawOrStatus returns the response body, or a minimal status document for
// responses without a JSON body, such as the API's empty 202
// acknowledgments.
func rawOrStatus(resp *http.Response) json.RawMessage {
	if len(resp.Body) == 0 || !json.Valid(resp.Body) {
		return json.RawMessage(fmt.Sprintf(`{"status":%d}`, resp.StatusCode))
	}

	return json.RawMessage(resp.Body)
}

// Whoami implements coda.AccountClient.Whoami.
func (c *Client) Whoami(ctx context.Context) (*coda.User, error) {
	resp, err := c.httpClient.Get(ctx, "/whoami", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var user coda.User
	if err := http.DecodeJSON(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &user, nil
}

// ResolveBrowserLink implements coda.AccountClient.ResolveBrowserLink.
func (c *Client) ResolveBrowserLink(ctx context.Context, link string, degradeGracefully bool) (*coda.Resolution, error) {
	query := url.Values{}
	query.Set("url", link)

	if degradeGracefully {
		query.Set("degradeGracefully", "true")
	}

	resp, err := c.httpClient.Get(ctx, "/resolveBrowserLink", query)
	if err != nil {
		return nil, fmt.Errorf("resolving browser link: %w", err)
	}

	var resolution coda.Resolution
	if err := http.DecodeJSON(resp.Body, &resolution); err != nil {
		return nil, fmt.Errorf("parsing resolution response: %w", err)
	}

	return &resolution, nil
}

// Resource client accessors

// Docs implements coda.Client.Docs.
func (c *Client) Docs() coda.DocsClient {
	return c.docs
}

// Sections implements coda.Client.Sections.
func (c *Client) Sections() coda.SectionsClient {
	return c.sections
}

// Folders implements coda.Client.Folders.
func (c *Client) Folders() coda.FoldersClient {
	return c.folders
}

// Tables implements coda.Client.Tables.
func (c *Client) Tables() coda.TablesClient {
	return c.tables
}

// Views implements coda.Client.Views.
func (c *Client) Views() coda.ViewsClient {
	return c.views
}

// Columns implements coda.Client.Columns.
func (c *Client) Columns() coda.ColumnsClient {
	return c.columns
}

// Rows implements coda.Client.Rows.
func (c *Client) Rows() coda.RowsClient {
	return c.rows
}

// Formulas implements coda.Client.Formulas.
func (c *Client) Formulas() coda.FormulasClient {
	return c.formulas
}

// Controls implements coda.Client.Controls.
func (c *Client) Controls() coda.ControlsClient {
	return c.controls
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.docs = NewDocsClient(c.httpClient)
	c.sections = NewSectionsClient(c.httpClient)
	c.folders = NewFoldersClient(c.httpClient)
	c.tables = NewTablesClient(c.httpClient)
	c.views = NewViewsClient(c.httpClient)
	c.columns = NewColumnsClient(c.httpClient)
	c.rows = NewRowsClient(c.httpClient)
	c.formulas = NewFormulasClient(c.httpClient)
	c.controls = NewControlsClient(c.httpClient)
}

// staticTokenManager provides the static API token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

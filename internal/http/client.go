// Package http implements the transport underneath the typed API clients:
// bearer-authenticated JSON exchanges against the configured endpoint,
// with typed error propagation and cursor-following pagination.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
)

// TokenManager supplies the bearer credential attached to every request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the low-level HTTP client.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	httpClient   *retryablehttp.Client
	logger       coda.Logger
	debug        bool
	userAgent    string
	interceptors *coda.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger coda.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout bounds a single request when the context carries no
// deadline.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries for 429 and 5xx responses. Retries stay
// off when retryMax is 0.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.interceptors.AddRequestInterceptor(coda.RateLimitInterceptor(requestsPerSecond))
		}
	}
}

// WithInterceptors appends a caller-supplied interceptor chain.
func WithInterceptors(chain *coda.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// WithHTTPClient swaps the underlying standard client, keeping the retry
// wrapper.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP client for the given base URL.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// hashicorp's default policy retries connection errors, 429 and 5xx;
	// it never retries other 4xx. That matches the API's rate-limit
	// contract, so only RetryMax is tuned here.
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    "codaio-go/" + constants.ClientVersion,
		interceptors: coda.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single HTTP exchange. A response with status >= 400 is
// returned together with a *coda.APIError carrying the server's answer;
// a request that could not complete returns an error wrapping
// coda.ErrTransport.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return c.doRequest(ctx, req.Method, fullURL, req.Body, req.Headers)
}

// Get issues a single GET exchange.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// DeleteWithBody issues a DELETE carrying a JSON body.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}

// pageEnvelope is the wire shape shared by every list response.
type pageEnvelope struct {
	Items         []json.RawMessage `json:"items"`
	Href          string            `json:"href,omitempty"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
	NextPageLink  string            `json:"nextPageLink,omitempty"`
}

func (e *pageEnvelope) hasMore() bool {
	return e.NextPageToken != "" || e.NextPageLink != ""
}

// GetAll issues a GET and, when the response is a listing and the caller
// supplied no "limit", follows the server's continuation cursor and
// returns one response whose items array is the concatenation of every
// page in page order. With a "limit" in the query, or on a non-list
// response, it behaves exactly like Get.
func (c *Client) GetAll(ctx context.Context, path string, query url.Values) (*Response, error) {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return resp, err
	}

	if query.Get("limit") != "" {
		return resp, nil
	}

	var page pageEnvelope
	if unmarshalErr := json.Unmarshal(resp.Body, &page); unmarshalErr != nil || page.Items == nil {
		return resp, nil
	}

	if !page.hasMore() {
		return resp, nil
	}

	items := page.Items

	for pages := 1; page.hasMore(); pages++ {
		if pages >= constants.MaxPages {
			return resp, fmt.Errorf("%w: listing exceeded %d pages", coda.ErrTransport, constants.MaxPages)
		}

		var follow *Response

		if page.NextPageLink != "" {
			follow, err = c.doRequest(ctx, http.MethodGet, page.NextPageLink, nil, nil)
		} else {
			tokenQuery := url.Values{}
			tokenQuery.Set("pageToken", page.NextPageToken)
			follow, err = c.Get(ctx, path, tokenQuery)
		}

		if err != nil {
			return follow, err
		}

		page = pageEnvelope{}
		if err := json.Unmarshal(follow.Body, &page); err != nil {
			return follow, fmt.Errorf("%w: decoding page %d: %w", coda.ErrTransport, pages+1, err)
		}

		items = append(items, page.Items...)
	}

	merged, err := json.Marshal(pageEnvelope{Items: items, Href: path})
	if err != nil {
		return resp, fmt.Errorf("%w: merging pages: %w", coda.ErrTransport, err)
	}

	return &Response{StatusCode: resp.StatusCode, Headers: resp.Headers, Body: merged}, nil
}

func (c *Client) doRequest(ctx context.Context, method, fullURL string, body interface{}, headers map[string]string) (*Response, error) {
	var bodyBytes []byte

	if body != nil {
		var err error

		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	interceptReq := &coda.Request{
		Method:  method,
		Path:    requestPath(fullURL),
		Headers: make(http.Header),
		Body:    bodyBytes,
	}
	if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq); err != nil {
		return nil, err
	}

	var bodyReader *bytes.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	var (
		req *retryablehttp.Request
		err error
	)

	if bodyReader != nil {
		req, err = retryablehttp.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	} else {
		req, err = retryablehttp.NewRequestWithContext(ctx, method, fullURL, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, tokenErr := c.tokenManager.GetToken(ctx)
		if tokenErr != nil {
			return nil, fmt.Errorf("getting token: %w", tokenErr)
		}

		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", coda.ErrTransport, method, requestPath(fullURL), err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", coda.ErrTransport, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": method,
			"url":    fullURL,
			"status": resp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	interceptResp := &coda.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := coda.ParseAPIError(resp.StatusCode, resp.Body)
		interceptResp.Error = apiErr

		if err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp); err != nil {
			return resp, err
		}

		return resp, apiErr
	}

	if err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp); err != nil {
		return resp, err
	}

	return resp, nil
}

func requestPath(fullURL string) string {
	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}

	return parsed.Path
}

// DecodeJSON unmarshals a response body into v. An empty body leaves v
// untouched, matching the API's empty 202 acknowledgments; a body that
// cannot be decoded is a malformed response and wraps coda.ErrTransport.
func DecodeJSON(body []byte, v interface{}) error {
	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decoding response body: %w", coda.ErrTransport, err)
	}

	return nil
}

package coda

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// RawClient exposes the transport verbs underneath the typed resource
// clients. Paths are relative to the configured endpoint.
type RawClient interface {
	// Get issues a GET and decodes the response. When the response is a
	// listing and query carries no "limit", Get follows the server's
	// continuation cursor and returns one logically complete item set;
	// with a "limit" it never fetches beyond what the limit needs.
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	// Post issues a POST with a JSON body. No pagination.
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	// Put issues a PUT with a JSON body.
	Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	// Delete issues a DELETE.
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// ResourceClients provides access to the typed resource clients.
type ResourceClients interface {
	Docs() DocsClient
	Sections() SectionsClient
	Folders() FoldersClient
	Tables() TablesClient
	Views() ViewsClient
	Columns() ColumnsClient
	Rows() RowsClient
	Formulas() FormulasClient
	Controls() ControlsClient
}

// AccountClient provides access to token-scoped endpoints.
type AccountClient interface {
	// Whoami returns the account behind the configured token.
	Whoami(ctx context.Context) (*User, error)
	// ResolveBrowserLink resolves a doc browser URL to its API resource.
	// With degradeGracefully set, an unresolvable portion of the link
	// degrades to the closest resolvable parent instead of failing.
	ResolveBrowserLink(ctx context.Context, link string, degradeGracefully bool) (*Resolution, error)
}

type Client interface {
	// Composite interfaces for related operation groups
	RawClient
	ResourceClients
	AccountClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a coda.Client.
//
// # Authentication
//
// The API authenticates every request with a static bearer token. APIKey
// is the only credential field; it is attached as
// "Authorization: Bearer <token>" and never mutated after construction.
// codaclient.NewFromEnvironment reads it from CODA_API_KEY.
//
// # Timeouts and retries
//
// Per-request deadlines should generally be controlled via the context
// passed to client methods; HTTPTimeout bounds a single request when no
// context deadline is set. Retries are off unless RetryMax is set above
// zero, in which case only 429 and 5xx responses are retried, with
// backoff between RetryWaitMin and RetryWaitMax. Other rejections are
// never retried.
type Config struct {
	// Required fields
	// Endpoint: base URL for the API. codaclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no
	// scheme is present. Empty means the public API root.
	Endpoint string
	// APIKey: bearer token for every request.
	APIKey string

	// Optional configurations
	// HTTPTimeout: timeout for a single HTTP request.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for 429/5xx responses. 0
	// disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// RateLimit: client-side cap on requests per second. 0 means no cap.
	RateLimit int
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

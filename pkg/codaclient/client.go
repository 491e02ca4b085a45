// Package codaclient provides the main entry point for creating Coda API clients
package codaclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/licht1stein/codaio/internal/client"
	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
)

// New creates a new Coda API client from the given configuration. The
// endpoint is normalized (trailing slash trimmed, https:// prepended when
// no scheme is present) and falls back to the public API root when empty.
func New(ctx context.Context, config *coda.Config) (coda.Client, error) {
	if config == nil {
		return nil, coda.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, coda.ErrAPIKeyRequired
	}

	config.Endpoint = normalizeEndpoint(config.Endpoint)

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client against the public API root using the
// given bearer token.
func NewWithToken(ctx context.Context, token string) (coda.Client, error) {
	return New(ctx, &coda.Config{APIKey: token})
}

// NewFromEnvironment creates a client configured from the execution
// environment: CODA_API_KEY supplies the token and CODA_API_ENDPOINT
// optionally overrides the endpoint. Both are read once, here; nothing
// deeper in the call chain consults the environment again.
func NewFromEnvironment(ctx context.Context) (coda.Client, error) {
	token := os.Getenv(constants.EnvAPIKey)
	if token == "" {
		return nil, fmt.Errorf("%w: set %s", coda.ErrAPIKeyRequired, constants.EnvAPIKey)
	}

	return New(ctx, &coda.Config{
		Endpoint: os.Getenv(constants.EnvEndpoint),
		APIKey:   token,
	})
}

// normalizeEndpoint applies the endpoint conventions: empty means the
// public root, a bare host gets https://, and a trailing slash is dropped
// so relative paths concatenate cleanly.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht1stein/codaio/internal/client"
	"github.com/licht1stein/codaio/pkg/coda"
)

const testDocID = "AbCDeFGH"

// newServerClient starts a test server and builds a client against it.
func newServerClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(context.Background(), &coda.Config{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})
	require.NoError(t, err)

	return apiClient
}

// pagedHandler serves pageOne for the initial request and pageTwo once a
// continuation token comes back.
func pagedHandler(t *testing.T, basePath, pageOne, pageTwo string) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, basePath, request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")

		if request.URL.Query().Get("pageToken") == "" {
			_, _ = writer.Write([]byte(pageOne))
		} else {
			_, _ = writer.Write([]byte(pageTwo))
		}
	}
}

// docResourceSuite describes the List/ListPage/Get triple shared by the
// doc-scoped resource clients.
type docResourceSuite[T any] struct {
	kind     string
	basePath string
	itemJSON string
	itemName string
	list     func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[T], error)
	listPage func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[T], error)
	get      func(ctx context.Context, c *client.Client, idOrName string) (*T, error)
	name     func(*T) string
}

// runDocResourceSuite exercises a doc-scoped resource client against mock
// servers.
func runDocResourceSuite[T any](t *testing.T, suite docResourceSuite[T]) {
	t.Helper()

	t.Run("list follows pagination", func(t *testing.T) {
		t.Parallel()

		pageOne := `{"items":[` + suite.itemJSON + `],"nextPageToken":"tok-2"}`
		pageTwo := `{"items":[` + suite.itemJSON + `]}`

		apiClient := newServerClient(t, pagedHandler(t, suite.basePath, pageOne, pageTwo))

		page, err := suite.list(context.Background(), apiClient, nil)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, suite.itemName, suite.name(&page.Items[0]))
		assert.False(t, page.HasMore())
	})

	t.Run("list respects explicit limit", func(t *testing.T) {
		t.Parallel()

		requests := 0
		apiClient := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			requests++
			assert.Equal(t, "1", request.URL.Query().Get("limit"))
			_, _ = writer.Write([]byte(`{"items":[` + suite.itemJSON + `],"nextPageToken":"tok-2"}`))
		})

		page, err := suite.list(context.Background(), apiClient, coda.NewListParams().WithLimit(1))
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 1, requests)
	})

	t.Run("list page returns a single page", func(t *testing.T) {
		t.Parallel()

		apiClient := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, suite.basePath, request.URL.Path)
			_, _ = writer.Write([]byte(`{"items":[` + suite.itemJSON + `],"nextPageToken":"tok-2"}`))
		})

		page, err := suite.listPage(context.Background(), apiClient, nil)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.True(t, page.HasMore())
		assert.Equal(t, "tok-2", page.NextPageToken)
	})

	t.Run("get by name", func(t *testing.T) {
		t.Parallel()

		apiClient := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, suite.basePath+"/"+suite.itemName, request.URL.Path)
			_, _ = writer.Write([]byte(suite.itemJSON))
		})

		item, err := suite.get(context.Background(), apiClient, suite.itemName)
		require.NoError(t, err)
		assert.Equal(t, suite.itemName, suite.name(item))
	})

	t.Run("get not found", func(t *testing.T) {
		t.Parallel()

		apiClient := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"statusCode":404,"statusMessage":"Not Found","message":"` + suite.kind + ` not found"}`))
		})

		item, err := suite.get(context.Background(), apiClient, "missing")
		require.Error(t, err)
		assert.Nil(t, item)
		assert.True(t, coda.IsNotFound(err))
	})
}

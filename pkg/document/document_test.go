package document_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/codaclient"
	"github.com/licht1stein/codaio/pkg/document"
)

const testDocID = "AbCDeFGH"

// newServerDocument starts a test server and wraps testDocID against it
// without fetching anything.
func newServerDocument(t *testing.T, handler http.HandlerFunc) *document.Document {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := codaclient.New(context.Background(), &coda.Config{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})
	require.NoError(t, err)

	doc, err := document.New(client, testDocID)
	require.NoError(t, err)

	return doc
}

func TestDocumentMetadata(t *testing.T) {
	t.Parallel()

	t.Run("lazy fetch is memoized", func(t *testing.T) {
		t.Parallel()

		var requests int64

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt64(&requests, 1)
			assert.Equal(t, "/docs/"+testDocID, request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"AbCDeFGH","name":"Project Plan","owner":"owner@example.com","browserLink":"https://coda.io/d/_dAbCDeFGH"}`))
		})

		assert.EqualValues(t, 0, atomic.LoadInt64(&requests))

		name, err := doc.Name(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Project Plan", name)
		assert.EqualValues(t, 1, atomic.LoadInt64(&requests))

		owner, err := doc.Owner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", owner)

		link, err := doc.BrowserLink(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://coda.io/d/_dAbCDeFGH", link)

		// Both accessors reused the memoized metadata.
		assert.EqualValues(t, 1, atomic.LoadInt64(&requests))
	})

	t.Run("refresh reloads once", func(t *testing.T) {
		t.Parallel()

		var requests int64

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt64(&requests, 1)

			if atomic.LoadInt64(&requests) == 1 {
				_, _ = writer.Write([]byte(`{"id":"AbCDeFGH","name":"Before"}`))
			} else {
				_, _ = writer.Write([]byte(`{"id":"AbCDeFGH","name":"After"}`))
			}
		})

		name, err := doc.Name(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Before", name)

		require.NoError(t, doc.Refresh(context.Background()))

		name, err = doc.Name(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "After", name)
		assert.EqualValues(t, 2, atomic.LoadInt64(&requests))
	})

	t.Run("load fails fast on unknown doc", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"statusCode":404,"statusMessage":"Not Found","message":"Doc not found"}`))
		}))
		t.Cleanup(server.Close)

		client, err := codaclient.New(context.Background(), &coda.Config{Endpoint: server.URL, APIKey: "test-key"})
		require.NoError(t, err)

		doc, err := document.Load(context.Background(), client, "missing0")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.True(t, coda.IsNotFound(err))
	})
}

func TestFromEnvironment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer env-token", request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`{"id":"AbCDeFGH","name":"Env Doc"}`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("CODA_API_KEY", "env-token")
	t.Setenv("CODA_API_ENDPOINT", server.URL)

	doc, err := document.FromEnvironment(context.Background(), testDocID)
	require.NoError(t, err)

	name, err := doc.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Env Doc", name)
}

func TestDocumentTableResolution(t *testing.T) {
	t.Parallel()

	tableListing := `{"items":[` +
		`{"id":"grid-111","name":"Tasks"},` +
		`{"id":"grid-222","name":"Budget"},` +
		`{"id":"grid-333","name":"Budget"}]}`

	t.Run("by id fetches directly", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/docs/"+testDocID+"/tables/grid-111", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"grid-111","name":"Tasks"}`))
		})

		table, err := doc.Table(context.Background(), "grid-111")
		require.NoError(t, err)
		assert.Equal(t, "grid-111", table.ID())
		assert.Equal(t, "Tasks", table.Name())
	})

	t.Run("unique name resolves", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/docs/"+testDocID+"/tables", request.URL.Path)
			_, _ = writer.Write([]byte(tableListing))
		})

		table, err := doc.Table(context.Background(), "Tasks")
		require.NoError(t, err)
		assert.Equal(t, "grid-111", table.ID())
	})

	t.Run("duplicate name is ambiguous", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(tableListing))
		})

		table, err := doc.Table(context.Background(), "Budget")
		require.Error(t, err)
		assert.Nil(t, table)
		assert.True(t, coda.IsAmbiguous(err))

		ambErr := &coda.AmbiguousReferenceError{}
		require.ErrorAs(t, err, &ambErr)
		assert.Equal(t, "table", ambErr.Kind)
		assert.Equal(t, []string{"grid-222", "grid-333"}, ambErr.Matches)
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(tableListing))
		})

		table, err := doc.Table(context.Background(), "Inventory")
		require.Error(t, err)
		assert.Nil(t, table)
		assert.True(t, coda.IsNotFound(err))
	})

	t.Run("tables returns fresh snapshot", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(tableListing))
		})

		tables, err := doc.Tables(context.Background())
		require.NoError(t, err)
		require.Len(t, tables, 3)
		assert.Equal(t, "grid-111", tables[0].ID())
	})
}

func TestDocumentSectionResolution(t *testing.T) {
	t.Parallel()

	sectionListing := `{"items":[` +
		`{"id":"canvas-aaa","name":"Intro"},` +
		`{"id":"canvas-bbb","name":"Notes"},` +
		`{"id":"canvas-ccc","name":"Notes"}]}`

	t.Run("by id fetches directly", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/docs/"+testDocID+"/sections/canvas-aaa", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"canvas-aaa","name":"Intro"}`))
		})

		section, err := doc.Section(context.Background(), "canvas-aaa")
		require.NoError(t, err)
		assert.Equal(t, "Intro", section.Name)
	})

	t.Run("duplicate name is ambiguous", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(sectionListing))
		})

		section, err := doc.Section(context.Background(), "Notes")
		require.Error(t, err)
		assert.Nil(t, section)
		assert.True(t, coda.IsAmbiguous(err))
	})

	t.Run("unique name resolves", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(sectionListing))
		})

		section, err := doc.Section(context.Background(), "Intro")
		require.NoError(t, err)
		assert.Equal(t, "canvas-aaa", section.ID)
	})
}

func TestDocumentViewAndFolderResolution(t *testing.T) {
	t.Parallel()

	t.Run("view by id", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/docs/"+testDocID+"/views/table-xyz", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"table-xyz","name":"Active Tasks"}`))
		})

		view, err := doc.View(context.Background(), "table-xyz")
		require.NoError(t, err)
		assert.Equal(t, "Active Tasks", view.Name)
	})

	t.Run("folder by name", func(t *testing.T) {
		t.Parallel()

		doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/docs/"+testDocID+"/folders", request.URL.Path)
			_, _ = writer.Write([]byte(`{"items":[{"id":"section-f1","name":"Archive"}]}`))
		})

		folder, err := doc.Folder(context.Background(), "Archive")
		require.NoError(t, err)
		assert.Equal(t, "section-f1", folder.ID)
	})
}

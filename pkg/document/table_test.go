package document_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/document"
)

const (
	testTableID   = "grid-111"
	tableBasePath = "/docs/" + testDocID + "/tables/" + testTableID
)

// newServerTable wraps testTableID against a test server without listing
// the doc's tables first.
func newServerTable(t *testing.T, handler http.HandlerFunc) *document.Table {
	t.Helper()

	doc := newServerDocument(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == tableBasePath && request.Method == http.MethodGet {
			_, _ = writer.Write([]byte(`{"id":"grid-111","name":"Tasks"}`))

			return
		}

		handler(writer, request)
	})

	table, err := doc.Table(context.Background(), testTableID)
	require.NoError(t, err)

	return table
}

func TestTableColumns(t *testing.T) {
	t.Parallel()

	t.Run("listing order preserved and memoized", func(t *testing.T) {
		t.Parallel()

		var listRequests int64

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt64(&listRequests, 1)
			assert.Equal(t, tableBasePath+"/columns", request.URL.Path)
			_, _ = writer.Write([]byte(`{"items":[{"id":"c-1","name":"Col A"},{"id":"c-2","name":"Col B"}]}`))
		})

		columns, err := table.Columns(context.Background())
		require.NoError(t, err)
		require.Len(t, columns, 2)
		assert.Equal(t, "c-1", columns[0].ID)
		assert.Equal(t, "c-2", columns[1].ID)

		_, err = table.Columns(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt64(&listRequests))
	})

	t.Run("refresh drops the memoized columns", func(t *testing.T) {
		t.Parallel()

		var listRequests int64

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			if strings.HasSuffix(request.URL.Path, "/columns") {
				atomic.AddInt64(&listRequests, 1)
				_, _ = writer.Write([]byte(`{"items":[{"id":"c-1","name":"Col A"}]}`))

				return
			}

			t.Errorf("unexpected request: %s", request.URL.Path)
		})

		_, err := table.Columns(context.Background())
		require.NoError(t, err)

		require.NoError(t, table.Refresh(context.Background()))

		_, err = table.Columns(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 2, atomic.LoadInt64(&listRequests))
	})

	t.Run("column resolution", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"items":[` +
				`{"id":"c-1","name":"Name"},` +
				`{"id":"c-2","name":"Amount","calculated":true},` +
				`{"id":"c-3","name":"Amount"}]}`))
		})

		ctx := context.Background()

		byID, err := table.Column(ctx, "c-2")
		require.NoError(t, err)
		assert.Equal(t, "Amount", byID.Name)
		assert.True(t, byID.Calculated)

		byName, err := table.Column(ctx, "Name")
		require.NoError(t, err)
		assert.Equal(t, "c-1", byName.ID)

		_, err = table.Column(ctx, "Amount")
		require.Error(t, err)
		assert.True(t, coda.IsAmbiguous(err))

		_, err = table.Column(ctx, "Missing")
		require.Error(t, err)
		assert.True(t, coda.IsNotFound(err))

		_, err = table.Column(ctx, "c-9")
		require.Error(t, err)
		assert.True(t, coda.IsNotFound(err))
	})
}

func TestTableRows(t *testing.T) {
	t.Parallel()

	t.Run("rows are fully paginated", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, tableBasePath+"/rows", request.URL.Path)

			if request.URL.Query().Get("pageToken") == "" {
				_, _ = writer.Write([]byte(`{"items":[{"id":"i-1","name":"one"}],"nextPageToken":"tok-2"}`))
			} else {
				_, _ = writer.Write([]byte(`{"items":[{"id":"i-2","name":"two"}]}`))
			}
		})

		rows, err := table.Rows(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "i-1", rows[0].ID())
		assert.Equal(t, "i-2", rows[1].ID())
	})

	t.Run("find by column sends the filter expression", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, `c-1:"x"`, request.URL.Query().Get("query"))
			_, _ = writer.Write([]byte(`{"items":[` +
				`{"id":"i-1","values":{"c-1":"x"}},` +
				`{"id":"i-2","values":{"c-1":"x"}}]}`))
		})

		ctx := context.Background()

		rows, err := table.FindRowsByColumn(ctx, "c-1", "x")
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		// First match in listing order, by contract.
		row, err := table.FindRowByColumn(ctx, "c-1", "x")
		require.NoError(t, err)
		assert.Equal(t, "i-1", row.ID())
	})

	t.Run("find by column with no match", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"items":[]}`))
		})

		row, err := table.FindRowByColumn(context.Background(), "c-1", "nope")
		require.Error(t, err)
		assert.Nil(t, row)
		assert.True(t, coda.IsNotFound(err))
	})
}

func TestTableWrites(t *testing.T) {
	t.Parallel()

	t.Run("upsert is acknowledged", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, tableBasePath+"/rows", request.URL.Path)

			var body coda.RowUpsertRequest
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			require.Len(t, body.Rows, 1)
			assert.Equal(t, "c-1", body.Rows[0].Cells[0].Column)
			assert.Equal(t, "x", body.Rows[0].Cells[0].Value)
			assert.Equal(t, []string{"c-1"}, body.KeyColumns)

			writer.WriteHeader(http.StatusAccepted)
			_, _ = writer.Write([]byte(`{"requestId":"req-1","addedRowIds":["i-9"]}`))
		})

		rows := []coda.RowEdit{{Cells: []coda.CellEdit{{Column: "c-1", Value: "x"}}}}

		result, err := table.Upsert(context.Background(), rows, "c-1")
		require.NoError(t, err)
		assert.Equal(t, "req-1", result.RequestID)
		assert.Equal(t, []string{"i-9"}, result.AddedRowIDs)
	})

	t.Run("write is visible only after refresh", func(t *testing.T) {
		t.Parallel()

		var wrote int64

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			switch {
			case request.Method == http.MethodPut:
				atomic.AddInt64(&wrote, 1)
				writer.WriteHeader(http.StatusAccepted)
				_, _ = writer.Write([]byte(`{"requestId":"req-2","id":"i-1"}`))
			case atomic.LoadInt64(&wrote) == 0:
				_, _ = writer.Write([]byte(`{"id":"i-1","values":{"c-1":"old"}}`))
			default:
				_, _ = writer.Write([]byte(`{"id":"i-1","values":{"c-1":"new"}}`))
			}
		})

		ctx := context.Background()

		row, err := table.Row(ctx, "i-1")
		require.NoError(t, err)

		value, ok := row.Value("c-1")
		require.True(t, ok)
		assert.Equal(t, "old", value)

		_, err = row.Update(ctx, coda.RowEdit{Cells: []coda.CellEdit{{Column: "c-1", Value: "new"}}})
		require.NoError(t, err)

		// The accepted write does not mutate the view.
		value, _ = row.Value("c-1")
		assert.Equal(t, "old", value)

		require.NoError(t, row.Refresh(ctx))

		value, _ = row.Value("c-1")
		assert.Equal(t, "new", value)
	})

	t.Run("delete rows", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodDelete, request.Method)

			var body coda.RowsDeleteRequest
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, []string{"i-1", "i-2"}, body.RowIDs)

			writer.WriteHeader(http.StatusAccepted)
			_, _ = writer.Write([]byte(`{"requestId":"req-3","rowIds":["i-1","i-2"]}`))
		})

		result, err := table.DeleteRows(context.Background(), []string{"i-1", "i-2"})
		require.NoError(t, err)
		assert.Equal(t, "req-3", result.RequestID)
	})
}

func TestRowIterator(t *testing.T) {
	t.Parallel()

	t.Run("snapshot is immune to later mutation", func(t *testing.T) {
		t.Parallel()

		var listings int64

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			// The second listing simulates rows mutated after the
			// iterator snapshot was taken.
			if atomic.AddInt64(&listings, 1) == 1 {
				_, _ = writer.Write([]byte(`{"items":[{"id":"i-1"},{"id":"i-2"}]}`))
			} else {
				_, _ = writer.Write([]byte(`{"items":[{"id":"i-9"}]}`))
			}
		})

		ctx := context.Background()

		iterator, err := table.RowIterator(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, iterator.Len())

		// Concurrent mutation happens here; a fresh listing would see it.
		fresh, err := table.Rows(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, fresh, 1)

		var ids []string

		require.NoError(t, iterator.ForEach(func(row *document.Row) error {
			ids = append(ids, row.ID())

			return nil
		}))
		assert.Equal(t, []string{"i-1", "i-2"}, ids)
	})

	t.Run("reset restarts the same snapshot", func(t *testing.T) {
		t.Parallel()

		table := newServerTable(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"items":[{"id":"i-1"},{"id":"i-2"}]}`))
		})

		iterator, err := table.RowIterator(context.Background(), nil)
		require.NoError(t, err)

		first := iterator.Next()
		require.NotNil(t, first)
		assert.Equal(t, "i-1", first.ID())

		for iterator.HasNext() {
			iterator.Next()
		}

		assert.Nil(t, iterator.Next())

		iterator.Reset()
		require.True(t, iterator.HasNext())
		assert.Equal(t, "i-1", iterator.Next().ID())
	})
}

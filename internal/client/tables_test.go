package client_test

import (
	"context"
	"testing"

	"github.com/licht1stein/codaio/internal/client"
	"github.com/licht1stein/codaio/pkg/coda"
)

func TestTablesClient(t *testing.T) {
	t.Parallel()

	runDocResourceSuite(t, docResourceSuite[coda.Table]{
		kind:     "table",
		basePath: "/docs/" + testDocID + "/tables",
		itemJSON: `{"id":"grid-111","name":"Tasks"}`,
		itemName: "Tasks",
		list: func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[coda.Table], error) {
			return c.Tables().List(ctx, testDocID, params)
		},
		listPage: func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[coda.Table], error) {
			return c.Tables().ListPage(ctx, testDocID, params)
		},
		get: func(ctx context.Context, c *client.Client, idOrName string) (*coda.Table, error) {
			return c.Tables().Get(ctx, testDocID, idOrName)
		},
		name: func(table *coda.Table) string { return table.Name },
	})
}

func TestColumnsClient(t *testing.T) {
	t.Parallel()

	runDocResourceSuite(t, docResourceSuite[coda.Column]{
		kind:     "column",
		basePath: "/docs/" + testDocID + "/tables/grid-111/columns",
		itemJSON: `{"id":"c-1","name":"Status","calculated":true}`,
		itemName: "Status",
		list: func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[coda.Column], error) {
			return c.Columns().List(ctx, testDocID, "grid-111", params)
		},
		listPage: func(ctx context.Context, c *client.Client, params *coda.ListParams) (*coda.Page[coda.Column], error) {
			return c.Columns().ListPage(ctx, testDocID, "grid-111", params)
		},
		get: func(ctx context.Context, c *client.Client, idOrName string) (*coda.Column, error) {
			return c.Columns().Get(ctx, testDocID, "grid-111", idOrName)
		},
		name: func(column *coda.Column) string { return column.Name },
	})
}

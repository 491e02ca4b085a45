//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/codaclient"
	"github.com/licht1stein/codaio/pkg/document"
)

// Runs against the live API with a real token. Set CODA_API_KEY, and
// optionally CODA_TEST_DOC_ID to exercise the document model against a
// known doc.
func skipWithoutToken(t *testing.T) {
	t.Helper()

	if os.Getenv("CODA_API_KEY") == "" {
		t.Skip("CODA_API_KEY not set, skipping integration test")
	}
}

func TestWhoamiIntegration(t *testing.T) {
	skipWithoutToken(t)

	ctx := context.Background()

	client, err := codaclient.NewFromEnvironment(ctx)
	require.NoError(t, err)

	user, err := client.Whoami(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, user.Name)
	assert.NotEmpty(t, user.LoginID)
}

func TestDocsListIntegration(t *testing.T) {
	skipWithoutToken(t)

	ctx := context.Background()

	client, err := codaclient.NewFromEnvironment(ctx)
	require.NoError(t, err)

	// A limited page and the full listing must agree on their prefix.
	params := coda.NewDocListParams()
	params.WithLimit(1)

	page, err := client.Docs().ListPage(ctx, params)
	require.NoError(t, err)

	all, err := client.Docs().List(ctx, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all.Items), len(page.Items))

	if len(page.Items) > 0 {
		assert.Equal(t, page.Items[0].ID, all.Items[0].ID)
	}
}

func TestDocumentModelIntegration(t *testing.T) {
	skipWithoutToken(t)

	docID := os.Getenv("CODA_TEST_DOC_ID")
	if docID == "" {
		t.Skip("CODA_TEST_DOC_ID not set, skipping document model test")
	}

	ctx := context.Background()

	doc, err := document.FromEnvironment(ctx, docID)
	require.NoError(t, err)

	name, err := doc.Name(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	tables, err := doc.Tables(ctx)
	require.NoError(t, err)

	for _, table := range tables {
		columns, err := table.Columns(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, columns, "table %s has no columns", table.ID())
	}
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/internal/http"
	"github.com/licht1stein/codaio/pkg/coda"
)

// fetchPage issues one GET for a single page of T.
func fetchPage[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, what string) (*coda.Page[T], error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	var page coda.Page[T]
	if err := http.DecodeJSON(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", what, err)
	}

	return &page, nil
}

// listAll returns the logically complete listing for path. When query
// carries a "limit" the server already caps the result, so the first page
// is the whole answer; otherwise the cursor is followed and every page's
// items are concatenated in page order. The continuation token supersedes
// all other query parameters on follow-up requests.
func listAll[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, what string) (*coda.Page[T], error) {
	page, err := fetchPage[T](ctx, httpClient, path, query, what)
	if err != nil {
		return nil, err
	}

	if query.Get("limit") != "" || !page.HasMore() {
		return page, nil
	}

	items := page.Items
	href := page.Href

	for pages := 1; page.HasMore(); pages++ {
		if pages >= constants.MaxPages {
			return nil, fmt.Errorf("listing %s: exceeded %d pages", what, constants.MaxPages)
		}

		tokenQuery := url.Values{}
		tokenQuery.Set("pageToken", nextPageToken(page))

		page, err = fetchPage[T](ctx, httpClient, path, tokenQuery, what)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
	}

	return &coda.Page[T]{Items: items, Href: href}, nil
}

// nextPageToken extracts the continuation token, falling back to the one
// embedded in the next-page link when the token field is absent.
func nextPageToken[T any](page *coda.Page[T]) string {
	if page.NextPageToken != "" {
		return page.NextPageToken
	}

	link, err := url.Parse(page.NextPageLink)
	if err != nil {
		return ""
	}

	return link.Query().Get("pageToken")
}

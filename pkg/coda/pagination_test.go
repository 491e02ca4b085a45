package coda_test

import (
	"context"
	"errors"
	"testing"

	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID string
}

var errListBroken = errors.New("listing broken")

// pagedLister serves fixed pages keyed by continuation token and counts
// the fetches it performs.
func pagedLister(pages map[string]*coda.Page[testItem], fetches *int) coda.PageListerFunc[testItem] {
	return func(ctx context.Context, req coda.PageRequest) (*coda.Page[testItem], error) {
		*fetches++

		page, ok := pages[req.PageToken]
		if !ok {
			return nil, errListBroken
		}

		return page, nil
	}
}

func threePagePages() map[string]*coda.Page[testItem] {
	return map[string]*coda.Page[testItem]{
		"": {
			Items:         []testItem{{ID: "1"}, {ID: "2"}},
			NextPageToken: "tok-2",
		},
		"tok-2": {
			Items:         []testItem{{ID: "3"}, {ID: "4"}},
			NextPageToken: "tok-3",
		},
		"tok-3": {
			Items: []testItem{{ID: "5"}},
		},
	}
}

func TestPaginationIterator(t *testing.T) {
	t.Parallel()

	t.Run("walks every page in order without duplicates", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		iterator := coda.NewPaginationIterator[testItem](context.Background(), pagedLister(threePagePages(), &fetches), nil)

		var ids []string

		for iterator.HasNext() {
			item, err := iterator.Next()
			require.NoError(t, err)

			ids = append(ids, item.ID)
		}

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
		assert.Equal(t, 3, fetches)

		_, err := iterator.Next()
		assert.ErrorIs(t, err, coda.ErrNoMoreItems)
	})

	t.Run("all drains the listing", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		iterator := coda.NewPaginationIterator[testItem](context.Background(), pagedLister(threePagePages(), &fetches), nil)

		items, err := iterator.All()
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("max pages bounds the fetches", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		iterator := coda.NewPaginationIterator[testItem](context.Background(),
			pagedLister(threePagePages(), &fetches),
			&coda.PaginationOptions{MaxPages: 2})

		items, err := iterator.All()
		require.NoError(t, err)
		assert.Len(t, items, 4)
		assert.Equal(t, 2, fetches)
	})

	t.Run("fetch error ends the iteration", func(t *testing.T) {
		t.Parallel()

		pages := threePagePages()
		delete(pages, "tok-2")

		fetches := 0
		iterator := coda.NewPaginationIterator[testItem](context.Background(), pagedLister(pages, &fetches), nil)

		items, err := iterator.All()
		require.ErrorIs(t, err, errListBroken)
		assert.Nil(t, items)
	})

	t.Run("for each stops at the first callback error", func(t *testing.T) {
		t.Parallel()

		errStop := errors.New("stop")
		fetches := 0
		iterator := coda.NewPaginationIterator[testItem](context.Background(), pagedLister(threePagePages(), &fetches), nil)

		seen := 0
		err := iterator.ForEach(func(item testItem) error {
			seen++
			if item.ID == "3" {
				return errStop
			}

			return nil
		})

		require.ErrorIs(t, err, errStop)
		assert.Equal(t, 3, seen)
	})

	t.Run("page size is passed through", func(t *testing.T) {
		t.Parallel()

		var sawLimit int

		lister := coda.PageListerFunc[testItem](func(ctx context.Context, req coda.PageRequest) (*coda.Page[testItem], error) {
			sawLimit = req.Limit

			return &coda.Page[testItem]{Items: []testItem{{ID: "1"}}}, nil
		})

		iterator := coda.NewPaginationIterator[testItem](context.Background(), lister, &coda.PaginationOptions{PageSize: 7})

		_, err := iterator.All()
		require.NoError(t, err)
		assert.Equal(t, 7, sawLimit)
	})
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	fetches := 0

	items, err := coda.FetchAllPages[testItem](context.Background(), pagedLister(threePagePages(), &fetches), nil)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 3, fetches)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	t.Run("streams every page then closes", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		results := coda.StreamPages[testItem](context.Background(), pagedLister(threePagePages(), &fetches), nil)

		var ids []string

		for result := range results {
			require.NoError(t, result.Err)

			for _, item := range result.Items {
				ids = append(ids, item.ID)
			}
		}

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
	})

	t.Run("delivers the error and closes", func(t *testing.T) {
		t.Parallel()

		pages := threePagePages()
		delete(pages, "tok-3")

		fetches := 0
		results := coda.StreamPages[testItem](context.Background(), pagedLister(pages, &fetches), nil)

		var lastErr error

		for result := range results {
			lastErr = result.Err
		}

		assert.ErrorIs(t, lastErr, errListBroken)
	})
}

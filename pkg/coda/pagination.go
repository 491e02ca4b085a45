package coda

import (
	"context"
	"fmt"
)

// PageRequest parameterizes one page fetch of a listing.
type PageRequest struct {
	// Limit is the page size to request; 0 lets the server pick.
	Limit int
	// PageToken resumes the listing; empty fetches the first page.
	PageToken string
}

// PageLister fetches one page of a listing.
type PageLister[T any] interface {
	ListPage(ctx context.Context, req PageRequest) (*Page[T], error)
}

// PageListerFunc adapts a function to the PageLister interface.
type PageListerFunc[T any] func(ctx context.Context, req PageRequest) (*Page[T], error)

// ListPage implements PageLister.
func (f PageListerFunc[T]) ListPage(ctx context.Context, req PageRequest) (*Page[T], error) {
	return f(ctx, req)
}

// PaginationOptions tunes multi-page fetches.
type PaginationOptions struct {
	// PageSize is the per-request page size; 0 uses the server default.
	PageSize int
	// MaxPages bounds the number of page fetches; 0 means unbounded.
	MaxPages int
}

// PaginationIterator walks a listing item by item, fetching pages on
// demand. It is not safe for concurrent use.
type PaginationIterator[T any] struct {
	ctx     context.Context
	lister  PageLister[T]
	options PaginationOptions
	buffer  []T
	token   string
	pages   int
	done    bool
	err     error
}

// NewPaginationIterator creates an iterator over a listing.
func NewPaginationIterator[T any](ctx context.Context, lister PageLister[T], options *PaginationOptions) *PaginationIterator[T] {
	iterator := &PaginationIterator[T]{
		ctx:    ctx,
		lister: lister,
	}
	if options != nil {
		iterator.options = *options
	}

	return iterator
}

// HasNext reports whether another item is available, fetching the next
// page when the buffered one is exhausted.
func (it *PaginationIterator[T]) HasNext() bool {
	if len(it.buffer) > 0 {
		return true
	}

	if it.done || it.err != nil {
		return false
	}

	it.fetchNextPage()

	return len(it.buffer) > 0
}

// Next returns the next item. It returns ErrNoMoreItems once the listing
// is exhausted, or the fetch error that ended it early.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All drains the remaining items into a slice.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		all = append(all, it.buffer...)
		it.buffer = nil
	}

	if it.err != nil {
		return nil, it.err
	}

	return all, nil
}

// ForEach calls fn for each remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return it.err
}

func (it *PaginationIterator[T]) fetchNextPage() {
	if it.options.MaxPages > 0 && it.pages >= it.options.MaxPages {
		it.done = true

		return
	}

	page, err := it.lister.ListPage(it.ctx, PageRequest{
		Limit:     it.options.PageSize,
		PageToken: it.token,
	})
	if err != nil {
		it.err = fmt.Errorf("fetching page: %w", err)
		it.done = true

		return
	}

	it.pages++
	it.buffer = append(it.buffer, page.Items...)
	it.token = page.NextPageToken

	if !page.HasMore() {
		it.done = true
	}
}

// FetchAllPages fetches every page of a listing and returns the
// concatenated items in page order.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], options *PaginationOptions) ([]T, error) {
	iterator := NewPaginationIterator(ctx, lister, options)

	return iterator.All()
}

// PageResult carries one fetched page or the error that ended streaming.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in a background goroutine and delivers them on
// the returned channel. The channel closes after the last page or the
// first error.
func StreamPages[T any](ctx context.Context, lister PageLister[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	var opts PaginationOptions
	if options != nil {
		opts = *options
	}

	go func() {
		defer close(results)

		token := ""
		pages := 0

		for {
			if opts.MaxPages > 0 && pages >= opts.MaxPages {
				return
			}

			page, err := lister.ListPage(ctx, PageRequest{Limit: opts.PageSize, PageToken: token})
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			pages++

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			if !page.HasMore() {
				return
			}

			token = page.NextPageToken
		}
	}()

	return results
}

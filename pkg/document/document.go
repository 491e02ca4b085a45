package document

import (
	"context"
	"fmt"

	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/codaclient"
)

// Document is a lazy view over one Coda doc. Metadata is fetched on first
// access and memoized until Refresh.
type Document struct {
	client coda.Client
	id     string

	// meta is nil until the first metadata fetch.
	meta *coda.Doc
}

// New wraps a doc id without touching the network. The first metadata
// access performs the fetch.
func New(client coda.Client, docID string) (*Document, error) {
	if client == nil {
		return nil, coda.ErrClientRequired
	}

	return &Document{client: client, id: docID}, nil
}

// Load wraps a doc id and eagerly fetches its metadata, failing fast on
// an unknown id or a bad credential.
func Load(ctx context.Context, client coda.Client, docID string) (*Document, error) {
	doc, err := New(client, docID)
	if err != nil {
		return nil, err
	}

	if _, err := doc.Meta(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// FromEnvironment builds a client from CODA_API_KEY / CODA_API_ENDPOINT
// and loads the doc.
func FromEnvironment(ctx context.Context, docID string) (*Document, error) {
	client, err := codaclient.NewFromEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	return Load(ctx, client, docID)
}

// ID returns the doc id.
func (d *Document) ID() string {
	return d.id
}

// Client returns the underlying API client, shared by every wrapper
// created from this document.
func (d *Document) Client() coda.Client {
	return d.client
}

// Meta returns the doc metadata, fetching it on first access.
func (d *Document) Meta(ctx context.Context) (*coda.Doc, error) {
	if d.meta != nil {
		return d.meta, nil
	}

	meta, err := d.client.Docs().Get(ctx, d.id)
	if err != nil {
		return nil, fmt.Errorf("loading doc %s: %w", d.id, err)
	}

	d.meta = meta

	return d.meta, nil
}

// Refresh drops the memoized metadata and reloads it.
func (d *Document) Refresh(ctx context.Context) error {
	d.meta = nil

	_, err := d.Meta(ctx)

	return err
}

// Name returns the doc name, fetching metadata on first access.
func (d *Document) Name(ctx context.Context) (string, error) {
	meta, err := d.Meta(ctx)
	if err != nil {
		return "", err
	}

	return meta.Name, nil
}

// Owner returns the doc owner, fetching metadata on first access.
func (d *Document) Owner(ctx context.Context) (string, error) {
	meta, err := d.Meta(ctx)
	if err != nil {
		return "", err
	}

	return meta.Owner, nil
}

// BrowserLink returns the doc browser link, fetching metadata on first
// access.
func (d *Document) BrowserLink(ctx context.Context) (string, error) {
	meta, err := d.Meta(ctx)
	if err != nil {
		return "", err
	}

	return meta.BrowserLink, nil
}

// Tables returns a fresh snapshot of the doc's tables. The listing is
// fully paginated and not memoized: every call reflects the remote state
// at call time.
func (d *Document) Tables(ctx context.Context) ([]*Table, error) {
	page, err := d.client.Tables().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tables of doc %s: %w", d.id, err)
	}

	tables := make([]*Table, 0, len(page.Items))
	for i := range page.Items {
		tables = append(tables, newTable(d.client, d.id, &page.Items[i]))
	}

	return tables, nil
}

// Table resolves one table by id or name. An input with the table id
// shape is fetched directly; anything else is matched against table names
// in listing order. No match fails with coda.ErrNotFound; more than one
// match fails with coda.AmbiguousReferenceError, because table names are
// not unique and this method promises a unique target.
func (d *Document) Table(ctx context.Context, idOrName string) (*Table, error) {
	if coda.IsTableID(idOrName) {
		meta, err := d.client.Tables().Get(ctx, d.id, idOrName)
		if err != nil {
			return nil, fmt.Errorf("getting table %s: %w", idOrName, err)
		}

		return newTable(d.client, d.id, meta), nil
	}

	page, err := d.client.Tables().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tables of doc %s: %w", d.id, err)
	}

	var matches []*coda.Table

	for i := range page.Items {
		if page.Items[i].Name == idOrName {
			matches = append(matches, &page.Items[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("table %q in doc %s: %w", idOrName, d.id, coda.ErrNotFound)
	case 1:
		return newTable(d.client, d.id, matches[0]), nil
	default:
		return nil, ambiguous("table", idOrName, matches, func(t *coda.Table) string { return t.ID })
	}
}

// Sections returns a fresh snapshot of the doc's sections.
func (d *Document) Sections(ctx context.Context) ([]coda.Section, error) {
	page, err := d.client.Sections().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing sections of doc %s: %w", d.id, err)
	}

	return page.Items, nil
}

// Section resolves one section by id or name, with the same uniqueness
// contract as Table.
func (d *Document) Section(ctx context.Context, idOrName string) (*coda.Section, error) {
	if coda.IsSectionID(idOrName) {
		section, err := d.client.Sections().Get(ctx, d.id, idOrName)
		if err != nil {
			return nil, fmt.Errorf("getting section %s: %w", idOrName, err)
		}

		return section, nil
	}

	page, err := d.client.Sections().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing sections of doc %s: %w", d.id, err)
	}

	return uniqueByName("section", idOrName, page.Items,
		func(s *coda.Section) string { return s.Name },
		func(s *coda.Section) string { return s.ID })
}

// Folders returns a fresh snapshot of the doc's folders.
func (d *Document) Folders(ctx context.Context) ([]coda.Folder, error) {
	page, err := d.client.Folders().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing folders of doc %s: %w", d.id, err)
	}

	return page.Items, nil
}

// Folder resolves one folder by id or name, with the same uniqueness
// contract as Table.
func (d *Document) Folder(ctx context.Context, idOrName string) (*coda.Folder, error) {
	if coda.IsFolderID(idOrName) {
		folder, err := d.client.Folders().Get(ctx, d.id, idOrName)
		if err != nil {
			return nil, fmt.Errorf("getting folder %s: %w", idOrName, err)
		}

		return folder, nil
	}

	page, err := d.client.Folders().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing folders of doc %s: %w", d.id, err)
	}

	return uniqueByName("folder", idOrName, page.Items,
		func(f *coda.Folder) string { return f.Name },
		func(f *coda.Folder) string { return f.ID })
}

// Views returns a fresh snapshot of the doc's views.
func (d *Document) Views(ctx context.Context) ([]coda.View, error) {
	page, err := d.client.Views().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing views of doc %s: %w", d.id, err)
	}

	return page.Items, nil
}

// View resolves one view by id or name, with the same uniqueness contract
// as Table.
func (d *Document) View(ctx context.Context, idOrName string) (*coda.View, error) {
	if coda.IsViewID(idOrName) {
		view, err := d.client.Views().Get(ctx, d.id, idOrName)
		if err != nil {
			return nil, fmt.Errorf("getting view %s: %w", idOrName, err)
		}

		return view, nil
	}

	page, err := d.client.Views().List(ctx, d.id, nil)
	if err != nil {
		return nil, fmt.Errorf("listing views of doc %s: %w", d.id, err)
	}

	return uniqueByName("view", idOrName, page.Items,
		func(v *coda.View) string { return v.Name },
		func(v *coda.View) string { return v.ID })
}

// uniqueByName scans items in listing order for a display-name match and
// enforces the uniqueness contract shared by the singular resolvers.
func uniqueByName[T any](kind, name string, items []T, nameOf, idOf func(*T) string) (*T, error) {
	var matches []*T

	for i := range items {
		if nameOf(&items[i]) == name {
			matches = append(matches, &items[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s %q: %w", kind, name, coda.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, ambiguous(kind, name, matches, idOf)
	}
}

func ambiguous[T any](kind, name string, matches []*T, idOf func(*T) string) error {
	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, idOf(match))
	}

	return &coda.AmbiguousReferenceError{Kind: kind, Name: name, Matches: ids}
}

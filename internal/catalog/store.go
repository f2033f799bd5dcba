package catalog

import "sync/atomic"

// Store is the immutable, ordered content store.
type Store struct {
	articles []Article
	tags     TagIndex
}

// NewStore copies and normalizes articles and builds the tag index once.
func NewStore(articles []Article) *Store {
	items := make([]Article, 0, len(articles))
	for _, a := range articles {
		items = append(items, normalizeArticle(a))
	}
	return &Store{
		articles: items,
		tags:     BuildTagIndex(items),
	}
}

// Len returns the number of articles.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.articles)
}

// At returns the i-th article, or nil when i is out of range.
func (s *Store) At(i int) *Article {
	if s == nil || i < 0 || i >= len(s.articles) {
		return nil
	}
	return &s.articles[i]
}

// Articles returns every article in store order. The pointers refer to store entries.
func (s *Store) Articles() []*Article {
	if s == nil {
		return nil
	}
	out := make([]*Article, len(s.articles))
	for i := range s.articles {
		out[i] = &s.articles[i]
	}
	return out
}

// Tags returns the tag index computed when the store was built.
func (s *Store) Tags() TagIndex {
	if s == nil {
		return TagIndex{}
	}
	return s.tags
}

// BySlug finds the article backed by a local page.
func (s *Store) BySlug(slug string) (*Article, bool) {
	if s == nil || slug == "" {
		return nil, false
	}
	for i := range s.articles {
		if s.articles[i].Slug == slug {
			return &s.articles[i], true
		}
	}
	return nil, false
}

// Source publishes the current store to concurrent readers. Reloads swap the whole store.
type Source struct {
	current atomic.Pointer[Store]
}

// NewSource returns a Source serving store.
func NewSource(store *Store) *Source {
	src := &Source{}
	src.Swap(store)
	return src
}

// Store returns the current store.
func (src *Source) Store() *Store {
	if s := src.current.Load(); s != nil {
		return s
	}
	return NewStore(nil)
}

// Swap replaces the current store.
func (src *Source) Swap(store *Store) {
	if store == nil {
		store = NewStore(nil)
	}
	src.current.Store(store)
}

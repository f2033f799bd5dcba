package catalog

// Filter returns the articles carrying every enabled tag, in store order.
// With no tag enabled the whole store is returned.
func Filter(store *Store, state FilterState) []*Article {
	return FilterArticles(store.Articles(), state)
}

// FilterArticles applies the conjunctive tag filter to an article sequence.
func FilterArticles(articles []*Article, state FilterState) []*Article {
	out := make([]*Article, 0, len(articles))
	for _, a := range articles {
		if matchesAll(a, state.enabled) {
			out = append(out, a)
		}
	}
	return out
}

func matchesAll(a *Article, tags []string) bool {
	for _, t := range tags {
		if !a.HasTag(t) {
			return false
		}
	}
	return true
}

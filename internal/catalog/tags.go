package catalog

// TagCount is one entry of a TagIndex.
type TagCount struct {
	Name  string
	Count int
}

// TagIndex maps tag names to the number of articles carrying them.
// Keys keep the order in which tags first appear across the article sequence.
type TagIndex struct {
	order  []string
	counts map[string]int
}

// BuildTagIndex counts, per tag, the articles carrying it. A tag repeated within
// one article counts once; blank tags and empty tag sets contribute nothing.
func BuildTagIndex(articles []Article) TagIndex {
	idx := TagIndex{counts: map[string]int{}}
	for i := range articles {
		seen := make(map[string]struct{}, len(articles[i].Tags))
		for _, tag := range articles[i].Tags {
			tag = normalizeTag(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			if _, known := idx.counts[tag]; !known {
				idx.order = append(idx.order, tag)
			}
			idx.counts[tag]++
		}
	}
	return idx
}

// Len returns the number of distinct tags.
func (idx TagIndex) Len() int { return len(idx.order) }

// Count returns how many articles carry tag; zero when unknown.
func (idx TagIndex) Count(tag string) int { return idx.counts[tag] }

// Has reports whether tag appears in at least one article.
func (idx TagIndex) Has(tag string) bool {
	_, ok := idx.counts[tag]
	return ok
}

// Names returns tag names in first-occurrence order.
func (idx TagIndex) Names() []string {
	out := make([]string, len(idx.order))
	copy(out, idx.order)
	return out
}

// Entries returns tag counts in first-occurrence order.
func (idx TagIndex) Entries() []TagCount {
	out := make([]TagCount, 0, len(idx.order))
	for _, name := range idx.order {
		out = append(out, TagCount{Name: name, Count: idx.counts[name]})
	}
	return out
}

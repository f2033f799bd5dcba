package catalog

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleStore() *Store {
	return NewStore([]Article{
		{Title: "item0", Tags: []string{"x"}},
		{Title: "item1", Tags: []string{"y"}},
		{Title: "item2", Tags: []string{"x", "y"}},
	})
}

func titles(articles []*Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}

func TestFilterIsConjunctive(t *testing.T) {
	t.Parallel()

	store := sampleStore()
	cases := []struct {
		name    string
		enabled []string
		want    []string
	}{
		{name: "none enabled", enabled: nil, want: []string{"item0", "item1", "item2"}},
		{name: "x", enabled: []string{"x"}, want: []string{"item0", "item2"}},
		{name: "y", enabled: []string{"y"}, want: []string{"item1", "item2"}},
		{name: "x and y", enabled: []string{"x", "y"}, want: []string{"item2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := titles(Filter(store, NewFilterState(tc.enabled...)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("filtered view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterUnknownTagYieldsEmptyView(t *testing.T) {
	t.Parallel()

	store := sampleStore()
	require.Empty(t, Filter(store, NewFilterState().Toggle("z")))
}

func TestFilterReturnsStoreEntriesInOrder(t *testing.T) {
	t.Parallel()

	store := Default()
	all := store.Articles()
	states := []FilterState{
		NewFilterState(),
		NewFilterState("javascript"),
		NewFilterState("javascript", "promises"),
		NewFilterState("functional-programming", "learning"),
		NewFilterState("career", "react"),
	}
	for _, state := range states {
		view := Filter(store, state)
		// every element must be a store entry appearing after the previous one
		next := 0
		for _, a := range view {
			found := false
			for next < len(all) {
				if all[next] == a {
					found = true
					next++
					break
				}
				next++
			}
			require.Truef(t, found, "article %q is not an ordered store entry for %v", a.Title, state.EnabledTags())
		}
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	store := sampleStore()
	start := NewFilterState("x")
	before := Filter(store, start)

	for _, tag := range []string{"x", "y", "z"} {
		round := start.Toggle(tag).Toggle(tag)
		require.True(t, round.Equal(start), "toggle %q twice should restore the state", tag)
		require.Equal(t, before, Filter(store, round))
	}
}

func TestTogglePaddedTagNamesSameTag(t *testing.T) {
	t.Parallel()

	empty := NewFilterState()
	once := empty.Toggle(" x ")
	require.Equal(t, []string{"x"}, once.EnabledTags())
	require.True(t, once.Enabled(" x"))
	require.True(t, once.Toggle(" x ").Equal(empty))

	require.True(t, NewFilterState("x").Toggle(" x").Empty())
	require.True(t, NewFilterState("x").Toggle(" ").Equal(NewFilterState("x")))
}

func TestToggleLeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	start := NewFilterState("x")
	next := start.Toggle("y")
	require.Equal(t, []string{"x"}, start.EnabledTags())
	require.Equal(t, []string{"x", "y"}, next.EnabledTags())

	off := next.Toggle("x")
	require.Equal(t, []string{"y"}, off.EnabledTags())
	require.Equal(t, []string{"x", "y"}, next.EnabledTags())
}

func TestDisablingNeverEnabledTagIsNoop(t *testing.T) {
	t.Parallel()

	store := sampleStore()
	start := NewFilterState("y")
	next := start.Set("x", false)
	require.True(t, next.Equal(start))
	require.Equal(t, Filter(store, start), Filter(store, next))
}

func TestBuildTagIndexCountsInFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	idx := sampleStore().Tags()
	want := []TagCount{{Name: "x", Count: 2}, {Name: "y", Count: 2}}
	if diff := cmp.Diff(want, idx.Entries()); diff != "" {
		t.Fatalf("tag index mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, idx.Count("z"))
	require.False(t, idx.Has("z"))
}

func TestBuildTagIndexIgnoresEmptyTagSets(t *testing.T) {
	t.Parallel()

	idx := BuildTagIndex([]Article{{Title: "a"}, {Title: "b", Tags: []string{"go"}}, {Title: "c"}})
	require.Equal(t, []string{"go"}, idx.Names())
	require.Equal(t, BuildTagIndex(nil).Len(), 0)
}

func TestBuildTagIndexCountsArticlesNotOccurrences(t *testing.T) {
	t.Parallel()

	idx := BuildTagIndex([]Article{
		{Title: "a", Tags: []string{"x", "x", " x "}},
		{Title: "b", Tags: []string{"y", "", "x"}},
	})
	want := []TagCount{{Name: "x", Count: 2}, {Name: "y", Count: 1}}
	if diff := cmp.Diff(want, idx.Entries()); diff != "" {
		t.Fatalf("tag index mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAtOutOfRange(t *testing.T) {
	t.Parallel()

	store := sampleStore()
	require.Equal(t, "item2", store.At(2).Title)
	require.Nil(t, store.At(3))
	require.Nil(t, store.At(-1))

	var none *Store
	require.Nil(t, none.At(0))
}

func TestNewStoreNormalizesTags(t *testing.T) {
	t.Parallel()

	store := NewStore([]Article{{Title: " spaced ", Tags: []string{" go ", "", "go", "web"}}})
	a := store.At(0)
	require.Equal(t, "spaced", a.Title)
	require.Equal(t, []string{"go", "web"}, a.Tags)
	require.Equal(t, 1, store.Tags().Count("go"))
}

func TestParseFilterStateRoundTripsQuery(t *testing.T) {
	t.Parallel()

	q := url.Values{TagParam: {"react", " ", "javascript", "react"}}
	state := ParseFilterState(q)
	require.Equal(t, []string{"react", "javascript"}, state.EnabledTags())
	require.Equal(t, "tag=react&tag=javascript", state.Query())
	require.Equal(t, "", NewFilterState().Query())
}

func TestControllerNotifiesOnChangeOnly(t *testing.T) {
	t.Parallel()

	c := NewController(sampleStore(), FilterState{})
	var seen []FilterState
	unsubscribe := c.Subscribe(func(s FilterState) { seen = append(seen, s) })

	c.Toggle("x")
	require.Len(t, seen, 1)
	require.Equal(t, []string{"item0", "item2"}, titles(c.View()))

	c.Set("y", false)
	require.Len(t, seen, 1, "disabling a tag that is not enabled must not notify")

	c.Toggle("y")
	require.Len(t, seen, 2)
	require.Equal(t, []string{"item2"}, titles(c.View()))

	unsubscribe()
	c.Toggle("x")
	require.Len(t, seen, 2)
	require.Equal(t, []string{"item1", "item2"}, titles(c.View()))
}

func TestControllerOptionsCarryToggledState(t *testing.T) {
	t.Parallel()

	c := NewController(sampleStore(), NewFilterState("x"))
	opts := c.Options()
	require.Len(t, opts, 2)

	require.Equal(t, "x", opts[0].Name)
	require.True(t, opts[0].Enabled)
	require.True(t, opts[0].Toggled.Empty())

	require.Equal(t, "y", opts[1].Name)
	require.False(t, opts[1].Enabled)
	require.Equal(t, []string{"x", "y"}, opts[1].Toggled.EnabledTags())
}

func TestOrderedLinksUseHereURL(t *testing.T) {
	t.Parallel()

	store := NewStore([]Article{{
		Title: "local",
		Slug:  "Local-Post",
		Links: Links{LinkMedium: "https://medium.com/p", LinkDevTo: "https://dev.to/p"},
	}})
	links := store.At(0).OrderedLinks()
	require.Len(t, links, 3)
	require.Equal(t, Link{Kind: LinkHere, Label: "here", URL: "/articles/local-post"}, links[0])
	require.Equal(t, "dev.to", links[1].Label)
	require.True(t, links[1].External)
	require.Equal(t, LinkMedium, links[2].Kind)
}

func TestParseRejectsAuthoringMistakes(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("articles:\n  - links:\n      devto: https://dev.to/x\n"))
	require.ErrorContains(t, err, "missing title")

	_, err = Parse([]byte("articles:\n  - title: A\n    links:\n      myspace: https://example.com\n"))
	require.ErrorContains(t, err, "unknown link kind")
}

func TestParseBuildsStore(t *testing.T) {
	t.Parallel()

	store, err := Parse([]byte(`
articles:
  - title: First
    links:
      devto: https://dev.to/first
    tags: [go, web]
  - title: Second
    slug: second
    tags: [go]
`))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	require.Equal(t, []TagCount{{Name: "go", Count: 2}, {Name: "web", Count: 1}}, store.Tags().Entries())

	a, ok := store.BySlug("second")
	require.True(t, ok)
	require.Equal(t, "Second", a.Title)
	require.Equal(t, "/articles/second", a.Links[LinkHere])
}

func TestSourceSwapsStore(t *testing.T) {
	t.Parallel()

	src := NewSource(sampleStore())
	require.Equal(t, 3, src.Store().Len())
	src.Swap(nil)
	require.Equal(t, 0, src.Store().Len())
}

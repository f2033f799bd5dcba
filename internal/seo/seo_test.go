package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptionStripsMarkupAndCode(t *testing.T) {
	t.Parallel()

	got := Description(`<h1>Intro</h1><p>Promises   are <em>values</em>.</p><pre><code>const x = 1;</code></pre><p>The end.</p>`, 0)
	require.Equal(t, "Intro Promises are values . The end.", got)
}

func TestDescriptionTruncatesOnWordBoundary(t *testing.T) {
	t.Parallel()

	got := Description("<p>one two three four five</p>", 12)
	require.Equal(t, "one two…", got)
	require.LessOrEqual(t, len([]rune(got)), 12)
}

func TestDescriptionNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abcd…", Description("<p>abcdefghij</p>", 5))
	require.Equal(t, "ąćę…", Description("<p>ąćęłńóśźż</p>", 4))
	require.Equal(t, "abcde", Description("<p>abcde</p>", 5))

	long := strings.Repeat("word ", 100)
	for _, limit := range []int{1, 2, 7, 40, 160} {
		got := Description(long, limit)
		require.LessOrEqual(t, len([]rune(got)), limit, "limit %d", limit)
	}
}

func TestArticleSchema(t *testing.T) {
	t.Parallel()

	m := Article("Title", "https://example.com/a", "Author", "2020-06-14", []string{"go"})
	out := JSON(m)
	require.True(t, strings.Contains(out, `"@type":"Article"`))
	require.True(t, strings.Contains(out, `"keywords":["go"]`))

	p := Person("Author", "", "", "", "https://twitter.com/x")
	require.Equal(t, []string{"https://twitter.com/x"}, p["sameAs"])
	_, hasEmail := p["email"]
	require.False(t, hasEmail)
}

package matcher_test

import (
	"strings"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		contents string
		policy   model.CasePolicy
		wantRes  []string
	}{
		{
			name:     "Positive - one result case sensitive",
			query:    "duct",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.",
			policy:   model.Sensitive,
			wantRes:  []string{"safe, fast, productive."},
		},
		{
			name:     "Positive - case insensitive keeps original case",
			query:    "rUsT",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			policy:   model.Insensitive,
			wantRes:  []string{"Rust:", "Trust me."},
		},
		{
			name:     "Positive - empty query matches every line",
			query:    "",
			contents: "abc\ndef",
			policy:   model.Sensitive,
			wantRes:  []string{"abc", "def"},
		},
		{
			name:     "Positive - empty query insensitive matches blank lines too",
			query:    "",
			contents: "abc\n\n   \ndef",
			policy:   model.Insensitive,
			wantRes:  []string{"abc", "", "   ", "def"},
		},
		{
			name:     "Negative - empty contents",
			query:    "abc",
			contents: "",
			policy:   model.Sensitive,
			wantRes:  []string{},
		},
		{
			name:     "Negative - empty contents with empty query",
			query:    "",
			contents: "",
			policy:   model.Insensitive,
			wantRes:  []string{},
		},
		{
			name:     "Positive - repeated match gives the line once",
			query:    "aa",
			contents: "aaaaaa\nb\naa",
			policy:   model.Sensitive,
			wantRes:  []string{"aaaaaa", "aa"},
		},
		{
			name:     "Positive - CRLF line endings are stripped",
			query:    "line",
			contents: "line1\r\nother\r\nline3\r\n",
			policy:   model.Sensitive,
			wantRes:  []string{"line1", "line3"},
		},
		{
			name:     "Negative - sensitive misses other case",
			query:    "RUST",
			contents: "Rust:\nTrust me.",
			policy:   model.Sensitive,
			wantRes:  []string{},
		},
		{
			name:     "Negative - whitespace lines don't match non-empty query",
			query:    "x",
			contents: " \n\t\n",
			policy:   model.Sensitive,
			wantRes:  []string{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res := matcher.Search(tt.query, tt.contents, tt.policy)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestSearchIdempotent(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	first := matcher.Search("t", contents, model.Insensitive)
	second := matcher.Search("t", contents, model.Insensitive)

	require.Equal(t, first, second)
	require.NotEmpty(t, first)
}

func TestSearchReturnsViewsIntoContents(t *testing.T) {
	contents := "first\nsecond match\nthird MATCH"

	res := matcher.Search("match", contents, model.Insensitive)

	require.Equal(t, []string{"second match", "third MATCH"}, res)
	for _, line := range res {
		require.True(t, strings.Contains(contents, line), "line %q is not part of contents", line)
	}
}

func TestLines(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantRes  []string
	}{
		{name: "Empty", contents: "", wantRes: []string{}},
		{name: "Single line without break", contents: "abc", wantRes: []string{"abc"}},
		{name: "Trailing break adds no line", contents: "abc\n", wantRes: []string{"abc"}},
		{name: "Only break", contents: "\n", wantRes: []string{""}},
		{name: "Empty line in the middle", contents: "a\n\nb", wantRes: []string{"a", "", "b"}},
		{name: "CRLF", contents: "a\r\nb\r\n", wantRes: []string{"a", "b"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantRes, matcher.Lines(tt.contents))
		})
	}
}

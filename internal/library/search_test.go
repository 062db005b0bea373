package library

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/promptlib/internal/models"
)

func searchFixture(t *testing.T) *Store {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, store.Reset())

	fixtures := []struct {
		id, name, category string
		tags               []string
		content, desc      string
	}{
		{"review", "Weekly Review", "planning", []string{"weekly"}, "Plan the week", ""},
		{"deep-review", "Deep Dive", "planning", []string{"review"}, "Go deep", ""},
		{"notes", "Meeting Notes", "writing", nil, "Take notes", "for review meetings"},
		{"unrelated", "Unrelated", "misc", nil, "nothing to see", ""},
	}
	for _, f := range fixtures {
		_, err := store.Create(f.id, f.name, f.category, f.tags, f.content, f.desc)
		require.NoError(t, err)
	}
	return store
}

func ids(templates []*models.Template) []string {
	out := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, tmpl.ID)
	}
	return out
}

func TestSearchTierOrdering(t *testing.T) {
	store := searchFixture(t)

	results := store.Search("review")

	// Exact id first, then id/name substring, then tag, then
	// description/content; ids ordered within a tier.
	require.Equal(t, "review", results[0].ID)
	got := ids(results)
	require.Contains(t, got, "deep-review")
	require.Contains(t, got, "notes")
	require.NotContains(t, got, "unrelated")

	posDeep := indexOf(got, "deep-review")
	posNotes := indexOf(got, "notes")
	require.Less(t, posDeep, posNotes)

	// Builtin code-review matches on id substring, same tier as deep-review.
	posCodeReview := indexOf(got, "code-review")
	require.Greater(t, posCodeReview, 0)
	require.Less(t, posCodeReview, posDeep)
}

func TestSearchCaseInsensitive(t *testing.T) {
	store := searchFixture(t)

	require.Equal(t, ids(store.Search("REVIEW")), ids(store.Search("review")))
	require.Contains(t, ids(store.Search("wEeKlY")), "review")
}

func TestSearchEmptyQueryEqualsList(t *testing.T) {
	store := searchFixture(t)

	require.Equal(t, ids(store.List()), ids(store.Search("")))
}

func TestSearchResultsSubsetOfList(t *testing.T) {
	store := searchFixture(t)

	all := make(map[string]bool)
	for _, tmpl := range store.List() {
		all[tmpl.ID] = true
	}
	for _, tmpl := range store.Search("review") {
		require.True(t, all[tmpl.ID])
	}
}

func TestSearchNoMatch(t *testing.T) {
	store := searchFixture(t)
	require.Empty(t, store.Search("zzz-no-such-thing"))
}

func TestByCategory(t *testing.T) {
	store := searchFixture(t)

	results := store.ByCategory("PLANNING")
	require.Equal(t, []string{"deep-review", "review"}, ids(results))

	require.Empty(t, store.ByCategory("plan")) // exact match only
}

func TestByTag(t *testing.T) {
	store := searchFixture(t)

	require.Equal(t, []string{"deep-review"}, ids(store.ByTag("Review")))
	require.Empty(t, store.ByTag("rev")) // exact match only
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}

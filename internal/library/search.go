package library

import (
	"sort"
	"strings"

	"github.com/opencode-ai/promptlib/internal/models"
)

// Match tiers, best first. A template's tier is the strongest field the
// query matched.
const (
	matchExactID = iota
	matchName
	matchTag
	matchContent
	matchNone
)

// Search returns the templates matching query, ordered by relevance then
// id. Matching is case-insensitive substring over id, name, description,
// tags and the current version's content; an exact id match ranks first,
// then name/id substring matches, then tag matches, then description or
// content matches. An empty query matches every template and returns the
// same ordering as List. The result is recomputed from the current
// snapshot on each call.
func (s *Store) Search(query string) []*models.Template {
	if query == "" {
		return s.List()
	}
	q := strings.ToLower(query)

	type match struct {
		tier int
		tmpl *models.Template
	}
	var matches []match
	for _, tmpl := range s.templates {
		tier := matchTier(tmpl, q)
		if tier == matchNone {
			continue
		}
		matches = append(matches, match{tier: tier, tmpl: tmpl})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].tier != matches[j].tier {
			return matches[i].tier < matches[j].tier
		}
		return matches[i].tmpl.ID < matches[j].tmpl.ID
	})

	results := make([]*models.Template, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.tmpl)
	}
	return results
}

// ByCategory returns the templates in the given category (exact,
// case-insensitive), ordered by id.
func (s *Store) ByCategory(category string) []*models.Template {
	return s.filter(func(tmpl *models.Template) bool {
		return strings.EqualFold(tmpl.Category, category)
	})
}

// ByTag returns the templates carrying the given tag (exact,
// case-insensitive), ordered by id.
func (s *Store) ByTag(tag string) []*models.Template {
	return s.filter(func(tmpl *models.Template) bool {
		for _, t := range tmpl.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

func (s *Store) filter(keep func(*models.Template) bool) []*models.Template {
	var results []*models.Template
	for _, tmpl := range s.templates {
		if keep(tmpl) {
			results = append(results, tmpl)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

func matchTier(tmpl *models.Template, q string) int {
	id := strings.ToLower(tmpl.ID)
	if id == q {
		return matchExactID
	}
	if strings.Contains(id, q) || strings.Contains(strings.ToLower(tmpl.Name), q) {
		return matchName
	}
	for _, tag := range tmpl.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return matchTag
		}
	}
	if strings.Contains(strings.ToLower(tmpl.Description), q) ||
		strings.Contains(strings.ToLower(tmpl.Current()), q) {
		return matchContent
	}
	return matchNone
}

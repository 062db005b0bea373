// Package library implements the persistent prompt template store: an
// id-keyed collection of templates backed by a single JSON document that
// is rewritten wholesale after every mutation.
package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/promptlib/internal/models"
)

// Store owns the full collection of templates. It is not safe for
// concurrent use; promptlib runs one operation at a time.
type Store struct {
	path      string
	templates map[string]*models.Template
	logger    zerolog.Logger
}

// Open loads the store persisted at path. A missing file is a first run:
// the builtin catalog is seeded and written to disk. An unreadable or
// unparseable file also starts the store from the builtin catalog, but
// only in memory, so the damaged file is never overwritten; the problem
// is logged, never fatal.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := s.seedDefaults(); err != nil {
			return nil, err
		}
		if err := s.save(); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("could not write initial library file")
		}
		return s, nil
	case err != nil:
		logger.Warn().Err(err).Str("path", path).Msg("library file unreadable, starting from builtin defaults")
		if err := s.seedDefaults(); err != nil {
			return nil, err
		}
		return s, nil
	}

	doc, err := models.ParseDocument(data)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("library file corrupt, starting from builtin defaults")
		if err := s.seedDefaults(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.templates = make(map[string]*models.Template, len(doc.Templates))
	for _, tmpl := range doc.Templates {
		s.templates[tmpl.ID] = tmpl
	}
	logger.Debug().Str("path", path).Int("templates", len(s.templates)).Msg("library loaded")
	return s, nil
}

// Path returns the library file location.
func (s *Store) Path() string {
	return s.path
}

// Count returns the number of templates in the store.
func (s *Store) Count() int {
	return len(s.templates)
}

// Create adds a new template with a single initial version and persists
// the store. The id is caller-assigned and immutable afterwards.
func (s *Store) Create(id, name, category string, tags []string, content, description string) (*models.Template, error) {
	if !models.ValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, exists := s.templates[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	tmpl := &models.Template{
		ID:          id,
		Name:        name,
		Category:    category,
		Tags:        normalizeTags(tags),
		Description: description,
		Versions: []models.Version{
			{Content: content, CreatedAt: time.Now().UTC()},
		},
		CurrentVersion: 0,
	}
	s.templates[id] = tmpl

	if err := s.save(); err != nil {
		delete(s.templates, id)
		return nil, err
	}
	return tmpl, nil
}

// Get returns the template with the given id.
func (s *Store) Get(id string) (*models.Template, error) {
	tmpl, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return tmpl, nil
}

// Update appends a new version with the given content, makes it current
// and persists the store. Earlier versions are never modified.
func (s *Store) Update(id, content string) (*models.Template, error) {
	tmpl, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	prevCurrent := tmpl.CurrentVersion
	tmpl.Versions = append(tmpl.Versions, models.Version{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	tmpl.CurrentVersion = len(tmpl.Versions) - 1

	if err := s.save(); err != nil {
		tmpl.Versions = tmpl.Versions[:len(tmpl.Versions)-1]
		tmpl.CurrentVersion = prevCurrent
		return nil, err
	}
	return tmpl, nil
}

// Remove deletes the template with the given id and persists the store.
// Removing an absent id fails; a second removal is an error.
func (s *Store) Remove(id string) error {
	tmpl, ok := s.templates[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(s.templates, id)
	if err := s.save(); err != nil {
		s.templates[id] = tmpl
		return err
	}
	return nil
}

// List returns every template grouped by category (categories sorted
// lexicographically) and by id within a category. The slice is recomputed
// from the current snapshot on each call.
func (s *Store) List() []*models.Template {
	all := make([]*models.Template, 0, len(s.templates))
	for _, tmpl := range s.templates {
		all = append(all, tmpl)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Category != all[j].Category {
			return all[i].Category < all[j].Category
		}
		return all[i].ID < all[j].ID
	})
	return all
}

// Reset discards all templates, re-seeds the builtin catalog and persists
// the store. It is irreversible.
func (s *Store) Reset() error {
	if err := s.seedDefaults(); err != nil {
		return err
	}
	return s.save()
}

// AllTags returns every distinct tag across all templates, sorted
// lexicographically.
func (s *Store) AllTags() []string {
	counts := s.TagCounts()
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagCounts returns each distinct tag with the number of templates that
// carry it.
func (s *Store) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, tmpl := range s.templates {
		for _, tag := range tmpl.Tags {
			counts[tag]++
		}
	}
	return counts
}

// seedDefaults replaces the store contents with the builtin catalog. It
// does not persist; callers that mutate durable state save afterwards.
func (s *Store) seedDefaults() error {
	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return err
	}
	s.templates = make(map[string]*models.Template, len(builtins))
	for _, tmpl := range builtins {
		s.templates[tmpl.ID] = tmpl
	}
	return nil
}

// save serializes the whole store and atomically replaces the library
// file, so a crash mid-write never leaves a partial document behind.
func (s *Store) save() error {
	doc := s.document()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode library", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "create library dir", Path: dir, Err: err}
		}
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return &PersistenceError{Op: "write library", Path: s.path, Err: err}
	}
	s.logger.Debug().Str("path", s.path).Int("templates", len(s.templates)).Msg("library saved")
	return nil
}

func (s *Store) document() *models.Document {
	listed := s.List()
	doc := &models.Document{Templates: make([]*models.Template, 0, len(listed))}
	for _, tmpl := range listed {
		doc.Templates = append(doc.Templates, tmpl.Clone())
	}
	return doc
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

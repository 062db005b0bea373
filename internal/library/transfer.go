package library

import (
	"fmt"

	"github.com/opencode-ai/promptlib/internal/models"
)

// ImportMode selects how an imported document is combined with the store.
type ImportMode string

// Supported import modes.
const (
	ModeMerge   ImportMode = "merge"
	ModeReplace ImportMode = "replace"
)

// ParseImportMode converts a string to an ImportMode.
func ParseImportMode(s string) (ImportMode, error) {
	switch s {
	case "merge", "":
		return ModeMerge, nil
	case "replace":
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("unknown import mode %q (expected merge or replace)", s)
	}
}

// ImportStats summarizes the effect of an import.
type ImportStats struct {
	// Added counts templates inserted with their full history.
	Added int `json:"added"`
	// Merged counts existing templates that had the incoming latest
	// version appended.
	Merged int `json:"merged"`
}

// Export returns a complete snapshot of the store: every template with
// its full version history. The document is usable directly as a library
// file and as input to Import.
func (s *Store) Export() *models.Document {
	return s.document()
}

// Import combines doc with the store and persists the result once.
//
// ModeReplace discards the current contents and loads the document
// verbatim. ModeMerge inserts unknown ids unchanged, history included;
// for an id that already exists it appends the incoming document's latest
// version onto the existing history and makes it current, so neither
// side's history is silently discarded.
func (s *Store) Import(doc *models.Document, mode ImportMode) (*ImportStats, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	stats := &ImportStats{}
	switch mode {
	case ModeReplace:
		s.templates = make(map[string]*models.Template, len(doc.Templates))
		for _, incoming := range doc.Templates {
			s.templates[incoming.ID] = incoming.Clone()
			stats.Added++
		}
	case ModeMerge:
		for _, incoming := range doc.Templates {
			existing, ok := s.templates[incoming.ID]
			if !ok {
				s.templates[incoming.ID] = incoming.Clone()
				stats.Added++
				continue
			}
			latest := incoming.Versions[len(incoming.Versions)-1]
			existing.Versions = append(existing.Versions, latest)
			existing.CurrentVersion = len(existing.Versions) - 1
			stats.Merged++
		}
	default:
		return nil, fmt.Errorf("unknown import mode %q", mode)
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Package models defines the core data types for promptlib.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Version is one immutable snapshot of a template's content. Editing a
// template appends a new Version; existing versions are never modified.
type Version struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Template is a named, categorized piece of text containing {{variable}}
// placeholders, tracked with an append-only version history.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Description string    `json:"description,omitempty"`
	Versions    []Version `json:"versions"`

	// CurrentVersion indexes the active entry in Versions.
	CurrentVersion int `json:"current_version"`
}

// Current returns the content of the active version.
func (t *Template) Current() string {
	if t.CurrentVersion < 0 || t.CurrentVersion >= len(t.Versions) {
		return ""
	}
	return t.Versions[t.CurrentVersion].Content
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() *Template {
	clone := *t
	clone.Tags = append([]string(nil), t.Tags...)
	clone.Versions = append([]Version(nil), t.Versions...)
	return &clone
}

// Validate checks that the template has the shape required for storage.
func (t *Template) Validate() error {
	if !ValidID(t.ID) {
		return &MalformedDocumentError{Reason: fmt.Sprintf("invalid template id %q", t.ID)}
	}
	if len(t.Versions) == 0 {
		return &MalformedDocumentError{Reason: fmt.Sprintf("template %q has no versions", t.ID)}
	}
	if t.CurrentVersion < 0 || t.CurrentVersion >= len(t.Versions) {
		return &MalformedDocumentError{Reason: fmt.Sprintf("template %q current_version %d out of range", t.ID, t.CurrentVersion)}
	}
	return nil
}

// ValidID reports whether id is usable as a stable external reference.
// IDs are restricted to ASCII letters, digits, '-' and '_'.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// Document is the persisted-state and export shape of a library: every
// template with its full version history.
type Document struct {
	Templates []*Template `json:"templates"`
}

// Validate checks the whole document, returning the first structural
// violation found.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Templates))
	for _, tmpl := range d.Templates {
		if tmpl == nil {
			return &MalformedDocumentError{Reason: "null template entry"}
		}
		if err := tmpl.Validate(); err != nil {
			return err
		}
		if seen[tmpl.ID] {
			return &MalformedDocumentError{Reason: fmt.Sprintf("duplicate template id %q", tmpl.ID)}
		}
		seen[tmpl.ID] = true
	}
	return nil
}

// ParseDocument decodes and validates a library document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error()}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// MalformedDocumentError describes the first structural violation found in
// a library document.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return "malformed document: " + e.Reason
}

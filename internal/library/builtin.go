package library

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/promptlib/internal/models"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// builtinTemplate is the YAML shape of one bundled catalog file.
type builtinTemplate struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	Template    string   `yaml:"template"`
}

// LoadBuiltinTemplates returns the builtin template catalog bundled with
// promptlib, sorted by id. Each template carries a single version stamped
// at load time.
func LoadBuiltinTemplates() ([]*models.Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin catalog: %w", err)
	}

	now := time.Now().UTC()
	templates := make([]*models.Template, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin template %s: %w", entry.Name(), err)
		}
		tmpl, err := parseBuiltinTemplate(data, now)
		if err != nil {
			return nil, fmt.Errorf("parse builtin template %s: %w", entry.Name(), err)
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})

	return templates, nil
}

func parseBuiltinTemplate(data []byte, createdAt time.Time) (*models.Template, error) {
	var raw builtinTemplate
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if !models.ValidID(raw.ID) {
		return nil, fmt.Errorf("invalid template id %q", raw.ID)
	}
	if strings.TrimSpace(raw.Template) == "" {
		return nil, fmt.Errorf("template %q has no content", raw.ID)
	}

	return &models.Template{
		ID:          raw.ID,
		Name:        raw.Name,
		Category:    raw.Category,
		Tags:        raw.Tags,
		Description: raw.Description,
		Versions: []models.Version{
			{Content: raw.Template, CreatedAt: createdAt},
		},
		CurrentVersion: 0,
	}, nil
}

package library

import (
	"testing"

	"github.com/opencode-ai/promptlib/internal/models"
	"github.com/opencode-ai/promptlib/internal/render"
)

func TestLoadBuiltinTemplates(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}
	if len(templates) < 15 {
		t.Fatalf("expected at least 15 builtin templates, got %d", len(templates))
	}

	for i, tmpl := range templates {
		if !models.ValidID(tmpl.ID) {
			t.Fatalf("builtin template has invalid id %q", tmpl.ID)
		}
		if tmpl.Name == "" || tmpl.Category == "" {
			t.Fatalf("builtin template %q missing name or category", tmpl.ID)
		}
		if len(tmpl.Versions) != 1 || tmpl.Versions[0].Content == "" {
			t.Fatalf("builtin template %q should have one non-empty version", tmpl.ID)
		}
		if i > 0 && templates[i-1].ID >= tmpl.ID {
			t.Fatalf("builtin templates not sorted by id: %q before %q", templates[i-1].ID, tmpl.ID)
		}
	}
}

func TestBuiltinTemplatesRender(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}

	for _, tmpl := range templates {
		vars := render.Variables(tmpl.Current())
		if len(vars) == 0 {
			t.Fatalf("builtin template %q references no variables", tmpl.ID)
		}

		bindings := make(map[string]string, len(vars))
		for _, name := range vars {
			bindings[name] = "value"
		}
		if _, err := render.Render(tmpl.Current(), bindings); err != nil {
			t.Fatalf("render builtin template %q: %v", tmpl.ID, err)
		}
	}
}

func TestBuiltinCatalogContents(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	if err != nil {
		t.Fatalf("LoadBuiltinTemplates: %v", err)
	}

	byID := make(map[string]*models.Template, len(templates))
	for _, tmpl := range templates {
		byID[tmpl.ID] = tmpl
	}

	for _, id := range []string{"code-review", "bug-fix", "summarize", "translate", "commit-message"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("builtin catalog missing %q", id)
		}
	}

	review := byID["code-review"]
	vars := render.Variables(review.Current())
	if len(vars) != 1 || vars[0] != "code" {
		t.Fatalf("unexpected code-review variables: %v", vars)
	}
}

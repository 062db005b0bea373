package render

import (
	"errors"
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	out, err := Render("Hello {{name}}, welcome to {{place}}", map[string]string{
		"name":  "Ada",
		"place": "Paris",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hello Ada, welcome to Paris" {
		t.Fatalf("unexpected render result: %q", out)
	}
}

func TestRenderMissingVariables(t *testing.T) {
	_, err := Render("Hello {{name}}, welcome to {{place}}", map[string]string{"name": "Ada"})
	if err == nil {
		t.Fatalf("expected error for missing variable")
	}

	var missing *MissingVariablesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVariablesError, got %T", err)
	}
	if !reflect.DeepEqual(missing.Missing, []string{"place"}) {
		t.Fatalf("unexpected missing set: %v", missing.Missing)
	}
}

func TestRenderReportsAllMissing(t *testing.T) {
	_, err := Render("{{b}} {{a}} {{b}} {{c}}", map[string]string{})
	var missing *MissingVariablesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVariablesError, got %v", err)
	}
	if !reflect.DeepEqual(missing.Missing, []string{"a", "b", "c"}) {
		t.Fatalf("expected all missing names sorted, got %v", missing.Missing)
	}
}

func TestRenderIgnoresExtraBindings(t *testing.T) {
	out, err := Render("Hi {{who}}", map[string]string{"who": "there", "unused": "x"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hi there" {
		t.Fatalf("unexpected render result: %q", out)
	}
}

func TestRenderNoRecursiveExpansion(t *testing.T) {
	out, err := Render("{{a}}", map[string]string{"a": "{{b}}", "b": "boom"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "{{b}}" {
		t.Fatalf("substituted value was re-expanded: %q", out)
	}
}

func TestRenderTrimsNameWhitespace(t *testing.T) {
	out, err := Render("Hi {{ who }}", map[string]string{"who": "there"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hi there" {
		t.Fatalf("unexpected render result: %q", out)
	}
}

func TestRenderLiteralBraces(t *testing.T) {
	cases := []struct {
		content  string
		bindings map[string]string
		want     string
	}{
		{"no placeholders", nil, "no placeholders"},
		{"unterminated {{name", nil, "unterminated {{name"},
		{"empty {{}} stays", nil, "empty {{}} stays"},
		{"bad {{a b}} stays", nil, "bad {{a b}} stays"},
		{"{{{x}}}", map[string]string{"x": "1"}, "{1}"},
	}
	for _, tc := range cases {
		out, err := Render(tc.content, tc.bindings)
		if err != nil {
			t.Fatalf("Render(%q): %v", tc.content, err)
		}
		if out != tc.want {
			t.Fatalf("Render(%q) = %q, want %q", tc.content, out, tc.want)
		}
	}
}

func TestVariables(t *testing.T) {
	vars := Variables("{{b}} then {{a}}, {{b}} again, {{ c }} too")
	if !reflect.DeepEqual(vars, []string{"b", "a", "c"}) {
		t.Fatalf("unexpected variables: %v", vars)
	}

	if vars := Variables("nothing here"); vars != nil {
		t.Fatalf("expected no variables, got %v", vars)
	}
}

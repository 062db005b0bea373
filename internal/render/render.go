// Package render implements flat {{variable}} substitution for template
// content. There is no conditional logic, looping or nesting: a template
// is plain text with zero or more {{name}} placeholders.
package render

import (
	"fmt"
	"sort"
	"strings"
)

// MissingVariablesError reports every referenced variable that has no
// binding, so callers can fix an invocation in one pass.
type MissingVariablesError struct {
	Missing []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("missing variables: %s", strings.Join(e.Missing, ", "))
}

// Render substitutes {{name}} placeholders in content with values from
// bindings. Substituted values are emitted verbatim and never re-scanned
// for placeholders. If any referenced variable is unbound, Render fails
// with a MissingVariablesError carrying all of them, sorted. Bindings the
// content never references are ignored.
//
// Render is a pure function of its inputs and is safe for concurrent use.
func Render(content string, bindings map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	var missing []string
	reported := make(map[string]bool)

	rest := content
	for {
		open, name, next, ok := findPlaceholder(rest)
		if !ok {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:open])
		if value, bound := bindings[name]; bound {
			out.WriteString(value)
		} else if !reported[name] {
			reported[name] = true
			missing = append(missing, name)
		}
		rest = rest[next:]
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return "", &MissingVariablesError{Missing: missing}
	}
	return out.String(), nil
}

// Variables returns the distinct placeholder names referenced by content,
// in order of first appearance. This is the template's required-variable
// set: Render succeeds exactly when every returned name is bound.
func Variables(content string) []string {
	var names []string
	seen := make(map[string]bool)

	rest := content
	for {
		_, name, next, ok := findPlaceholder(rest)
		if !ok {
			return names
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[next:]
	}
}

// findPlaceholder locates the next well-formed {{name}} placeholder in s.
// It returns the offset of the opening braces, the trimmed variable name,
// and the offset just past the closing braces. Brace pairs that do not
// enclose a valid name are treated as literal text.
func findPlaceholder(s string) (open int, name string, next int, ok bool) {
	i := 0
	for {
		rel := strings.Index(s[i:], "{{")
		if rel < 0 {
			return 0, "", 0, false
		}
		open = i + rel
		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			return 0, "", 0, false
		}
		name = strings.TrimSpace(s[open+2 : open+2+end])
		if validName(name) {
			return open, name, open + 2 + end + 2, true
		}
		// Re-scan one rune later so forms like "{{{name}}" still find the
		// placeholder that starts inside them.
		i = open + 1
	}
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
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

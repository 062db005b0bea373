package cli

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleCategory = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleID       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleDim      = lipgloss.NewStyle().Faint(true)
	styleVars     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleOK       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func styled(style lipgloss.Style, s string) string {
	if cfg != nil && cfg.NoColor {
		return s
	}
	return style.Render(s)
}

// writeJSON writes v to out as indented JSON.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/psplibdoc/prx"
)

const prompt = "❯ "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("4")).
				Bold(true)
)

// renderMatch renders one result row: the matched key with matched
// characters highlighted, followed by its kind and location.
func renderMatch(match fuzzy.Match, m prx.Match, selected bool) string {
	base, hl := entryStyle, highlightStyle
	if selected {
		base, hl = selectedStyle, selectedHighlightStyle
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	b.WriteString(locationStyle.Render(
		"  " + m.Kind.String() + " in " + m.Module.FileID + " / " + m.Library.Name,
	))

	return b.String()
}

// describe formats a chosen symbol the way the query command prints it,
// with its location appended.
func describe(m prx.Match) string {
	return m.Kind.String() + ": " + m.Name + ", NID: " + m.NID +
		" (" + m.Module.FileID + ", " + m.Library.Name + ")"
}

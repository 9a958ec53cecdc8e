// Package styles holds the lipgloss styles used by the interactive session
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/genovar/internal/config"
	"github.com/thenoetrevino/genovar/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	MenuKeyStyle  lipgloss.Style // For the menu numbers
	HeaderStyle   lipgloss.Style // For result table headers
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Significance styles
	PathogenicStyle lipgloss.Style
	UncertainStyle  lipgloss.Style
	BenignStyle     lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	MenuKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.SuccessFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.WarningFg))

	PathogenicStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Pathogenic))

	UncertainStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Uncertain))

	BenignStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Benign))
}

// InitPlain resets every style to an unstyled one. Rendering then returns
// the input unchanged, which keeps test output stable.
func InitPlain() {
	plain := lipgloss.NewStyle()
	TitleStyle = plain
	SubtitleStyle = plain
	MenuKeyStyle = plain
	HeaderStyle = plain
	ValueStyle = plain
	SuccessStyle = plain
	ErrorStyle = plain
	WarningStyle = plain
	PathogenicStyle = plain
	UncertainStyle = plain
	BenignStyle = plain
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderSignificance colors a clinical significance by its category
func RenderSignificance(significance string) string {
	switch {
	case models.IsPathogenicSignificance(significance):
		return PathogenicStyle.Render(significance)
	case significance == models.SignificanceBenign, significance == models.SignificanceLikelyBenign:
		return BenignStyle.Render(significance)
	default:
		return UncertainStyle.Render(significance)
	}
}

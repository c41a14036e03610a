// Package output provides styled terminal rendering helpers for moodwatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorGood is used for high moods and positive insights.
	ColorGood = lipgloss.Color("#66bb6a")

	// ColorBad is used for low moods and negative associations.
	ColorBad = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling values and caveats.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleGood is used for positive values.
	StyleGood = lipgloss.NewStyle().
			Foreground(ColorGood)

	// StyleBad is used for negative values.
	StyleBad = lipgloss.NewStyle().
			Foreground(ColorBad)

	// StyleWarning is used for cautionary values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for stat labels in summary views.
	StyleLabel = lipgloss.NewStyle().Width(24)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleBad = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoColor disables color when the flag asks for it, when color is
// off in config, or when stdout is not a terminal.
func AutoColor(flagNoColor, configColor bool) {
	if flagNoColor || !configColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		SetNoColor(true)
	}
}

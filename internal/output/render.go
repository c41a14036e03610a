package output

import (
	"fmt"
	"strings"
)

// MoodBar renders a visual bar for a 1-10 mood level.
// Example: "███████░░░ 7.0/10"
func MoodBar(level float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int((level / 10.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case level >= 7:
		style = func(s string) string { return StyleGood.Render(s) }
	case level >= 5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleBad.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.1f/10", level)))
}

// TrendArrow returns a styled trend indicator for a per-entry slope.
// Improving trends show an up arrow, declining show down, flat shows a dash.
func TrendArrow(slope float64) string {
	if slope == 0 {
		return StyleMuted.Render("─")
	}
	if slope > 0 {
		return StyleGood.Render(fmt.Sprintf("▲ +%.2f", slope))
	}
	return StyleBad.Render(fmt.Sprintf("▼ %.2f", slope))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// InsightList renders insights as a bulleted block, one per line.
func InsightList(insights []string) string {
	if len(insights) == 0 {
		return StyleMuted.Render(" (no insights)")
	}
	var sb strings.Builder
	for i, insight := range insights {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(" ")
		sb.WriteString(StyleGood.Render("•"))
		sb.WriteString(" ")
		sb.WriteString(insight)
	}
	return sb.String()
}

// StatusNote renders a non-success analysis status with its message.
func StatusNote(status, message string) string {
	switch status {
	case "insufficient_data":
		return StyleWarning.Render(" " + message)
	case "error":
		return StyleBad.Render(" " + message)
	default:
		return " " + message
	}
}

// Significance marks a p-value as significant or not.
func Significance(pValue float64) string {
	if pValue < 0.05 {
		return StyleGood.Render("yes")
	}
	return StyleMuted.Render("no")
}

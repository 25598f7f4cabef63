package charts

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/ui/theme"
)

const barCells = 20

// Radar renders radar points as horizontal proficiency bars, one axis per
// skill in point order. Points are consumed read-only.
func Radar(points []skills.RadarPoint, width int) string {
	if len(points) == 0 {
		return ""
	}

	nameWidth := 0
	for _, p := range points {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	trackStyle := lipgloss.NewStyle().Foreground(theme.Border)
	nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	for i, p := range points {
		filled := int(p.Score / skills.MaxScore * barCells)
		if filled > barCells {
			filled = barCells
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameWidth, p.Name)))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(trackStyle.Render(strings.Repeat("░", barCells-filled)))
		b.WriteString(valStyle.Render(fmt.Sprintf(" %.1f", p.Score)))
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

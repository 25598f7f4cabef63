package charts

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/ui/theme"
)

// Trend renders trend points as previous → current pairs with a delta
// marker. Points are consumed read-only.
func Trend(points []skills.TrendPoint, width int) string {
	if len(points) == 0 {
		return ""
	}

	nameWidth := 0
	for _, p := range points {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	upStyle := lipgloss.NewStyle().Foreground(theme.Success)
	flatStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, p := range points {
		marker := upStyle.Render("▲")
		if p.Current <= p.Previous {
			marker = flatStyle.Render("▬")
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameWidth, p.Name)))
		b.WriteString(fmt.Sprintf("%.2f → %.2f %s", p.Previous, p.Current, marker))
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

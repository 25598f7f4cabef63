package charts

import (
	"strings"
	"testing"

	"github.com/skillfolio/skillfolio/internal/skills"
)

func TestRadar_Empty(t *testing.T) {
	if got := Radar(nil, 80); got != "" {
		t.Errorf("Radar(nil) = %q, want empty", got)
	}
}

func TestRadar_OneLinePerPoint(t *testing.T) {
	points := []skills.RadarPoint{
		{Name: "Algorithms", Score: 7.5},
		{Name: "System Design", Score: 5.1},
	}
	out := Radar(points, 80)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Algorithms") || !strings.Contains(lines[0], "7.5") {
		t.Errorf("first line missing name/score: %q", lines[0])
	}
	if !strings.Contains(lines[1], "System Design") {
		t.Errorf("order not preserved: %q", lines[1])
	}
}

func TestTrend_Empty(t *testing.T) {
	if got := Trend(nil, 80); got != "" {
		t.Errorf("Trend(nil) = %q, want empty", got)
	}
}

func TestTrend_ShowsPreviousAndCurrent(t *testing.T) {
	points := skills.BuildTrend([]skills.Record{{Name: "Algorithms", Score: 7.5}})
	out := Trend(points, 80)
	if !strings.Contains(out, "6.50") || !strings.Contains(out, "7.50") {
		t.Errorf("trend line missing values: %q", out)
	}
}

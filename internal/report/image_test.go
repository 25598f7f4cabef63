package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImageSurface_SaveNamesPages(t *testing.T) {
	surface, err := NewImageSurface("")
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	if err := surface.DrawText("page one", leftMargin, topMargin); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	surface.NewPage()
	if err := surface.DrawText("page two", leftMargin, topMargin); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if surface.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", surface.PageCount())
	}

	base := filepath.Join(t.TempDir(), "skill_report.png")
	if err := surface.Save(base); err != nil {
		t.Fatalf("Save: %v", err)
	}

	trimmed := base[:len(base)-len(".png")]
	for _, name := range []string{trimmed + "-page-1.png", trimmed + "-page-2.png"} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing page artifact %s: %v", name, err)
		}
	}
}

func TestImageSurface_WrapTextPreservesNewlines(t *testing.T) {
	surface, err := NewImageSurface("")
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	lines, err := surface.WrapText("first\nsecond", contentWidth)
	if err != nil {
		t.Fatalf("WrapText: %v", err)
	}
	if len(lines) < 2 {
		t.Errorf("newline collapsed: %v", lines)
	}
}

func TestImageSurface_MissingFontFails(t *testing.T) {
	if _, err := NewImageSurface("/nonexistent/font.ttf"); err == nil {
		t.Error("expected an error for a missing font file")
	}
}

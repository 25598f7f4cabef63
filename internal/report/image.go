package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ImageSurface renders report pages as A4 raster images via gg. A truetype
// font file can be supplied for proportional text; without one the surface
// falls back to gg's built-in bitmap face, which ignores font size changes.
type ImageSurface struct {
	pages []*gg.Context
	cur   *gg.Context

	font     *truetype.Font
	fontSize float64
	bold     bool

	colorSet bool
	r, g, b  uint8
}

// NewImageSurface creates a surface with one blank page. fontPath may be
// empty.
func NewImageSurface(fontPath string) (*ImageSurface, error) {
	s := &ImageSurface{fontSize: bodyFontSize}

	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		s.font = f
	}

	s.NewPage()
	return s, nil
}

// SetFontSize selects the text size. With a truetype font this rebuilds the
// face; with the built-in face it is recorded but has no visual effect.
func (s *ImageSurface) SetFontSize(points float64) error {
	s.fontSize = points
	return s.applyFace()
}

// SetBold toggles bold rendering. With a single font file bold is simulated
// by a second draw pass offset by half a pixel.
func (s *ImageSurface) SetBold(bold bool) {
	s.bold = bold
}

// SetTextColor selects the text color for subsequent draws.
func (s *ImageSurface) SetTextColor(r, g, b uint8) {
	s.colorSet = true
	s.r, s.g, s.b = r, g, b
	s.applyColor()
}

// ResetTextColor restores black text.
func (s *ImageSurface) ResetTextColor() {
	s.colorSet = false
	s.applyColor()
}

// DrawText writes one line with its baseline at (x, y).
func (s *ImageSurface) DrawText(text string, x, y float64) error {
	s.cur.DrawString(text, x, y)
	if s.bold {
		s.cur.DrawString(text, x+0.5, y)
	}
	return nil
}

// WrapText word-wraps text to maxWidth at the current face, preserving
// explicit newlines within the text.
func (s *ImageSurface) WrapText(text string, maxWidth float64) ([]string, error) {
	var lines []string
	for _, part := range strings.Split(text, "\n") {
		if part == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, s.cur.WordWrap(part, maxWidth)...)
	}
	return lines, nil
}

// NewPage finishes the current page and starts a blank one with the active
// font and color settings carried over.
func (s *ImageSurface) NewPage() {
	dc := gg.NewContext(int(PageWidth), int(PageHeight))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	s.pages = append(s.pages, dc)
	s.cur = dc
	// Face errors on a fresh page can only repeat the ones already surfaced
	// at SetFontSize time.
	_ = s.applyFace()
	s.applyColor()
}

// Save writes every page as <base>-page-N.png. A trailing .png on the base
// path is stripped first so repeated exports land on the same names.
func (s *ImageSurface) Save(path string) error {
	base := strings.TrimSuffix(path, ".png")
	for i, page := range s.pages {
		name := fmt.Sprintf("%s-page-%d.png", base, i+1)
		if err := page.SavePNG(name); err != nil {
			return fmt.Errorf("save page %d: %w", i+1, err)
		}
	}
	return nil
}

// PageCount returns the number of pages drawn so far.
func (s *ImageSurface) PageCount() int {
	return len(s.pages)
}

func (s *ImageSurface) applyFace() error {
	if s.font == nil || s.cur == nil {
		return nil
	}
	face := truetype.NewFace(s.font, &truetype.Options{
		Size:    s.fontSize,
		Hinting: font.HintingFull,
	})
	s.cur.SetFontFace(face)
	return nil
}

func (s *ImageSurface) applyColor() {
	if s.cur == nil {
		return
	}
	if s.colorSet {
		s.cur.SetRGB255(int(s.r), int(s.g), int(s.b))
	} else {
		s.cur.SetRGB(0, 0, 0)
	}
}

package report

// Surface is the drawing backend the paginator writes to. Implementations
// own page geometry and text metrics; the paginator owns layout state. Any
// error from a Surface call aborts the export — there is no safe way to
// recover a partially measured document.
type Surface interface {
	// SetFontSize selects the text size in points for subsequent draws.
	SetFontSize(points float64) error

	// SetBold toggles bold rendering for subsequent draws.
	SetBold(bold bool)

	// SetTextColor selects an RGB text color for subsequent draws.
	SetTextColor(r, g, b uint8)

	// ResetTextColor restores the default text color.
	ResetTextColor()

	// DrawText writes a single line with its baseline at (x, y), measured
	// from the page's top-left corner.
	DrawText(text string, x, y float64) error

	// WrapText splits text into lines no wider than maxWidth at the current
	// font settings. Word wrapping, not character truncation.
	WrapText(text string, maxWidth float64) ([]string, error)

	// NewPage finishes the current page and starts a fresh one.
	NewPage()

	// Save finalizes the document under the given base path.
	Save(path string) error
}

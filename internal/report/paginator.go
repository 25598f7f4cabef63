package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/skillfolio/skillfolio/internal/skills"
)

// Page geometry in points, A4 at 72dpi. The break threshold sits near the
// bottom margin: a section that finishes past it pushes the next section
// onto a fresh page, so a header is never separated from its body.
const (
	PageWidth  = 595.0
	PageHeight = 842.0

	leftMargin     = 48.0
	topMargin      = 56.0
	contentWidth   = PageWidth - 2*leftMargin
	breakThreshold = PageHeight - 86.0

	titleFontSize = 16.0
	bodyFontSize  = 11.0
	lineHeight    = 16.0
	sectionGap    = 10.0
)

const notAvailable = "N/A"

// attemptTimeLayout is the human-readable format for attempt timestamps.
const attemptTimeLayout = "Jan 2, 2006 3:04 PM"

// warning color for flagged records (firebrick red).
const (
	warnR = 178
	warnG = 34
	warnB = 34
)

// Paginator walks a skill snapshot and its radar projection and drives a
// Surface through a multi-page document: a title block followed by one
// detail section per skill. It tracks a vertical cursor and inserts page
// breaks only between sections.
type Paginator struct {
	surface Surface
	cursorY float64
	page    int
}

// NewPaginator returns a paginator writing to the given surface.
func NewPaginator(surface Surface) *Paginator {
	return &Paginator{surface: surface}
}

// Pages returns the number of pages produced by the last Generate call.
func (p *Paginator) Pages() int {
	return p.page + 1
}

// Generate produces the full document. An empty snapshot yields just the
// heading. The title block is written without a pagination check: it is
// assumed to fit on page one, and with a very large skill count the first
// detail section simply starts past the break threshold.
func (p *Paginator) Generate(snapshot []skills.Record, radar []skills.RadarPoint) error {
	p.cursorY = topMargin
	p.page = 0

	if err := p.writeTitleBlock(radar); err != nil {
		return err
	}

	for i, rec := range snapshot {
		if err := p.writeSection(&rec); err != nil {
			return fmt.Errorf("section %q: %w", rec.Name, err)
		}
		if p.cursorY > breakThreshold && i < len(snapshot)-1 {
			p.surface.NewPage()
			p.page++
			p.cursorY = topMargin
		}
	}
	return nil
}

func (p *Paginator) writeTitleBlock(radar []skills.RadarPoint) error {
	if err := p.surface.SetFontSize(titleFontSize); err != nil {
		return err
	}
	p.surface.SetBold(true)
	if err := p.writeLine("Skill Assessment Report"); err != nil {
		return err
	}
	p.surface.SetBold(false)
	if err := p.surface.SetFontSize(bodyFontSize); err != nil {
		return err
	}

	for _, pt := range radar {
		if err := p.writeLine(fmt.Sprintf("%s: %.1f/10", pt.Name, pt.Score)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Paginator) writeSection(rec *skills.Record) error {
	p.surface.SetBold(true)
	if err := p.writeLine(rec.Name + " Details"); err != nil {
		return err
	}
	p.surface.SetBold(false)

	if err := p.writeLine("Attempts: " + formatAttempts(rec.AttemptTimestamps)); err != nil {
		return err
	}

	depth := notAvailable
	if rec.IterationDepth != nil {
		depth = fmt.Sprintf("%d", *rec.IterationDepth)
	}
	if err := p.writeLine("Iteration Depth: " + depth); err != nil {
		return err
	}

	if rec.IsFlagged() {
		p.surface.SetTextColor(warnR, warnG, warnB)
		err := p.writeLine("AI/Plagiarism Suspected")
		p.surface.ResetTextColor()
		if err != nil {
			return err
		}
	}

	if err := p.writeLine("Code Snippets:"); err != nil {
		return err
	}
	if len(rec.CodeSnippets) == 0 {
		if err := p.writeLine(notAvailable); err != nil {
			return err
		}
	}
	for _, snippet := range rec.CodeSnippets {
		lines, err := p.surface.WrapText(snippet, contentWidth)
		if err != nil {
			return fmt.Errorf("wrap snippet: %w", err)
		}
		for _, line := range lines {
			if err := p.writeLine(line); err != nil {
				return err
			}
		}
	}

	p.cursorY += sectionGap
	return nil
}

// writeLine draws one line at the cursor and advances it by a line height.
func (p *Paginator) writeLine(text string) error {
	if err := p.surface.DrawText(text, leftMargin, p.cursorY); err != nil {
		return err
	}
	p.cursorY += lineHeight
	return nil
}

// formatAttempts joins attempt timestamps oldest to newest, or N/A when the
// record has none.
func formatAttempts(attempts []time.Time) string {
	if len(attempts) == 0 {
		return notAvailable
	}
	parts := make([]string, 0, len(attempts))
	for _, ts := range attempts {
		parts = append(parts, ts.Format(attemptTimeLayout))
	}
	return strings.Join(parts, " -> ")
}

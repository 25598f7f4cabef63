package detail

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/router"
	"github.com/skillfolio/skillfolio/internal/screen"
	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/ui/components"
	"github.com/skillfolio/skillfolio/internal/ui/layout"
	"github.com/skillfolio/skillfolio/internal/ui/theme"
)

const attemptTimeLayout = "Jan 2, 2006 3:04 PM"

// Screen shows one skill's evidence and lets the reviewer adjust its score.
type Screen struct {
	store *skills.Store
	name  string

	editing bool
	input   components.ScoreInput
	status  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates a detail screen for the named skill.
func New(store *skills.Store, name string) *Screen {
	return &Screen{store: store, name: name}
}

func (d *Screen) Init() tea.Cmd { return nil }
func (d *Screen) Title() string { return d.name }

// CapturesInput claims Esc while a score edit is open so the shell does not
// pop the screen mid-edit.
func (d *Screen) CapturesInput() bool { return d.editing }

func (d *Screen) KeyHints() []layout.KeyHint {
	if d.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "e", Description: "Edit score"},
		{Key: "Esc", Description: "Back"},
	}
}

// record looks up this screen's skill in the current snapshot; the name is
// the stable key, so a stale pointer can never be held across edits.
func (d *Screen) record() (skills.Record, bool) {
	for _, rec := range d.store.Snapshot() {
		if rec.Name == d.name {
			return rec, true
		}
	}
	return skills.Record{}, false
}

func (d *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.editing {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if d.editing {
		return d.updateEditing(kmsg)
	}

	switch kmsg.String() {
	case "e":
		rec, found := d.record()
		if !found {
			return d, nil
		}
		d.editing = true
		d.status = ""
		d.input = components.NewScoreInput(fmt.Sprintf("%.1f", rec.Score))
		return d, d.input.Init()
	case "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *Screen) updateEditing(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		d.editing = false
		return d, nil

	case "enter":
		value, err := skills.ParseScore(d.input.Value())
		if err != nil {
			// Prior value is retained; the edit stays open with the
			// rejection inline.
			d.input.SetError(validationMessage(err))
			return d, nil
		}
		if err := d.store.SetScore(d.name, value); err != nil {
			d.input.SetError(err.Error())
			return d, nil
		}
		d.editing = false
		d.status = theme.Hint.Render("Score updated.")
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(kmsg)

	// Validate on every keystroke; an empty field is in-progress typing,
	// not an error.
	if v := d.input.Value(); v == "" {
		d.input.SetError("")
	} else if _, err := skills.ParseScore(v); err != nil {
		d.input.SetError(validationMessage(err))
	} else {
		d.input.SetError("")
	}
	return d, cmd
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, skills.ErrOutOfRange):
		return "must be between 0 and 10"
	case errors.Is(err, skills.ErrNotNumeric):
		return "not a number"
	default:
		return err.Error()
	}
}

func (d *Screen) View(width, height int) string {
	rec, found := d.record()
	if !found {
		return theme.InputError.Render("  Skill no longer loaded.")
	}

	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s", rec.Name)))
	b.WriteString("\n\n")

	// Score row, or the edit field while an edit is open.
	if d.editing {
		b.WriteString(dimStyle.Render("  Score:      ") + d.input.View())
		b.WriteString("\n")
		b.WriteString("  " + d.input.Hint())
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("  Score:      ") + valStyle.Render(fmt.Sprintf("%.1f/10", rec.Score)))
		if d.status != "" {
			b.WriteString("  " + d.status)
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("  Attempts:   ") + valStyle.Render(formatAttempts(&rec)))
	b.WriteString("\n")

	depth := "N/A"
	if rec.IterationDepth != nil {
		depth = fmt.Sprintf("%d", *rec.IterationDepth)
	}
	b.WriteString(dimStyle.Render("  Iterations: ") + valStyle.Render(depth))
	b.WriteString("\n")

	if rec.IsFlagged() {
		b.WriteString("\n  " + theme.FlagBadge.Render("⚑ AI/Plagiarism Suspected"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Code Snippets"))
	b.WriteString("\n")

	if len(rec.CodeSnippets) == 0 {
		b.WriteString(dimStyle.Render("  N/A"))
	} else {
		snippetStyle := lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			Background(theme.BgCard).
			Padding(0, 1)
		for i, snippet := range rec.CodeSnippets {
			b.WriteString(snippetStyle.Render(snippet))
			if i < len(rec.CodeSnippets)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func formatAttempts(rec *skills.Record) string {
	if len(rec.AttemptTimestamps) == 0 {
		return "N/A"
	}
	parts := make([]string, 0, len(rec.AttemptTimestamps))
	for _, ts := range rec.AttemptTimestamps {
		parts = append(parts, ts.Format(attemptTimeLayout))
	}
	return strings.Join(parts, " → ")
}

package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/ui/theme"
)

// ScoreInput wraps bubbles/textinput for score entry: digits plus at most
// one decimal point, a handful of characters wide. Anything else never
// reaches the underlying model, so in-progress values stay parseable or
// empty.
type ScoreInput struct {
	Model  textinput.Model
	errMsg string
}

// NewScoreInput creates a focused score input prefilled with the current
// value.
func NewScoreInput(current string) ScoreInput {
	ti := textinput.New()
	ti.Placeholder = "0.0"
	ti.CharLimit = 5
	ti.SetValue(current)
	ti.Focus()
	return ScoreInput{Model: ti}
}

// Init returns the initial command.
func (s ScoreInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages, filtering keystrokes that could not be part of a
// score.
func (s ScoreInput) Update(msg tea.Msg) (ScoreInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			digit := c >= '0' && c <= '9'
			dot := c == '.' && !strings.Contains(s.Model.Value(), ".")
			if !digit && !dot {
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// SetError attaches an inline validation message shown next to the field.
func (s *ScoreInput) SetError(msg string) {
	s.errMsg = msg
}

// View renders the input with any validation message.
func (s ScoreInput) View() string {
	view := s.Model.View()
	if s.errMsg != "" {
		view += "  " + theme.InputError.Render(s.errMsg)
	}
	return view
}

// Value returns the raw input text.
func (s ScoreInput) Value() string {
	return s.Model.Value()
}

// Hint renders the editing hint line.
func (s ScoreInput) Hint() string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Enter to save, Esc to cancel")
}

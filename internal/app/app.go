package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/report"
	"github.com/skillfolio/skillfolio/internal/router"
	"github.com/skillfolio/skillfolio/internal/screen"
	"github.com/skillfolio/skillfolio/internal/screens/dashboard"
	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/source"
	"github.com/skillfolio/skillfolio/internal/ui/layout"
)

// Options carries the collaborators the app needs.
type Options struct {
	Store    *skills.Store
	Loader   source.Loader
	Exporter *report.Exporter
	Log      *logging.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *skills.Store
	width  int
	height int
}

// newAppModel creates a new AppModel with the dashboard screen.
func newAppModel(opts Options) AppModel {
	dash := dashboard.New(opts.Store, opts.Loader, opts.Exporter, opts.Log)
	return AppModel{
		router: router.New(dash),
		store:  opts.Store,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen mid-edit keeps Esc for itself.
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.store.FlaggedCount(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

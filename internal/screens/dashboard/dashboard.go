package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillfolio/skillfolio/internal/charts"
	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/report"
	"github.com/skillfolio/skillfolio/internal/router"
	"github.com/skillfolio/skillfolio/internal/screen"
	"github.com/skillfolio/skillfolio/internal/screens/detail"
	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/source"
	"github.com/skillfolio/skillfolio/internal/ui/layout"
	"github.com/skillfolio/skillfolio/internal/ui/theme"
)

// loadedMsg carries the result of the initial assessment fetch.
type loadedMsg struct {
	err error
}

// exportedMsg carries the result of a report export.
type exportedMsg struct {
	path string
	err  error
}

// Screen is the main skill dashboard: the ordered skill list with its radar
// and trend panels, plus export and navigation.
type Screen struct {
	store    *skills.Store
	loader   source.Loader
	exporter *report.Exporter
	log      *logging.Logger

	cursor       int
	scrollOffset int
	loading      bool
	loadErr      error
	status       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard screen.
func New(store *skills.Store, loader source.Loader, exporter *report.Exporter, log *logging.Logger) *Screen {
	return &Screen{
		store:    store,
		loader:   loader,
		exporter: exporter,
		log:      log,
		loading:  true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.loadCmd()
}

func (s *Screen) Title() string { return "Skills" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "e", Description: "Export report"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadCmd fetches the assessment off the UI loop and installs it into the
// store in one shot. On failure nothing is installed.
func (s *Screen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := s.loader.Load(context.Background())
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{err: s.store.Load(records)}
	}
}

func (s *Screen) exportCmd() tea.Cmd {
	snapshot := s.store.Snapshot()
	radar := skills.BuildRadar(snapshot)
	return func() tea.Msg {
		path, err := s.exporter.Export(snapshot, radar)
		return exportedMsg{path: path, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.loadErr = msg.err
		if msg.err != nil {
			s.log.Error("assessment load failed", "error", msg.err)
		}
		return s, nil

	case exportedMsg:
		if msg.err != nil {
			s.status = theme.InputError.Render("Export failed: " + msg.err.Error())
		} else {
			s.status = fmt.Sprintf("Report written to %s-page-N.png", msg.path)
		}
		return s, nil

	case tea.KeyMsg:
		if s.loading || s.loadErr != nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.openDetail()
		case "e":
			s.status = "Exporting..."
			return s, s.exportCmd()
		}
	}
	return s, nil
}

func (s *Screen) moveCursor(delta int) {
	n := s.store.Len()
	if n == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
}

func (s *Screen) openDetail() tea.Cmd {
	snapshot := s.store.Snapshot()
	if s.cursor >= len(snapshot) {
		return nil
	}
	name := snapshot[s.cursor].Name
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail.New(s.store, name)}
	}
}

func (s *Screen) View(width, height int) string {
	if s.loading {
		return theme.Hint.Render("  Loading assessment...")
	}
	if s.loadErr != nil {
		return theme.InputError.Render("  Could not load assessment: "+s.loadErr.Error()) +
			"\n\n" + theme.Hint.Render("  Fix the data source and restart.")
	}

	snapshot := s.store.Snapshot()
	if len(snapshot) == 0 {
		return theme.Hint.Render("  No skills in this assessment.")
	}

	listWidth := width / 2
	list := s.renderList(snapshot, listWidth, height-2)

	radar := skills.BuildRadar(snapshot)
	trend := skills.BuildTrend(snapshot)
	panelTitle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	panel := panelTitle.Render("Proficiency") + "\n" +
		charts.Radar(radar, width-listWidth) + "\n\n" +
		panelTitle.Render("Trend") + "\n" +
		charts.Trend(trend, width-listWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", panel)
	if s.status != "" {
		body += "\n\n  " + s.status
	}
	return body
}

func (s *Screen) renderList(snapshot []skills.Record, width, height int) string {
	s.adjustScroll(height)

	var b strings.Builder
	for i, rec := range snapshot {
		if i < s.scrollOffset || i-s.scrollOffset >= height {
			continue
		}

		cursor := "  "
		style := theme.Unselected
		if i == s.cursor {
			cursor = "> "
			style = theme.Selected
		}

		flag := "  "
		if rec.IsFlagged() {
			flag = theme.FlagBadge.Render("⚑ ")
		}

		line := fmt.Sprintf("%s%s%s", cursor, flag, style.Render(rec.Name))
		score := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %.1f/10", rec.Score))
		b.WriteString(line + score)
		if i < len(snapshot)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Screen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

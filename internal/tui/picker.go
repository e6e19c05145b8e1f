// internal/tui/picker.go
//
// The list-based front-end. It uses bubbletea, so the flow is the usual
// Elm loop: key press -> Update -> new state -> View.
//
// Screens: season list -> plant list -> result.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/garden-advice/internal/advice"
	"github.com/kingrea/garden-advice/internal/logbook"
)

type screen int

const (
	screenSeason screen = iota
	screenPlant
	screenResult
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BCB77")).
			Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4D96FF"))
	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))
	resultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

// option implements list.Item for seasons and plant types
type option struct {
	value string
	title string
	desc  string
}

func (o option) Title() string       { return o.title }
func (o option) Description() string { return o.desc }
func (o option) FilterValue() string { return o.value }

// Model is the picker's bubbletea model.
type Model struct {
	screen  screen
	seasons list.Model
	plants  list.Model
	logbook *logbook.Logbook

	season advice.Season
	plant  advice.PlantType
	report advice.Report
	done   bool

	// journalEntries is the logbook size when the result was shown
	journalEntries int

	width  int
	height int
}

// New creates a picker positioned on the season list. lb may be nil.
func New(lb *logbook.Logbook) *Model {
	seasonItems := make([]list.Item, 0, 4)
	for _, s := range advice.Seasons() {
		seasonItems = append(seasonItems, option{
			value: string(s),
			title: s.Title(),
			desc:  advice.RecommendPlants(string(s)),
		})
	}
	plantItems := make([]list.Item, 0, 4)
	for _, p := range advice.PlantTypes() {
		plantItems = append(plantItems, option{
			value: string(p),
			title: p.Title(),
			desc:  fmt.Sprintf("Plant type: %s", p),
		})
	}
	return &Model{
		screen:  screenSeason,
		seasons: newMenu("Choose the current season", seasonItems),
		plants:  newMenu("Choose the type of plant", plantItems),
		logbook: lb,
	}
}

func newMenu(title string, items []list.Item) list.Model {
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = title
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	return menu
}

// Report returns the advice chosen in this run, if the user got that far.
func (m *Model) Report() (advice.Report, bool) {
	return m.report, m.done
}

// Init is called once when the program starts.
func (m *Model) Init() tea.Cmd {
	m.logbook.Opened("picker")
	return nil
}

// Update is called when a message is received.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seasons.SetSize(max(0, msg.Width-4), max(0, msg.Height-6))
		m.plants.SetSize(max(0, msg.Width-4), max(0, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.back()
			return m, nil
		case "enter":
			return m.confirm()
		case "r":
			if m.screen == screenResult {
				m.restart()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenSeason:
		m.seasons, cmd = m.seasons.Update(msg)
	case screenPlant:
		m.plants, cmd = m.plants.Update(msg)
	}
	return m, cmd
}

func (m *Model) confirm() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenSeason:
		item, ok := m.seasons.SelectedItem().(option)
		if !ok {
			return m, nil
		}
		m.season = advice.Season(item.value)
		m.logbook.Answered("Enter the current season", item.value)
		m.screen = screenPlant
	case screenPlant:
		item, ok := m.plants.SelectedItem().(option)
		if !ok {
			return m, nil
		}
		m.plant = advice.PlantType(item.value)
		m.logbook.Answered("Enter the type of plant", item.value)
		m.report = advice.NewReport(m.season, m.plant)
		m.done = true
		m.screen = screenResult
		m.logbook.Advised(string(m.season), string(m.plant))
		_, m.journalEntries = m.logbook.Tail(1)
	case screenResult:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) back() {
	switch m.screen {
	case screenPlant:
		m.screen = screenSeason
	case screenResult:
		m.clearReport()
		m.screen = screenPlant
	}
}

// clearReport forgets the last result so Report only reflects a selection
// completed in the current pass.
func (m *Model) clearReport() {
	m.report = advice.Report{}
	m.done = false
	m.journalEntries = 0
}

func (m *Model) restart() {
	m.clearReport()
	m.screen = screenSeason
	m.seasons.Select(0)
	m.plants.Select(0)
	m.logbook.Info("Picker restarted")
}

// View renders the current screen.
func (m *Model) View() string {
	header := headerStyle.Render("🌱 GARDEN ADVICE")
	var body, hint string
	switch m.screen {
	case screenSeason:
		body = m.seasons.View()
		hint = "enter: choose · q: quit"
	case screenPlant:
		body = m.plants.View()
		hint = fmt.Sprintf("season: %s · enter: choose · esc: back · q: quit", m.season)
	case screenResult:
		body = m.renderResult()
		hint = "enter/q: quit · r: start over · esc: back"
		if m.journalEntries > 0 {
			hint += fmt.Sprintf(" · journal: %d entries", m.journalEntries)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, hintStyle.Render(hint))
}

func (m *Model) renderResult() string {
	lines := []string{
		sectionStyle.Render(advice.AdviceHeading),
	}
	for _, line := range strings.Split(m.report.Advice, "\n") {
		lines = append(lines, bodyStyle.Render(line))
	}
	lines = append(lines,
		"",
		sectionStyle.Render(advice.RecommendationHeading),
		bodyStyle.Render(m.report.Recommendations),
	)
	return resultBox.Render(strings.Join(lines, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

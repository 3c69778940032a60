package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	publishStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overrideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Model browses the resolved settings of both environments.
type Model struct {
	resolved      map[config.Environment]config.Settings
	env           config.Environment
	overridesOnly bool
	keys          []config.Key
	overridden    map[config.Key]bool
	table         table.Model
	status        string
	width         int

	copyFn func(string) error
}

// NewModel builds a browser over the development and publish mappings.
func NewModel(dev, pub config.Settings, prefs Prefs) Model {
	env, err := config.ParseEnvironment(prefs.Env)
	if err != nil {
		env = config.Development
	}

	overridden := map[config.Key]bool{}
	for _, c := range report.Diff(dev, pub) {
		if c.Kind != report.Unchanged {
			overridden[c.Key] = true
		}
	}

	columns := []table.Column{
		{Title: " ", Width: 1},
		{Title: "Key", Width: 22},
		{Title: "Value", Width: 60},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)

	m := Model{
		resolved: map[config.Environment]config.Settings{
			config.Development: dev,
			config.Publish:     pub,
		},
		env:           env,
		overridesOnly: prefs.OverridesOnly,
		overridden:    overridden,
		table:         t,
		copyFn:        clipboard.WriteAll,
	}
	m.refresh()
	return m
}

// Env is the environment currently displayed.
func (m Model) Env() config.Environment { return m.env }

// Prefs captures the current view settings for SavePrefs.
func (m Model) Prefs() Prefs {
	return Prefs{Env: m.env.String(), OverridesOnly: m.overridesOnly}
}

func (m *Model) refresh() {
	s := m.resolved[m.env]
	m.keys = nil
	rows := make([]table.Row, 0, len(s))
	for _, k := range s.Keys() {
		if m.overridesOnly && !m.overridden[k] {
			continue
		}
		mark := " "
		if m.overridden[k] {
			mark = "*"
		}
		m.keys = append(m.keys, k)
		rows = append(rows, table.Row{mark, string(k), report.FormatValue(s[k])})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Selected returns the key under the cursor.
func (m Model) Selected() (config.Key, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.keys) {
		return "", false
	}
	return m.keys[c], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(max(msg.Height-6, 3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.env == config.Development {
				m.env = config.Publish
			} else {
				m.env = config.Development
			}
			m.status = "showing " + m.env.String()
			m.refresh()
			return m, nil
		case "o":
			m.overridesOnly = !m.overridesOnly
			if m.overridesOnly {
				m.status = "overridden keys only"
			} else {
				m.status = "all keys"
			}
			m.refresh()
			return m, nil
		case "c":
			m.status = m.copySelected()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) copySelected() string {
	k, ok := m.Selected()
	if !ok {
		return "nothing selected"
	}
	v := report.FormatValue(m.resolved[m.env][k])
	if err := m.copyFn(v); err != nil {
		return fmt.Sprintf("clipboard error: %v", err)
	}
	return fmt.Sprintf("copied %s", k)
}

func (m Model) View() string {
	var b strings.Builder
	envLabel := titleStyle.Render(m.env.String())
	if m.env == config.Publish {
		envLabel = publishStyle.Render(m.env.String())
	}
	fmt.Fprintf(&b, "%s %s  %s\n\n", titleStyle.Render("sitecfg"), envLabel,
		overrideStyle.Render(fmt.Sprintf("* %d overridden by publish", len(m.overridden))))
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch env • o: overrides only • c: copy value • q: quit"))
	return b.String()
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabContainer = lipgloss.NewStyle().Padding(1, 1)
	activeTab    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	inactiveTab  = lipgloss.NewStyle().Foreground(Secondary)
	tabDivider   = lipgloss.NewStyle().Foreground(Faded)
)

type Tabs struct {
	labels []string
	i      int

	Width int
	Info  string
}

// NewTabs creates a new tabs ui bubbletea model.
func NewTabs(labels []string) Tabs {
	return Tabs{labels: labels}
}

func (m Tabs) Init() tea.Cmd {
	return nil
}

func (m Tabs) Update(_ tea.Msg) (Tabs, tea.Cmd) {
	return m, nil
}

// SetLabels replaces the tab labels, e.g. to refresh per-tab counts.
// The number of tabs must stay the same.
func (m *Tabs) SetLabels(labels []string) {
	if len(labels) == len(m.labels) {
		m.labels = labels
	}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Tabs) View() string {
	tabs := make([]string, len(m.labels))
	for i, t := range m.labels {
		r := inactiveTab
		if i == m.i {
			r = activeTab
		}
		tabs[i] = r.Render(t)
	}
	w := lipgloss.Width
	left := strings.Join(tabs, tabDivider.Render(" | "))
	right := m.Info
	space := lipgloss.NewStyle().Width(m.Width - 2 - w(left) - w(right)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (m Tabs) Value() int {
	return m.i
}

func (m *Tabs) Set(i int) {
	m.i = min(max(i, 0), len(m.labels)-1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

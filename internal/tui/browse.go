// Package tui implements the interactive workflow browser.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cmdkit/cmdkit/internal/registry"
	"github.com/cmdkit/cmdkit/internal/ui"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("62"))
)

// wfItem adapts a Workflow to the bubbles list item interface.
type wfItem struct {
	wf registry.Workflow
}

func (i wfItem) Title() string { return i.wf.Name }

func (i wfItem) Description() string {
	if i.wf.Description.Valid && i.wf.Description.String != "" {
		return i.wf.Description.String
	}
	if len(i.wf.Commands) > 0 {
		return i.wf.Commands[0].Command
	}
	return ""
}

func (i wfItem) FilterValue() string {
	return i.wf.Name + " " + strings.Join(i.wf.Tags, " ")
}

// Model is the Bubble Tea model behind `cmdkit browse`: a filterable
// workflow list on the left and a detail viewport on the right.
type Model struct {
	list list.Model
	vp   viewport.Model

	width  int
	height int

	// focus: false = list pane, true = detail pane
	focusRight bool
	// last selected name, to refresh the detail pane only on change
	lastSelected string
}

// New builds the browser model over fully loaded workflows.
func New(workflows []registry.Workflow) *Model {
	items := make([]list.Item, 0, len(workflows))
	for _, wf := range workflows {
		items = append(items, wfItem{wf: wf})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "cmdkit — workflows"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := &Model{list: l, vp: viewport.New(0, 0)}
	if len(items) > 0 {
		m.list.Select(0)
		m.refreshDetail()
	}
	return m
}

// NewProgram constructs the tea.Program for the browser.
func NewProgram(workflows []registry.Workflow) *tea.Program {
	return tea.NewProgram(New(workflows), tea.WithAltScreen())
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// Global keys are handled before the list so filtering cannot
		// swallow them.
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.list.FilterState() == list.Filtering {
				break
			}
			return m, tea.Quit
		case "tab", "left", "right":
			if m.list.FilterState() == list.Filtering {
				break
			}
			m.focusRight = !m.focusRight
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusRight {
		m.vp, cmd = m.vp.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
		m.refreshDetail()
	}
	return m, cmd
}

func (m *Model) View() string {
	left := paneStyle
	right := paneStyle
	if m.focusRight {
		right = focusedPaneStyle
	} else {
		left = focusedPaneStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(m.list.View()),
		right.Render(m.vp.View()),
	)
}

func (m *Model) resize() {
	// Split roughly in half, leaving room for the pane borders.
	listWidth := m.width/2 - 4
	if listWidth < 20 {
		listWidth = 20
	}
	detailWidth := m.width - listWidth - 8
	if detailWidth < 20 {
		detailWidth = 20
	}
	height := m.height - 4
	if height < 5 {
		height = 5
	}
	m.list.SetSize(listWidth, height)
	m.vp.Width = detailWidth
	m.vp.Height = height
}

// refreshDetail updates the right pane when the selection changes.
func (m *Model) refreshDetail() {
	it, ok := m.list.SelectedItem().(wfItem)
	if !ok {
		m.vp.SetContent("no workflows saved yet")
		return
	}
	if it.wf.Name == m.lastSelected {
		return
	}
	m.lastSelected = it.wf.Name
	m.vp.SetContent(ui.WorkflowDetail(&it.wf))
}

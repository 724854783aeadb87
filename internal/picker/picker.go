// Package picker implements the interactive placement chooser used by
// "positioner pick".
package picker

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wmutil/positioner/internal/placement"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// placementItem implements list.Item for the placement picker.
type placementItem struct {
	p         placement.Placement
	isDefault bool
	trayReady bool
}

func (i placementItem) Title() string {
	title := i.p.String()
	if i.isDefault {
		title += " (default)"
	}
	return title
}

func (i placementItem) Description() string {
	if i.p.TrayRelative() && !i.trayReady {
		return "needs a recorded tray anchor"
	}
	if i.p.TrayRelative() {
		return "relative to the tray icon"
	}
	return "relative to the current monitor"
}

func (i placementItem) FilterValue() string { return i.p.String() }

// model is the bubbletea model for the picker.
type model struct {
	list   list.Model
	choice *placement.Placement
}

func newModel(defaultPlacement placement.Placement, trayReady bool) model {
	items := buildItems(defaultPlacement, trayReady)

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Move window to"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	// Start on the configured default.
	for idx, item := range items {
		if pi, ok := item.(placementItem); ok && pi.isDefault {
			l.Select(idx)
			break
		}
	}

	return model{list: l}
}

func buildItems(defaultPlacement placement.Placement, trayReady bool) []list.Item {
	all := placement.All()
	items := make([]list.Item, 0, len(all))
	for _, p := range all {
		items = append(items, placementItem{
			p:         p,
			isDefault: p == defaultPlacement,
			trayReady: trayReady,
		})
	}
	return items
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.list.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "enter":
			if item, ok := m.list.SelectedItem().(placementItem); ok {
				chosen := item.p
				m.choice = &chosen
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Run opens the picker and returns the chosen placement. ok is false
// when the user cancelled.
func Run(defaultPlacement placement.Placement, trayReady bool) (p placement.Placement, ok bool, err error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0, false, fmt.Errorf("pick requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	program := tea.NewProgram(newModel(defaultPlacement, trayReady), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return 0, false, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.choice == nil {
		return 0, false, nil
	}
	return *m.choice, true, nil
}

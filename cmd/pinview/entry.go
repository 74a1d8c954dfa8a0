package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pinview/internal/pinview"
)

// entryModel hosts a Panel for the lifetime of one prompt and quits once
// the user verifies or backs out.
type entryModel struct {
	panel     pinview.Panel
	code      string
	verified  bool
	cancelled bool
}

func newEntryModel(panel pinview.Panel) entryModel {
	return entryModel{panel: panel}
}

// Init starts the panel
func (m entryModel) Init() tea.Cmd {
	return m.panel.Init()
}

// Update routes messages to the panel and watches for its results
func (m entryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

	case pinview.VerifiedMsg:
		m.code = msg.Code
		m.verified = true
		return m, tea.Quit

	case pinview.CancelledMsg:
		m.cancelled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.UpdatePanel(msg)
	return m, cmd
}

// View renders the panel until the prompt is finished
func (m entryModel) View() string {
	if m.verified || m.cancelled {
		return ""
	}
	return m.panel.View() + "\n"
}

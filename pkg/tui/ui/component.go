package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is a sized Bubble Tea widget hosted by the root model.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Describer is implemented by messages that can summarize themselves for the
// debug event log.
type Describer interface {
	Describe() string
}

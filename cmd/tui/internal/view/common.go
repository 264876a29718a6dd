package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// TickMsg is broadcast by the root model once per real second; views
// refresh their engine projections when they see it.
type TickMsg struct {
	At time.Time
}

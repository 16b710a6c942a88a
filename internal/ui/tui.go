// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the practice flow
package ui

import (
	"github.com/ListenLab/listenlab-go/internal/app"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until the user quits. A non-nil session
// starts directly on the listening screen (the import flow).
func Run(a *app.App, sess *app.Session, setup Setup) error {
	p := tea.NewProgram(NewModel(a, sess, setup), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

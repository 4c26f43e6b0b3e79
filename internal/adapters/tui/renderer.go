package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/symcache/internal/core/domain"
)

// Browser runs the snapshot browser as a Bubble Tea program.
type Browser struct {
	program *tea.Program
	model   *Model
}

// NewBrowser creates a browser over s.
func NewBrowser(s domain.Snapshot, opts ...tea.ProgramOption) *Browser {
	model := NewModel(s)
	return &Browser{
		program: tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...),
		model:   model,
	}
}

// Run blocks until the user quits or the program's context is cancelled.
func (b *Browser) Run() error {
	_, err := b.program.Run()
	return err
}

// Quit asks the program to exit.
func (b *Browser) Quit() {
	b.program.Quit()
}

// Model returns the browser state.
func (b *Browser) Model() *Model {
	return b.model
}

// Package tui implements an interactive browser over a cache snapshot.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/symcache/internal/core/domain"
)

const (
	entryListWidthRatio = 0.3
	detailPaneMargin    = 3
)

// Model is the browser state.
type Model struct {
	Snapshot    domain.Snapshot
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	ListWidth   int
	DetailWidth int
}

// NewModel creates a browser over s.
func NewModel(s domain.Snapshot) *Model {
	return &Model{Snapshot: s}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the entry under the cursor, or nil when the store is empty.
func (m *Model) Selected() *domain.SnapshotEntry {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Snapshot.Entries) {
		return &m.Snapshot.Entries[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}

	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// Update handles key presses and resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		last := len(m.Snapshot.Entries) - 1
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "j", "down":
			if m.SelectedIdx < last {
				m.SelectedIdx++
			}
		case "g", "home":
			m.SelectedIdx = 0
		case "G", "end":
			m.SelectedIdx = max(last, 0)
		}
		m.ensureVisible()

	case tea.WindowSizeMsg:
		m.ListWidth = int(float64(msg.Width) * entryListWidthRatio)
		m.DetailWidth = msg.Width - m.ListWidth - detailPaneMargin

		fullHeader := titleStyle.Render("ENTRIES") + "\n\n"
		m.ListHeight = max(msg.Height-lipgloss.Height(fullHeader), 1)
		m.ensureVisible()
	}

	return m, nil
}

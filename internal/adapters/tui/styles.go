package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/ui/style"
)

var (
	entryStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	entryErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			MarginRight(2)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)

func kindStyle(k domain.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(style.KindColor(k)).Bold(true)
}

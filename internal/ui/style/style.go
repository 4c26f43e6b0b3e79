// Package style provides the colors and icons shared by the log handler,
// the linear renderer and the inspect browser.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/symcache/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Teal   = lipgloss.Color("#0E9384")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Plus    = "+"
	Arrow   = "→"
	Pointer = ">"
)

// KindColor returns the color used for a symbol kind.
func KindColor(k domain.Kind) lipgloss.Color {
	switch k {
	case domain.KindClass:
		return Iris
	case domain.KindMethod:
		return Teal
	case domain.KindField:
		return Yellow
	default:
		return Slate
	}
}

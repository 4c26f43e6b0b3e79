package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/symcache/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.entryList(),
		m.detailPane(),
	)
}

func (m *Model) entryList() string {
	var s strings.Builder

	entries := m.Snapshot.Entries
	s.WriteString(titleStyle.Render(fmt.Sprintf("ENTRIES (%d)", len(entries))) + "\n\n")

	if len(entries) == 0 {
		s.WriteString(labelStyle.Render("  no entries") + "\n")
	}

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(entries))
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i) + "\n")
	}

	return listStyle.Width(m.ListWidth).Render(s.String())
}

func (m *Model) renderRow(index int) string {
	e := m.Snapshot.Entries[index]

	rowStyle := entryStyle
	icon := style.Check
	if e.Err != nil {
		rowStyle = entryErrorStyle
		icon = style.Cross
	}

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render(style.Pointer + " ")
		if e.Err == nil {
			rowStyle = selectedStyle
		}
	}

	return cursor + rowStyle.Render(icon+" "+e.Key)
}

func (m *Model) detailPane() string {
	var s strings.Builder

	if e := m.Selected(); e != nil {
		if e.Err != nil {
			s.WriteString(failureTitleStyle.Render(e.Key) + "\n\n")
			s.WriteString(entryErrorStyle.Render(e.Err.Error()) + "\n")
		} else {
			s.WriteString(titleStyle.Render(e.Key) + "\n\n")
			s.WriteString(labelStyle.Render("kind  ") + kindStyle(e.Entry.Kind).Render(e.Entry.Kind.String()) + "\n")
			payload := e.Entry.Payload()
			if e.Entry.IsList() {
				s.WriteString(labelStyle.Render("list  ") + strconv.Itoa(len(payload)) + " symbols\n")
			}
			s.WriteString("\n")
			for _, d := range payload {
				s.WriteString(d + "\n")
			}
		}
		s.WriteString("\n")
	}

	fp := m.Snapshot.Fingerprint
	s.WriteString(titleStyle.Render("FINGERPRINT "+m.Snapshot.CacheName) + "\n\n")
	s.WriteString(fingerprintRow("schema_version", strconv.Itoa(fp.SchemaVersion), fp.HasSchemaVersion))
	s.WriteString(fingerprintRow("host_identity", fp.HostIdentity, fp.HasHostIdentity))
	s.WriteString(fingerprintRow("platform_build", fp.PlatformBuild, fp.HasPlatformBuild))

	return detailStyle.Width(m.DetailWidth).Render(s.String())
}

func fingerprintRow(label, value string, has bool) string {
	if !has {
		value = "-"
	}
	return labelStyle.Render(fmt.Sprintf("%-16s", label)) + value + "\n"
}

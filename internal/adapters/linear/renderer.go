// Package linear renders cache snapshots and fingerprint reports as plain,
// line-oriented text for pipes and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/ui/output"
	"go.trai.ch/symcache/internal/ui/style"
)

const (
	labelWidth = 16
	kindWidth  = len("METHOD")
	absent     = "-"
)

// Renderer writes reports to a single writer.
type Renderer struct {
	w      io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer writing to w, or stdout when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// Snapshot writes the stored fingerprint followed by every entry.
func (r *Renderer) Snapshot(s domain.Snapshot) error {
	var b strings.Builder

	b.WriteString(r.output.String("Cache: ").Bold().String() + s.CacheName + "\n\n")

	b.WriteString(r.output.String("Fingerprint").Bold().String() + "\n")
	fp := s.Fingerprint
	r.row(&b, "schema_version", storedValue(strconv.Itoa(fp.SchemaVersion), fp.HasSchemaVersion))
	r.row(&b, "host_identity", storedValue(fp.HostIdentity, fp.HasHostIdentity))
	r.row(&b, "platform_build", storedValue(fp.PlatformBuild, fp.HasPlatformBuild))

	b.WriteString("\n" + r.output.String(fmt.Sprintf("Entries: %d", len(s.Entries))).Bold().String() + "\n")

	keyWidth := 0
	for _, e := range s.Entries {
		keyWidth = max(keyWidth, len(e.Key))
	}

	for _, e := range s.Entries {
		prefix := "  " + pad(e.Key, keyWidth) + "  "
		if e.Err != nil {
			b.WriteString(prefix + r.fail(style.Cross+" "+firstLine(e.Err.Error())) + "\n")
			continue
		}

		kind := r.output.String(pad(e.Entry.Kind.String(), kindWidth)).
			Foreground(r.output.Color(string(style.KindColor(e.Entry.Kind)))).String()
		for i, d := range e.Entry.Payload() {
			if i == 0 {
				b.WriteString(prefix + kind + "  " + d + "\n")
				continue
			}
			b.WriteString(strings.Repeat(" ", len(prefix)+kindWidth+2) + d + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Fingerprint writes the live fingerprint against the stored one.
// applied tells whether the guard ran.
func (r *Renderer) Fingerprint(report domain.FingerprintReport, applied bool) error {
	var b strings.Builder

	live, stored := report.Live, report.Stored
	b.WriteString(r.output.String("Fingerprint").Bold().String() + "\n")
	r.row(&b, "schema_version", r.compare(
		strconv.Itoa(live.SchemaVersion), strconv.Itoa(stored.SchemaVersion), stored.HasSchemaVersion))
	r.row(&b, "host_identity", r.compare(live.HostIdentity, stored.HostIdentity, stored.HasHostIdentity))
	r.row(&b, "platform_build", r.compare(live.PlatformBuild, stored.PlatformBuild, stored.HasPlatformBuild))
	b.WriteString("\n")

	switch {
	case report.Cleared:
		b.WriteString(r.warn("Cache cleared.") + "\n")
	case len(report.Drifted) > 0 && !applied:
		b.WriteString(r.warn("Run with --apply to clear the cache.") + "\n")
	default:
		b.WriteString(r.ok("Cache is current.") + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) row(b *strings.Builder, label, value string) {
	b.WriteString("  " + r.output.String(pad(label, labelWidth)).Faint().String() + value + "\n")
}

func (r *Renderer) compare(live, stored string, has bool) string {
	switch {
	case !has:
		return live + "  " + r.ok(style.Plus+" new")
	case live == stored:
		return live + "  " + r.ok(style.Check)
	default:
		return stored + " " + style.Arrow + " " + live + "  " + r.warn(style.Tilde+" changed")
	}
}

func (r *Renderer) ok(s string) string {
	return r.output.String(s).Foreground(r.output.Color(string(style.Green))).String()
}

func (r *Renderer) warn(s string) string {
	return r.output.String(s).Foreground(r.output.Color(string(style.Yellow))).String()
}

func (r *Renderer) fail(s string) string {
	return r.output.String(s).Foreground(r.output.Color(string(style.Red))).String()
}

func storedValue(v string, has bool) string {
	if !has {
		return absent
	}
	return v
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

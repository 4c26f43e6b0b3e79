package probe

import (
	"runtime"
	"strings"

	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlatformProber = (*Platform)(nil)

// Platform reports the OS build the process runs on.
type Platform struct {
	uname func() (release, version string, err error)
}

// NewPlatform creates a Platform prober reading the running kernel.
func NewPlatform() *Platform {
	return &Platform{uname: kernelBuild}
}

// NewPlatformWith creates a Platform prober with a custom kernel reader.
func NewPlatformWith(uname func() (release, version string, err error)) *Platform {
	return &Platform{uname: uname}
}

// BuildID returns "<goos>/<goarch> <release> <version>".
func (p *Platform) BuildID() (string, error) {
	release, version, err := p.uname()
	if err != nil {
		return "", zerr.Wrap(err, "failed to read kernel release")
	}

	parts := []string{runtime.GOOS + "/" + runtime.GOARCH}
	for _, part := range []string{release, version} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " "), nil
}

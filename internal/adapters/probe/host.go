// Package probe computes the live inputs of the cache fingerprint.
package probe

import (
	"debug/buildinfo"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnversionedName is the version name reported for binaries without Go build info.
const UnversionedName = "unversioned"

var _ ports.HostProber = (*Host)(nil)

// Host derives the identity of a binary from its embedded build info and content hash.
// The version name is the main module version and the version code is the
// xxhash of the file, so a rebuild with an unchanged version still counts as drift.
type Host struct{}

// NewHost creates a new Host prober.
func NewHost() *Host {
	return &Host{}
}

// Identity returns "versionName(versionCode)" for the binary at path.
func (h *Host) Identity(path string) (string, error) {
	code, err := hashFile(path)
	if err != nil {
		return "", err
	}

	name := UnversionedName
	if info, err := buildinfo.ReadFile(path); err == nil && info.Main.Version != "" {
		name = info.Main.Version
	}

	return domain.HostIdentity(name, code), nil
}

func hashFile(path string) (string, error) {
	//nolint:gosec // The source binary path is operator configuration
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open binary"), "path", path)
	}
	defer func() { _ = f.Close() }()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash binary"), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

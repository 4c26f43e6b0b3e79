// Package fingerprint decides when the whole cache must be discarded.
package fingerprint

import (
	"errors"
	"strings"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
)

// Field names reported in Report.Drifted.
const (
	FieldSchemaVersion = "schema_version"
	FieldHostIdentity  = "host_identity"
	FieldPlatformBuild = "platform_build"
)

// Report describes what Enforce found and did.
type Report = domain.FingerprintReport

// Guard computes the live fingerprint and enforces it against a store.
type Guard struct {
	host     ports.HostProber
	platform ports.PlatformProber
	logger   ports.Logger
}

// NewGuard creates a Guard. logger may be nil.
func NewGuard(host ports.HostProber, platform ports.PlatformProber, logger ports.Logger) *Guard {
	return &Guard{host: host, platform: platform, logger: logger}
}

// Compute returns the live fingerprint for the given schema version and host binary.
func (g *Guard) Compute(schemaVersion int, sourceBinary string) (domain.Fingerprint, error) {
	identity, err := g.host.Identity(sourceBinary)
	if err != nil {
		return domain.Fingerprint{}, errors.Join(domain.ErrHostProbeFailed, err)
	}

	build, err := g.platform.BuildID()
	if err != nil {
		return domain.Fingerprint{}, errors.Join(domain.ErrPlatformProbeFailed, err)
	}

	return domain.Fingerprint{
		SchemaVersion: schemaVersion,
		HostIdentity:  identity,
		PlatformBuild: build,
	}, nil
}

// Stored reads the persisted fingerprint. Absent fields are reported as such.
func Stored(kv ports.KVStore) (domain.StoredFingerprint, error) {
	var (
		out domain.StoredFingerprint
		err error
	)

	if out.SchemaVersion, out.HasSchemaVersion, err = kv.GetInt(domain.KeySchemaVersion); err != nil {
		return domain.StoredFingerprint{}, err
	}
	if out.HostIdentity, out.HasHostIdentity, err = kv.GetString(domain.KeyHostIdentity); err != nil {
		return domain.StoredFingerprint{}, err
	}
	if out.PlatformBuild, out.HasPlatformBuild, err = kv.GetString(domain.KeyPlatformBuild); err != nil {
		return domain.StoredFingerprint{}, err
	}
	return out, nil
}

// Drift lists the fields of stored that are present and differ from live.
// Every field is compared.
func Drift(live domain.Fingerprint, stored domain.StoredFingerprint) []string {
	var drifted []string
	if stored.HasSchemaVersion && stored.SchemaVersion != live.SchemaVersion {
		drifted = append(drifted, FieldSchemaVersion)
	}
	if stored.HasHostIdentity && stored.HostIdentity != live.HostIdentity {
		drifted = append(drifted, FieldHostIdentity)
	}
	if stored.HasPlatformBuild && stored.PlatformBuild != live.PlatformBuild {
		drifted = append(drifted, FieldPlatformBuild)
	}
	return drifted
}

// Check compares live with the fingerprint stored in kv without changing it.
func Check(kv ports.KVStore, live domain.Fingerprint) (Report, error) {
	stored, err := Stored(kv)
	if err != nil {
		return Report{}, err
	}
	return Report{Live: live, Stored: stored, Drifted: Drift(live, stored)}, nil
}

// Enforce compares live with the fingerprint stored in kv. Any drift clears
// the whole store. Fields that are absent or were cleared are then written,
// so all three fields always end up current.
func (g *Guard) Enforce(kv ports.KVStore, live domain.Fingerprint) (Report, error) {
	report, err := Check(kv, live)
	if err != nil {
		return Report{}, err
	}
	stored := report.Stored

	if len(report.Drifted) > 0 {
		if err := kv.Clear(); err != nil {
			return report, err
		}
		report.Cleared = true
		stored = domain.StoredFingerprint{}
		if g.logger != nil {
			g.logger.Info("cache cleared: " + strings.Join(report.Drifted, ", ") + " changed")
		}
	}

	if !stored.HasSchemaVersion {
		if err := kv.PutInt(domain.KeySchemaVersion, live.SchemaVersion); err != nil {
			return report, err
		}
	}
	if !stored.HasHostIdentity {
		if err := kv.PutString(domain.KeyHostIdentity, live.HostIdentity); err != nil {
			return report, err
		}
	}
	if !stored.HasPlatformBuild {
		if err := kv.PutString(domain.KeyPlatformBuild, live.PlatformBuild); err != nil {
			return report, err
		}
	}

	return report, nil
}

package domain

const (
	// KeySchemaVersion is the reserved key holding the schema version.
	KeySchemaVersion = "symcache:schema_version"

	// KeyHostIdentity is the reserved key holding the host binary identity.
	KeyHostIdentity = "symcache:host_identity"

	// KeyPlatformBuild is the reserved key holding the platform build id.
	KeyPlatformBuild = "symcache:platform_build"
)

// Fingerprint is the tuple whose drift invalidates every stored descriptor.
type Fingerprint struct {
	SchemaVersion int    `json:"schema_version"`
	HostIdentity  string `json:"host_identity"`
	PlatformBuild string `json:"platform_build"`
}

// StoredFingerprint is a fingerprint read back from the store.
// Fields that were never written are reported as absent.
type StoredFingerprint struct {
	Fingerprint

	HasSchemaVersion bool
	HasHostIdentity  bool
	HasPlatformBuild bool
}

// IsReservedKey reports whether key is one of the fingerprint keys.
func IsReservedKey(key string) bool {
	switch key {
	case KeySchemaVersion, KeyHostIdentity, KeyPlatformBuild:
		return true
	default:
		return false
	}
}

// HostIdentity formats a version name and version code as "name(code)".
func HostIdentity(versionName, versionCode string) string {
	return versionName + "(" + versionCode + ")"
}

// FingerprintReport describes a comparison of the live fingerprint with the
// stored one and what was done about it.
type FingerprintReport struct {
	Live   Fingerprint
	Stored StoredFingerprint
	// Drifted lists the stored fields that differed from the live fingerprint.
	Drifted []string
	// Cleared is set when the store was wiped.
	Cleared bool
}

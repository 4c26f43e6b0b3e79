package ports

// HostProber computes the identity of the host binary.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type HostProber interface {
	// Identity returns "versionName(versionCode)" for the binary at path.
	Identity(path string) (string, error)
}

// PlatformProber reads the platform build identifier.
type PlatformProber interface {
	// BuildID returns the incremental build id of the running platform.
	BuildID() (string, error)
}

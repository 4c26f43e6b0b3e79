package app

import (
	"context"

	"go.trai.ch/symcache/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/engine/fingerprint"
)

// FingerprintOptions configuration for the Fingerprint method.
type FingerprintOptions struct {
	Settings
	// Apply runs the guard, clearing the store when the fingerprint drifted.
	Apply bool
}

// Fingerprint compares the live fingerprint with the stored one.
func (a *App) Fingerprint(_ context.Context, opts FingerprintOptions) error {
	cfg, err := a.options(opts.Settings, true)
	if err != nil {
		return err
	}

	report, err := a.enforce(cfg, opts.Apply)
	if err != nil {
		return err
	}

	return linear.NewRenderer(a.stdout).Fingerprint(report, opts.Apply)
}

// enforce computes the live fingerprint and checks it against the store.
// With apply the guard runs and may clear the store.
func (a *App) enforce(cfg domain.Options, apply bool) (_ domain.FingerprintReport, err error) {
	live, err := a.guard.Compute(cfg.SchemaVersion, cfg.SourceBinaryPath)
	if err != nil {
		return domain.FingerprintReport{}, err
	}

	kv, err := a.openStore(cfg)
	if err != nil {
		return domain.FingerprintReport{}, err
	}
	defer closeStore(kv, &err)

	if !apply {
		return fingerprint.Check(kv, live)
	}
	return a.guard.Enforce(kv, live)
}

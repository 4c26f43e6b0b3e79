package app

import (
	"context"
	"encoding/json"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/symcache/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/tui"      //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/engine/entrystore"
	"go.trai.ch/symcache/internal/engine/fingerprint"
)

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	Settings
	// OutputMode is one of auto, tui, linear or ci.
	OutputMode string
	// JSON writes the snapshot as JSON instead of rendering it.
	JSON bool
}

// Inspect shows the stored fingerprint and every entry of the store.
func (a *App) Inspect(ctx context.Context, opts InspectOptions) error {
	cfg, err := a.options(opts.Settings, false)
	if err != nil {
		return err
	}

	snapshot, err := a.snapshot(cfg)
	if err != nil {
		return err
	}

	if opts.JSON {
		return a.writeJSON(snapshot)
	}

	mode, err := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if err != nil {
		return err
	}

	if mode == detector.ModeTUI {
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		err := tui.NewBrowser(snapshot, teaOpts...).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	return linear.NewRenderer(a.stdout).Snapshot(snapshot)
}

func (a *App) snapshot(cfg domain.Options) (_ domain.Snapshot, err error) {
	kv, err := a.openStore(cfg)
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer closeStore(kv, &err)

	stored, err := fingerprint.Stored(kv)
	if err != nil {
		return domain.Snapshot{}, err
	}

	entries, err := entrystore.New(kv).Entries()
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		CacheName:   cfg.CacheName,
		Fingerprint: stored,
		Entries:     entries,
	}, nil
}

type snapshotJSON struct {
	Cache       string          `json:"cache"`
	Fingerprint fingerprintJSON `json:"fingerprint"`
	Entries     []entryJSON     `json:"entries"`
}

type fingerprintJSON struct {
	SchemaVersion *int    `json:"schema_version"`
	HostIdentity  *string `json:"host_identity"`
	PlatformBuild *string `json:"platform_build"`
}

type entryJSON struct {
	Key   string             `json:"key"`
	Entry *domain.CacheEntry `json:"entry,omitempty"`
	Error string             `json:"error,omitempty"`
}

func (a *App) writeJSON(s domain.Snapshot) error {
	out := snapshotJSON{Cache: s.CacheName, Entries: make([]entryJSON, 0, len(s.Entries))}

	fp := s.Fingerprint
	if fp.HasSchemaVersion {
		out.Fingerprint.SchemaVersion = &fp.SchemaVersion
	}
	if fp.HasHostIdentity {
		out.Fingerprint.HostIdentity = &fp.HostIdentity
	}
	if fp.HasPlatformBuild {
		out.Fingerprint.PlatformBuild = &fp.PlatformBuild
	}

	for _, e := range s.Entries {
		item := entryJSON{Key: e.Key}
		if e.Err != nil {
			item.Error = e.Err.Error()
		} else {
			item.Entry = &e.Entry
		}
		out.Entries = append(out.Entries, item)
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

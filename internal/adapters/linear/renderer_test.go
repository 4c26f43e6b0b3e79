package linear_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symcache/internal/adapters/linear"
	"go.trai.ch/symcache/internal/core/domain"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return linear.NewRenderer(&buf), &buf
}

func TestRenderer_Snapshot(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   domain.Snapshot
		goldenName string
	}{
		{
			name:       "empty store",
			snapshot:   domain.Snapshot{CacheName: "symcache"},
			goldenName: "snapshot_empty",
		},
		{
			name: "entries",
			snapshot: domain.Snapshot{
				CacheName: "symcache",
				Fingerprint: domain.StoredFingerprint{
					Fingerprint:      domain.Fingerprint{SchemaVersion: 2, HostIdentity: "app-1.4(9f3c)"},
					HasSchemaVersion: true,
					HasHostIdentity:  true,
				},
				Entries: []domain.SnapshotEntry{
					{Key: "main.handler", Entry: domain.CacheEntry{Kind: domain.KindMethod, Descriptor: "app.Server->Handle(string)"}},
					{Key: "models", Entry: domain.CacheEntry{Kind: domain.KindClass, Descriptors: []string{"app.User", "app.Order"}}},
					{Key: "stale", Err: errors.New("invalid cache entry\nunexpected end of JSON input")},
				},
			},
			goldenName: "snapshot_entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t)
			require.NoError(t, r.Snapshot(tt.snapshot))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_Fingerprint(t *testing.T) {
	live := domain.Fingerprint{SchemaVersion: 2, HostIdentity: "app(2)", PlatformBuild: "b1"}
	drifted := domain.FingerprintReport{
		Live: live,
		Stored: domain.StoredFingerprint{
			Fingerprint:      domain.Fingerprint{SchemaVersion: 1, HostIdentity: "app(2)"},
			HasSchemaVersion: true,
			HasHostIdentity:  true,
		},
		Drifted: []string{"schema_version"},
	}
	cleared := drifted
	cleared.Cleared = true
	current := domain.FingerprintReport{
		Live: live,
		Stored: domain.StoredFingerprint{
			Fingerprint:      live,
			HasSchemaVersion: true,
			HasHostIdentity:  true,
			HasPlatformBuild: true,
		},
	}

	tests := []struct {
		name       string
		report     domain.FingerprintReport
		applied    bool
		goldenName string
	}{
		{name: "drift not applied", report: drifted, goldenName: "fingerprint_drift"},
		{name: "drift applied", report: cleared, applied: true, goldenName: "fingerprint_cleared"},
		{name: "current", report: current, goldenName: "fingerprint_current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t)
			require.NoError(t, r.Fingerprint(tt.report, tt.applied))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	require.NoError(t, r.Snapshot(domain.Snapshot{
		CacheName: "symcache",
		Entries: []domain.SnapshotEntry{
			{Key: "k", Entry: domain.CacheEntry{Kind: domain.KindField, Descriptor: "p.T->N:int"}},
		},
	}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "p.T->N:int")
}

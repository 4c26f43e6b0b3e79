package app

import (
	"context"
	"fmt"

	"go.trai.ch/symcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Span and attribute names for watch checks.
const (
	SpanWatchCheck = "symcache.watch.check"
	AttrBinary     = "symcache.binary"
	AttrCleared    = "symcache.cleared"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Settings
	// Trace logs a line for every check span.
	Trace bool
}

// Watch runs the guard now and again whenever the source binary changes,
// until ctx is cancelled. Check failures are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.options(opts.Settings, true)
	if err != nil {
		return err
	}

	if opts.Trace {
		shutdown := telemetry.Install(telemetry.NewBridge(a.logger))
		defer func() {
			_ = shutdown(detach(ctx))
		}()
	}

	a.check(ctx, cfg)

	if err := a.watcher.Start(ctx, cfg.SourceBinaryPath); err != nil {
		_ = a.watcher.Stop()
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	window := cfg.WatchDebounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	// A pending check absorbs further triggers.
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(window, func(_ []string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	a.logger.Info(fmt.Sprintf("watching %s", cfg.SourceBinaryPath))

	g, ctx := errgroup.WithContext(ctx)

	// Event Routine
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Check Routine
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				a.check(ctx, cfg)
			}
		}
	})

	return g.Wait()
}

// check enforces the fingerprint once and logs the outcome.
func (a *App) check(ctx context.Context, cfg domain.Options) {
	_, span := a.tracer.Start(ctx, SpanWatchCheck, ports.WithAttribute(AttrBinary, cfg.SourceBinaryPath))
	defer span.End()

	report, err := a.enforce(cfg, true)
	if err != nil {
		span.RecordError(err)
		a.logger.Error(zerr.Wrap(err, "fingerprint check failed"))
		return
	}

	span.SetAttribute(AttrCleared, report.Cleared)
	if !report.Cleared {
		a.logger.Info("cache " + cfg.CacheName + " is current")
	}
}

package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/symcache/internal/core/domain"
	"go.trai.ch/symcache/internal/engine/entrystore"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Settings
	// All removes the whole store directory, every namespace included.
	All bool
}

// Clean clears the configured cache, or removes the store directory with All.
func (a *App) Clean(_ context.Context, opts CleanOptions) (err error) {
	cfg, err := a.options(opts.Settings, false)
	if err != nil {
		return err
	}

	if opts.All {
		dir := domain.StoreDir(cfg.DataDirectory)
		a.logger.Info(fmt.Sprintf("removing %s...", dir))
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove store directory"), "dir", dir)
		}
		a.logger.Info(fmt.Sprintf("removed %s", dir))
		return nil
	}

	kv, err := a.openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(kv, &err)

	a.logger.Info(fmt.Sprintf("clearing cache %s...", cfg.CacheName))
	if err := entrystore.New(kv).Clear(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear cache"), "cache", cfg.CacheName)
	}
	a.logger.Info(fmt.Sprintf("cleared cache %s", cfg.CacheName))
	return nil
}

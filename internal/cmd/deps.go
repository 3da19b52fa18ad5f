package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jimezsa/jobboard/internal/bookmarks"
	"github.com/jimezsa/jobboard/internal/catalog"
	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/network"
	"github.com/jimezsa/jobboard/internal/storage"
)

func noop() {}

func (c *Context) newSource(ctx context.Context) (catalog.Source, func(), error) {
	if c.Source != nil {
		return c.Source, noop, nil
	}

	cfg := c.Config
	switch cfg.DataSource {
	case config.SourceFile:
		return catalog.FileSource{Path: cfg.DataPath}, noop, nil
	case config.SourceURL:
		client, err := network.NewClient(network.Options{Proxy: cfg.Proxy})
		if err != nil {
			return nil, nil, fmt.Errorf("http client: %w", err)
		}
		return catalog.NewRemoteSource(cfg.DataURL, client), noop, nil
	case config.SourcePostgres:
		pool, err := catalog.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPostgresSource(pool), pool.Close, nil
	default:
		return catalog.EmbeddedSource{}, noop, nil
	}
}

// loadCatalog loads the dataset once, showing a spinner on interactive stderr.
func (c *Context) loadCatalog(ctx context.Context) (catalog.Result, error) {
	if c.Source == nil {
		if err := c.Config.ValidateSource(); err != nil {
			return catalog.Result{}, fmt.Errorf("invalid config: %w", err)
		}
	}
	source, cleanup, err := c.newSource(ctx)
	if err != nil {
		return catalog.Result{}, err
	}
	defer cleanup()

	latency := time.Duration(c.Config.LatencyMS) * time.Millisecond
	repo := catalog.NewRepository(source, latency, c.Logger)

	stop := startLoadIndicator(c)
	result, err := repo.Load(ctx)
	if stop != nil {
		stop()
	}
	return result, err
}

// openStorage never fails: an unreachable backend degrades to memory so the
// bookmark store still works for this process.
func (c *Context) openStorage(ctx context.Context) (storage.Storage, func()) {
	if c.Storage != nil {
		return c.Storage, noop
	}

	cfg := c.Config
	if err := cfg.ValidateStorage(); err != nil {
		c.Logger.Warn().Err(err).Msg("invalid storage config; bookmarks will not persist")
		return storage.NewMemoryStorage(), noop
	}
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemoryStorage(), noop
	case config.StorageRedis:
		rdb, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			c.Logger.Warn().Err(err).Msg("redis unavailable; bookmarks will not persist")
			return storage.NewMemoryStorage(), noop
		}
		st := storage.NewRedisStorage(rdb, cfg.RedisPrefix)
		return st, func() { _ = st.Close() }
	default:
		st, err := storage.NewFileStorage(cfg.ResolveStorageDir(c.ConfigDir))
		if err != nil {
			c.Logger.Warn().Err(err).Msg("file storage unavailable; bookmarks will not persist")
			return storage.NewMemoryStorage(), noop
		}
		return st, noop
	}
}

func (c *Context) openBookmarks(ctx context.Context) (*bookmarks.Store, func()) {
	st, cleanup := c.openStorage(ctx)
	return bookmarks.Open(ctx, st, c.Logger), cleanup
}

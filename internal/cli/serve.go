package cli

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/casegen/internal/config"
	"github.com/matzehuels/casegen/internal/server"
	"github.com/matzehuels/casegen/pkg/batch"
	"github.com/matzehuels/casegen/pkg/cache"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		metrics    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve POST /api/v1/generate, /health, /ready and /metrics.

Settings come from ~/.config/casegen/config.toml (or --config). When a Redis
address is configured, either in the file or through CASEGEN_REDIS_ADDR,
seeded batches are cached in Redis and shared between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics.Enabled = metrics
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/casegen/config.toml)")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "expose Prometheus metrics")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	var (
		store cache.Cache = cache.NewNullCache()
		keyer             = cache.NewDefaultKeyer()
	)
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.Timeout.Duration,
		})
		if err != nil {
			return err
		}
		store = rc
		keyer = cache.NewScopedKeyer(keyer, cfg.Redis.KeyPrefix)
		c.Logger.Info("using redis cache", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.KeyPrefix)
	}
	defer store.Close()

	if cfg.Metrics.Enabled {
		server.NewMetrics(appName, prometheus.DefaultRegisterer).Register()
	}

	runner := batch.NewRunner(store, keyer, c.Logger)
	srv := server.New(cfg.Server.Addr, runner, c.Logger, server.RouterConfig{
		RequestTimeout: cfg.Server.RequestTimeout.Duration,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	})

	printInfo("Serving casegen API")
	printKeyValue("Address", cfg.Server.Addr)
	if cfg.Redis.Addr != "" {
		printKeyValue("Cache", "redis://"+cfg.Redis.Addr)
	}
	if cfg.Metrics.Enabled {
		printKeyValue("Metrics", cfg.Metrics.Path)
	}
	start := time.Now()
	err := srv.ListenAndServe(ctx)
	printDetail("Uptime: %s", time.Since(start).Round(time.Second))
	return err
}

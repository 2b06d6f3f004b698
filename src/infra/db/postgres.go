package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jokeapi/src/infra/config"
	"jokeapi/src/infra/logger"
)

// healthTimeout bounds a single health ping.
const healthTimeout = 2 * time.Second

// Postgres owns the pgx pool shared by the joke repository and the migrator.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New opens the pool described by cfg and pings it once before returning.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	log = logger.WithComponent(log, "postgres")

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	applyPoolSettings(poolCfg, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"max_conns", poolCfg.MaxConns,
		"min_conns", poolCfg.MinConns,
		"auto_migrate", cfg.AutoMigrate,
	)

	return &Postgres{
		Pool: pool,
		log:  log,
	}, nil
}

// applyPoolSettings copies the APP_DB_* sizing onto the pgx config. pgx has
// no idle cap, so MaxIdleConns becomes the number of connections kept open,
// never above MaxConns. Zero values keep pgx's defaults.
func applyPoolSettings(poolCfg *pgxpool.Config, cfg config.DatabaseConfig) {
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = min(int32(cfg.MaxIdleConns), poolCfg.MaxConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
		p.log.Info("database connection closed")
	}
}

// Health pings the database within healthTimeout. On failure the pool
// counters are logged next to the error.
func (p *Postgres) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := p.Pool.Ping(ctx); err != nil {
		stat := p.Pool.Stat()
		p.log.Warn("database ping failed",
			"error", err,
			"total_conns", stat.TotalConns(),
			"idle_conns", stat.IdleConns(),
		)
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

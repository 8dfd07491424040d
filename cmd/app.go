// Package cmd holds the loan-tranche subcommands.
package cmd

import (
	"context"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"loan-tranche/config"
	"loan-tranche/repository"
	"loan-tranche/service"
)

const redisPingTimeout = 2 * time.Second

// Register adds every subcommand to c.
func Register(c *subcommands.Commander, cfg *config.Config, log zerolog.Logger) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&serveCmd{cfg: cfg, log: log}, "")
	c.Register(&searchCmd{cfg: cfg, log: log}, "")
}

// app is the wired set of repositories and services shared by the commands.
type app struct {
	loans    *service.LoanService
	tranches *service.TrancheService
	closers  []func() error
	log      zerolog.Logger
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) *app {
	a := &app{log: log}

	var cache repository.CacheRepository = repository.NewMemoryCache(cfg.MaxStoredSearches)
	if cfg.RedisAddr != "" {
		rc := repository.NewRedisCache(cfg.RedisAddr)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		err := rc.Ping(pingCtx)
		cancel()

		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caching in memory")
			_ = rc.Close()
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("caching tranche searches in redis")
			cache = rc
			a.closers = append(a.closers, rc.Close)
		}
	}

	a.loans = service.NewLoanService(repository.NewLoanRepositoryMemory(), log)
	a.tranches = service.NewTrancheService(
		repository.NewSearchRepositoryMemory(cfg.MaxStoredSearches),
		cache,
		service.TrancheServiceConfig{
			DefaultPrincipal: cfg.EvaluationPrincipal,
			DefaultOffers:    config.DefaultRateTable(),
			CacheTTL:         cfg.CacheTTL,
		},
		log,
	)
	return a
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn().Err(err).Msg("error while closing")
		}
	}
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"loan-tranche/config"
	httpLayer "loan-tranche/http"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP API.
type serveCmd struct {
	cfg  *config.Config
	log  zerolog.Logger
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the loan and tranche split HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-port <port>]

  Starts the HTTP API: POST /loan/calculate, POST /loan/tranche-split,
  GET /loan/tranche-split/{id}.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", c.cfg.Port, "Port to listen on. Overrides PORT.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := newApp(ctx, c.cfg, c.log)
	defer a.Close()

	rateLimiter := httpLayer.NewRateLimiter(c.cfg.RateLimitCapacity, c.cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Loan:        httpLayer.NewLoanHandler(a.loans, c.log),
		Tranche:     httpLayer.NewTrancheHandler(a.tranches, c.log),
		RateLimiter: rateLimiter,
		Log:         c.log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", c.port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		c.log.Info().Str("addr", server.Addr).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		c.log.Error().Err(err).Msg("error starting server")
		return subcommands.ExitFailure
	case <-quit:
		c.log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		c.log.Error().Err(err).Msg("error during server shutdown")
		return subcommands.ExitFailure
	}

	c.log.Info().Msg("server exited")
	return subcommands.ExitSuccess
}

// README: Entry point; loads config, resolves the catalog source, wires services and serves HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"charterquote/internal/config"
	httptransport "charterquote/internal/http"
	"charterquote/internal/infra"
	"charterquote/internal/modules/catalog"
	"charterquote/internal/modules/pricing"
	"charterquote/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}
	logger := infra.NewLogger(cfg.Env, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, source, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}
	logger.Info().
		Str("source", source).
		Int("ports", len(cat.Ports())).
		Int("vessels", len(cat.Vessels())).
		Int("styles", len(cat.Styles())).
		Msg("catalog loaded")

	metrics := infra.NewMetrics()
	pricingSvc := pricing.NewService(cat, cfg.Quote.Currency)
	quoteSvc := quote.NewService(pricingSvc, cfg.Quote, metrics)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Quote:   quoteSvc,
		Metrics: metrics,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Str("env", cfg.Env).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("serve")
	}
	logger.Info().Msg("stopped")
}

// loadCatalog picks Postgres, then a YAML file, then the built-in tables.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, string, error) {
	switch {
	case cfg.DB.DSN != "":
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, "", err
		}
		// the catalog is read once; no pool is needed afterwards
		defer pool.Close()

		store := catalog.NewStore(pool)
		if cfg.DB.Seed {
			if err := store.Seed(ctx, catalog.DefaultData()); err != nil {
				return nil, "", err
			}
		}
		cat, err := store.Load(ctx)
		return cat, "postgres", err
	case cfg.Catalog.File != "":
		cat, err := catalog.LoadFile(cfg.Catalog.File)
		return cat, "file", err
	default:
		return catalog.Default(), "builtin", nil
	}
}

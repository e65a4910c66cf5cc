// Command graphqd runs the graphqd HTTP service: a multi-tenant temporal
// transaction-graph query API backed by Postgres.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/api"
	"github.com/tgraph/graphqd/internal/config"
	"github.com/tgraph/graphqd/internal/db"
	"github.com/tgraph/graphqd/internal/db/migrations"
	"github.com/tgraph/graphqd/internal/dbpool"
	"github.com/tgraph/graphqd/internal/engine"
	"github.com/tgraph/graphqd/internal/store"
)

// Build-time variable set via ldflags.
var version = "dev"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		log.WithError(err).Fatal("connecting to database")
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		log.WithError(err).Fatal("running migrations")
	}

	base := store.Base{Pool: pool, Log: log}
	vertices := store.NewVertexStore(base)
	edges := store.NewEdgeStore(base)
	tenants := store.NewTenantStore(pool)

	eng := engine.New(store.NewGraphSource(vertices, edges))

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:          log,
		Pool:         pool,
		Vertices:     vertices,
		Edges:        edges,
		Cycles:       eng,
		TenantLookup: tenants,
		CORSOrigins:  cfg.CORSOrigins,
		Version:      version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("starting graphqd")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

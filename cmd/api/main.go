package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/db"
	internalhttp "github.com/geocoder89/runtrack/internal/http"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log := observability.NewLogger(cfg.Env)

	shutdownTracer, err := observability.InitTracer(context.Background(), "runtrack", cfg.OtelEndpoint)

	if err != nil {
		log.Error("otel init failed", "error", err)
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()

		if err := shutdownTracer(ctx); err != nil {
			log.Error("otel shutdown failed", "error", err)
		}
	}()

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if err := db.EnsureSeedUser(context.Background(), pool, cfg); err != nil {
		log.Error("seed user failed", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(reg)
	metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	router := internalhttp.NewRouter(cfg, log, pool, prom, metricsHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port, "env", cfg.Env)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCh := make(chan error, 1)

	go func() {
		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		shutdownCh <- srv.Shutdown(ctx)
	}()

	select {
	case err := <-shutdownCh:
		if err != nil {
			log.Error("graceful shutdown failed", "error", err)
			return
		}

		log.Info("server stopped")
	case <-time.After(12 * time.Second):
		log.Error("graceful shutdown timed out")
	}
}

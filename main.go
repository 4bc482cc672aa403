package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/controllers/healthz"
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/money"
	"github.com/expense-tracker/backend/internal/router"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

func main() {
	cfg, err := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := database.Open(cfg.StorageBackend, cfg.DataDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, teardown, err := router.Config(cfg, version)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(router.Routes{
		V1: v1.Controller{
			Expenses: store.NewExpenses(ctx, db),
			Budgets:  store.NewBudgets(ctx, db),
			Money:    money.New(cfg.CurrencyMarker),
			Version:  version,
		},
		Healthz:     healthz.Controller{DB: db},
		EnablePprof: cfg.EnablePprof,
	}, r.Group("/"))

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("address", cfg.ListenAddress).Str("backend", cfg.StorageBackend).Msg("backend startup complete")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msg(err.Error())
	}
}

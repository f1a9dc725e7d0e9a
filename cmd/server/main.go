package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/api"
	"github.com/docetangerina/estoque/internal/auth"
	"github.com/docetangerina/estoque/internal/config"
	"github.com/docetangerina/estoque/internal/db"
	"github.com/docetangerina/estoque/internal/store"
	"github.com/docetangerina/estoque/internal/usecase"
	"github.com/docetangerina/estoque/internal/watch"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return err
	}

	secret, err := store.TokenSecret(context.Background(), database)
	if err != nil {
		return err
	}

	bus := watch.NewBus()

	categories := usecase.NewCategories(database, bus, log)
	categories.MaxNameLength = cfg.MaxNameLength
	sizes := usecase.NewSizes(database, bus, log)
	sizes.MaxNameLength = cfg.MaxNameLength
	items := usecase.NewItems(database, bus, log)
	items.RequireDescription = cfg.RequireDescription
	users := usecase.NewUsers(database, auth.BcryptEncrypter{}, log)

	router := api.NewRouter(api.Services{
		Categories: categories,
		Sizes:      sizes,
		Items:      items,
		Users:      users,
	}, secret, cfg.PhotosDir, log)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.LoggingMiddleware(log)(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

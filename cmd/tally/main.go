package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/maaaruch/tally/internal/app"
	"github.com/maaaruch/tally/internal/config"
	"github.com/maaaruch/tally/internal/domain"
	"github.com/maaaruch/tally/internal/logging"
	"github.com/maaaruch/tally/internal/prompt"
	"github.com/maaaruch/tally/internal/registry"
	"github.com/maaaruch/tally/internal/session"
	"github.com/maaaruch/tally/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Debug, cfg.Color)

	reg, err := registry.New(domain.DefaultCandidates())
	if err != nil {
		return err
	}

	id := uuid.New()
	tally, closeTally, err := newTally(cfg, reg, id)
	if err != nil {
		return err
	}
	defer closeTally()

	logger.WithFields(log.Fields{
		"session": id.String(),
		"tally":   cfg.Tally,
	}).Debug("starting")

	input := prompt.NewReader(os.Stdin)
	defer input.Close()

	console := prompt.NewConsole(os.Stdout, input, cfg.Color)
	application := app.New(console, reg, session.New(id, reg, tally), logger)
	return application.Run(ctx)
}

func newTally(cfg config.Config, reg *registry.Registry, id uuid.UUID) (session.Tally, func(), error) {
	if cfg.Tally != config.BackendSQLite {
		return session.NewMemoryTally(reg.List()), func() {}, nil
	}

	store, err := storage.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open tally store: %w", err)
	}
	if err := store.SeedCandidates(reg.List()); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("seed candidates: %w", err)
	}
	return storage.NewTally(store, id.String()), func() { _ = store.Close() }, nil
}

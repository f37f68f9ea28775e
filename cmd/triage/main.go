package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/triage/internal/cli"
	"github.com/alexanderramin/triage/internal/config"
	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// A catalog that fails validation is fatal; the engine assumes it is
	// consistent.
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	engine := triage.New(cat)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	uow := db.NewSQLiteUnitOfWork(database)
	app := &cli.App{
		Triage: service.NewTriageService(engine,
			repository.NewSQLiteConversationRepo(database),
			repository.NewSQLiteAnswerRepo(database),
			uow,
			observers...),
		Assess:          service.NewAssessmentService(engine, observers...),
		Catalog:         cat,
		Logger:          logger,
		HTTPAddr:        cfg.HTTPAddr,
		ConversationTTL: cfg.ConversationTTL,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

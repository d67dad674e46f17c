package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/checkpoint/internal/checklist"
	"github.com/alexanderramin/checkpoint/internal/cli"
	"github.com/alexanderramin/checkpoint/internal/config"
	"github.com/alexanderramin/checkpoint/internal/db"
	"github.com/alexanderramin/checkpoint/internal/repository"
	"github.com/alexanderramin/checkpoint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// The TUI owns the terminal, so logs go to a file, to stderr on request,
	// or nowhere.
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	checkRepo := repository.NewSQLiteCheckRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	checks := service.NewChecklistService(checkRepo, submissionRepo, uow, service.NewSlogUseCaseObserver(logger))

	var observer checklist.Observer = checklist.NoopObserver{}
	if cfg.LogCalls || cfg.LogFile != "" {
		observer = checklist.NewLogObserver(logger)
	}

	app := &cli.App{
		Config: cfg,
		Checks: checks,
		Logger: logger,
		NewSource: func(cfg config.Config) (checklist.Source, error) {
			return checklist.New(cfg, checklist.Deps{Service: checks, Observer: observer})
		},
	}

	// Detect interactive terminal: the bare command opens the TUI only there.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	switch {
	case cfg.LogFile != "":
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	case cfg.LogCalls:
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
}

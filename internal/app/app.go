package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/leadflow/internal/adapter/leadapi"
	"github.com/heartmarshall/leadflow/internal/config"
	"github.com/heartmarshall/leadflow/internal/domain"
	"github.com/heartmarshall/leadflow/internal/service/leadview"
	"github.com/heartmarshall/leadflow/internal/transport/cli"
)

// Run is the terminal client entry point. It loads configuration, connects
// the lead view to the remote API and runs the console on stdin/stdout until
// the user quits or ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOut, closeLog, err := logDestination(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := NewLoggerTo(logOut, cfg.Log)
	logger.Info("starting leadflow",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.Gateway.BaseURL),
	)

	client, err := leadapi.NewClient(cfg.Gateway, logger)
	if err != nil {
		return err
	}

	view := leadview.NewService(logger, client, leadview.Config{
		SearchDebounce:       cfg.View.SearchDebounce,
		RefetchAfterMutation: cfg.View.RefetchAfterMutation,
	})
	defer view.Close()

	// A failed first page is not fatal: the console shows the message and
	// "load" retries.
	if err := view.Load(ctx); err != nil {
		logger.WarnContext(ctx, "initial load failed", slog.String("error", err.Error()))
		if errors.Is(err, domain.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "session rejected by the lead API; check LEADFLOW_SESSION_COOKIE")
		}
	}

	return cli.NewConsole(logger, view, os.Stdin, os.Stdout).Run(ctx)
}

func logDestination(cfg config.LogConfig) (io.Writer, func(), error) {
	if cfg.File == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

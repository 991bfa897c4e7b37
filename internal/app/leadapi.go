package app

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/leadflow/internal/config"
	"github.com/heartmarshall/leadflow/internal/fakeserver"
)

// RunLeadAPI serves the in-memory lead API until ctx is cancelled.
func RunLeadAPI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting local lead api",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.Int("seed_leads", cfg.Server.SeedLeads),
		slog.Bool("session_required", cfg.Server.SessionCookie != ""),
	)

	clock := clockwork.NewRealClock()
	repo := fakeserver.NewRepo(fakeserver.WithClock(clock))
	repo.Put(fakeserver.SeedLeads(cfg.Server.SeedLeads, clock.Now())...)

	return fakeserver.NewServer(cfg.Server, cfg.CORS, logger, repo, BuildVersion()).Run(ctx)
}

// Package fakeserver is an in-memory implementation of the lead REST API,
// used for local development and integration tests of the client.
package fakeserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leadflow/internal/config"
	"github.com/heartmarshall/leadflow/internal/transport/middleware"
	"github.com/heartmarshall/leadflow/internal/transport/rest"
)

// Server serves the lead API over HTTP.
type Server struct {
	cfg     config.ServerConfig
	log     *slog.Logger
	handler http.Handler
}

// NewServer builds the router and middleware chain around repo.
func NewServer(cfg config.ServerConfig, cors config.CORSConfig, log *slog.Logger, repo *Repo, version string) *Server {
	router := mux.NewRouter()

	health := rest.NewHealthHandler(repo, version)
	router.HandleFunc("/live", health.Live).Methods(http.MethodGet)
	router.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	leads := mux.NewRouter()
	NewHandler(log, repo).Register(leads)
	router.PathPrefix("/leads/").Handler(
		middleware.Session(cfg.SessionCookieName, cfg.SessionCookie)(leads),
	)

	handler := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.CORS(cors),
	)(router)

	return &Server{cfg: cfg, log: log, handler: handler}
}

// Handler returns the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("fakeserver: listen %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("lead api listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("fakeserver: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("lead api shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/daumdict/internal/config"
	"github.com/heartmarshall/daumdict/internal/domain"
	"github.com/heartmarshall/daumdict/internal/transport/middleware"
	"github.com/heartmarshall/daumdict/internal/transport/rest"
)

type wordLookup interface {
	Lookup(ctx context.Context, word string) domain.LookupResult
}

// Server is the HTTP API with its middleware stack.
type Server struct {
	http            *http.Server
	limiter         *middleware.RateLimiter
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// NewServer wires handlers and middleware:
// RequestID -> Logger -> Recovery -> CORS -> mux, with the rate limit on
// the translate route only.
func NewServer(cfg *config.Config, lookup wordLookup, logger *slog.Logger) *Server {
	limiter := middleware.NewRateLimiter(time.Minute)

	mux := rest.Routes(
		rest.NewHealthHandler(BuildVersion()),
		rest.NewTranslateHandler(lookup, logger),
		limiter.Limit(cfg.RateLimit.PerMinute),
	)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return &Server{
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		limiter:         limiter,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		log:             logger,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.log.Info("http server stopped")
	return err
}

// Close releases background resources.
func (s *Server) Close() {
	s.limiter.Stop()
}

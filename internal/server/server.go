package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/dictionary"
	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Port           int
	DictionaryPath string // optional custom dictionary; empty uses built-in
}

// Server wraps the HTTP API around the extraction and scoring engine. The
// engine itself is pure; the server owns transport concerns only.
type Server struct {
	httpServer  *http.Server
	log         *zap.Logger
	dict        *dictionary.Dictionary
	scorer      *scoring.Scorer
	rateLimiter *ratelimit.Limiter
}

// New creates a new server instance.
func New(cfg Config, log *zap.Logger) (*Server, error) {
	dict := dictionary.Default()
	if cfg.DictionaryPath != "" {
		loaded, err := dictionary.Load(cfg.DictionaryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary: %w", err)
		}
		dict = loaded
	}

	scorer, err := scoring.NewScorer(dict, scoring.DefaultWeights())
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}

	s := &Server{
		log:         log,
		dict:        dict,
		scorer:      scorer,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /extract", s.limited(s.handleExtract))
	mux.HandleFunc("POST /score", s.limited(s.handleScore))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.logged(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening",
			zap.String("addr", s.httpServer.Addr),
			zap.String("dictionary_version", s.dict.Version))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// logged wraps the mux with request logging.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("client", ratelimit.ClientIP(r)),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// limited wraps a handler with the per-client rate limiter.
func (s *Server) limited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(r) {
			writeError(w, &ErrRateLimited{})
			return
		}
		next(w, r)
	}
}

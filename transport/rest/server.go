package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiTimeout      = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewRouter serves the API, mounts the websocket endpoint and falls back to static files.
func NewRouter(logger *slog.Logger, session session, ws http.Handler, staticDir string) http.Handler {
	h := &handlers{
		logger:  logger.With("component", "rest"),
		session: session,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(apiTimeout))

		r.Get("/state", h.StateHandler)
		r.Get("/results", h.ResultsHandler)
	})

	r.Handle("/ws", ws)
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	return r
}

// Start serves handler on port until ctx is canceled. onShutdown hooks run when shutdown begins.
func Start(ctx context.Context, port string, handler http.Handler, onShutdown ...func()) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	for _, hook := range onShutdown {
		srv.RegisterOnShutdown(hook)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamevault/internal/httpapi"
	"github.com/vovakirdan/gamevault/internal/storage"
)

var (
	flagHTTPAddr string
	flagOrigins  string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP API",
	Long: `Serve the catalog, play counts and analytics as JSON under /api/v1,
and live Snake and Breakout sessions over websockets at
/api/v1/games/{slug}/session.

Examples:
  gamevault web
  gamevault web --http :8080 --origins https://games.example.com`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":5000", "HTTP listen address")
	webCmd.Flags().StringVar(&flagOrigins, "origins", "*", "Comma-separated allowed CORS origins")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger := newLogger("gamevault-http")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cat, err := loadCatalog(store)
	if err != nil {
		return err
	}

	api, err := httpapi.New(httpapi.Options{
		Catalog: cat,
		Store:   store,
		Logger:  logger,
		FPS:     flagFPS,
		Seed:    flagSeed,
		Origins: splitOrigins(flagOrigins),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           api,
		ReadHeaderTimeout: 10 * time.Second,
		// Live sessions are hijacked and outlive Shutdown; this stops them.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", flagHTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

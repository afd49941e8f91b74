package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/handlers"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the portfolio page via HTTP.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serveWebsite(ctx, a)
		},
	}
}

// serveWebsite runs the web server until ctx is cancelled
func serveWebsite(ctx context.Context, a *app) error {
	service, err := a.service(ctx)
	if err != nil {
		return err
	}

	renderer, err := handlers.NewPugRenderer(a.cfg.ViewsDir, handlers.IndexView)
	if err != nil {
		return err
	}

	h := handlers.New(service, renderer, a.cfg.Brand, a.logger)
	server := &http.Server{
		Addr:              a.cfg.ServerAddress(),
		Handler:           h.Routes(a.cfg.PublicDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.cfg.PrintServerStartMessage()
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	return nil
}

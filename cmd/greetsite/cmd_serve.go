package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/greetsite"
	"github.com/3-lines-studio/greetsite/internal/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the built site and the greeting API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Server.Listen)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Server.Listen, err)
			}
			fmt.Fprintf(stdout, "Serving %s on http://%s\n", cfg.Server.SiteDir, ln.Addr())

			return serve(ctx, ln, cfg, stderr)
		},
	}
}

func newHandler(cfg config.AppConfig, stderr io.Writer) http.Handler {
	logger := componentLogger(cfg, stderr, "server")
	app := greetsite.New(os.DirFS(cfg.Server.SiteDir),
		greetsite.WithGreetingName(cfg.Server.GreetingName),
		greetsite.WithRateLimit(cfg.Server.RateLimitRPS),
		greetsite.WithLogger(logger),
	)
	return app.Handler()
}

// serve runs until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, ln net.Listener, cfg config.AppConfig, stderr io.Writer) error {
	srv := &http.Server{
		Handler:           newHandler(cfg, stderr),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

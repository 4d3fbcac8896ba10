package commands

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rawal21/stayfinder/internal/handler"
	"github.com/rawal21/stayfinder/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ServeCmd runs the HTTP search API.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the hotel search HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			h := handler.New(a.searcher, a.logger)
			mux := http.NewServeMux()
			mux.HandleFunc("GET /search", h.SearchHandler)
			mux.HandleFunc("GET /healthz", h.HealthHandler)

			srv := &http.Server{
				Addr:         a.cfg.ListenAddr,
				Handler:      mux,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			metricsSrv := metrics.Start(a.cfg.MetricsPort)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				a.logger.Info("starting server",
					"addr", srv.Addr, "metrics_port", a.cfg.MetricsPort, "cache_backend", a.cfg.CacheBackend)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})

			g.Go(func() error {
				<-ctx.Done()
				a.logger.Info("shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := metricsSrv.Stop(shutdownCtx); err != nil {
					a.logger.Error("metrics server shutdown error", "error", err)
				}
				return srv.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				a.logger.Error("server error", "error", err)
				return err
			}

			a.logger.Info("server stopped")
			return nil
		},
	}
}

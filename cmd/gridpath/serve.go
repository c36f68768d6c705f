package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/httpapi"
	"github.com/katalvlaran/gridpath/textmap"
)

func newServeCmd() *cobra.Command {
	var (
		addr          string
		maxExpansions int
		maxBody       int64
		maxCells      int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve path queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = ":" + envOr("PORT", "8080")
			}
			srv := &http.Server{
				Addr: addr,
				Handler: httpapi.New(
					httpapi.WithLogger(log.StandardLogger()),
					httpapi.WithMaxExpansions(maxExpansions),
					httpapi.WithMaxBodyBytes(maxBody),
					httpapi.WithMaxCells(maxCells),
				),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.WithField("addr", addr).Info("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT or :8080)")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 1_000_000, "per-request expansion budget (0 = unlimited)")
	cmd.Flags().Int64Var(&maxBody, "max-body-bytes", httpapi.DefaultMaxBodyBytes, "largest accepted map in bytes")
	cmd.Flags().IntVar(&maxCells, "max-cells", textmap.DefaultMaxCells, "largest accepted map in cells, after padding")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

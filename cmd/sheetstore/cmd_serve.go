package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jasonnnn886/sheetstore/internal/web"
)

// sheetstore serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, svc, err := boot()
		if err != nil {
			return err
		}
		defer st.Close()

		server := web.NewServer(svc, cfg)

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutdown error", "error", err)
			}
		}()

		slog.Info("server starting", "addr", cfg.Server.Addr())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

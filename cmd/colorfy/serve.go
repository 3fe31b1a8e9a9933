package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"colorfy/internal/server"
	"colorfy/internal/ui"
	"colorfy/palette"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ui.IsTTY() {
			ui.LogGroup("palette api")
			ui.LogGroupItem("listen", cfg.Listen)
			ui.LogGroupItem("metrics", cfg.MetricsListen)
			ui.LogGroupItem("themes", strconv.Itoa(len(palette.Themes)))
			if cfg.APITokenHash != "" {
				ui.LogGroupItem("auth", "bearer token")
			} else {
				ui.LogGroupItem("auth", "open")
			}
			ui.LogGroupEnd()
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		metrics := server.NewMetricsServer(cfg.MetricsListen)
		metrics.Start()
		ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

		go func() {
			<-ctx.Done()
			ui.LogStatus("info", "Shutting down")
			metrics.Shutdown(context.Background())
		}()

		srv := server.NewServer(cfg)
		if err := srv.Start(ctx); err != nil {
			ui.LogStatus("error", "Server failed: "+err.Error())
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

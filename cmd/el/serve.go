package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/el-go/el/pkg/middleware"
	"github.com/el-go/el/pkg/preview"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the showcase site with live reload",
		Long: `Serve the showcase site locally. Pages get a live-reload script
injected, request metrics are exposed on /metrics, and every request
is traced when a tracer provider is configured.

Examples:
  el serve
  el serve --addr=:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := preview.NewServer(showcaseSite())
			srv.Handle("/metrics", promhttp.Handler())

			fmt.Printf("Serving showcase on http://localhost%s\n", addr)

			return srv.ListenAndServe(ctx, addr,
				middleware.Prometheus(),
				middleware.OpenTelemetry(),
			)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "Listen address")

	return cmd
}

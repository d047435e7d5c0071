package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/logging"
	"github.com/smokyabdulrahman/hisab/internal/server"
)

var flagAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculations as a JSON API",
		Long:  "Start an HTTP server exposing schedule, detail, qibla, calendar, ijtima and tahlil\nunder /api/v1, plus /healthz and Prometheus /metrics.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default: config server_address)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	// The server logs one JSON object per line.
	level := cfg.LogLevel
	if FlagVerbose {
		level = "debug"
	}
	if level == "warn" {
		level = "info"
	}
	if err := logging.Setup(level, false, cmd.ErrOrStderr()); err != nil {
		return err
	}

	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	addr := cfg.ServerAddress
	if flagAddr != "" {
		addr = flagAddr
	}

	gin.SetMode(gin.ReleaseMode)
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(server.Options{
		Site:     site.Site,
		Tier:     cfg.Tier(),
		Registry: reg,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, addr)
}

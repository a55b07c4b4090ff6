// v1
// cmd/estimator/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/api"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/audit"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/cache"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/config"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/logging"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/observability"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/report"
)

func main() {
	root := &cobra.Command{
		Use:   "estimator",
		Short: "Building energy estimation service",
		Long: `The estimator derives annual heating/cooling energy, EUI and a performance
rating from an IDF-like building description, using a steady-state load model
instead of a full physics simulation.`,
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), estimateCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP estimation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	lg, err := logging.New()
	if err != nil {
		return err
	}
	defer lg.Close()
	log := lg.Logger

	cfg := config.FromEnv()
	log.Info("config loaded", "bind", cfg.BindAddr, "cacheTTL", cfg.CacheTTL, "auditEnabled", cfg.AuditEnabled)

	metrics := observability.NewMetrics()
	publisher, err := audit.NewPublisher(audit.Config{
		Enabled:   cfg.AuditEnabled,
		Topic:     cfg.AuditTopic,
		Brokers:   cfg.AuditBrokers,
		Acks:      cfg.AuditAcks,
		QueueSize: cfg.AuditQueueSize,
	}, log, metrics)
	if err != nil {
		return err
	}
	if err := publisher.Start(context.Background()); err != nil {
		return err
	}

	h := &api.Handlers{
		Log:          log,
		Model:        model.New(model.DefaultConstants()),
		Cache:        cache.New[report.Payload](cfg.CacheTTL, metrics),
		Audit:        publisher,
		Metrics:      metrics,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	srv := api.NewServer(cfg.BindAddr, log, h, metrics)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", "err", err)
		}
	}()
	log.Info("estimator service started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Error("shutdown error", "err", err)
	}
	if err := publisher.Stop(ctx); err != nil {
		log.Error("audit shutdown error", "err", err)
	}
	log.Info("estimator service stopped")
	return nil
}

func estimateCmd() *cobra.Command {
	var (
		heatingHours float64
		coolingHours float64
		tempDiffC    float64
		measuredKWh  float64
	)
	cmd := &cobra.Command{
		Use:   "estimate <idf-file>",
		Short: "Estimate annual energy for a local building description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return estimate(args[0], heatingHours, coolingHours, tempDiffC, measuredKWh)
		},
	}
	cmd.Flags().Float64Var(&heatingHours, "heating-hours", 0, "annual heating load hours (0 = model default)")
	cmd.Flags().Float64Var(&coolingHours, "cooling-hours", 0, "annual cooling load hours (0 = model default)")
	cmd.Flags().Float64Var(&tempDiffC, "temp-diff", 0, "indoor/outdoor temperature difference in °C (0 = model default)")
	cmd.Flags().Float64Var(&measuredKWh, "measured", 0, "measured annual consumption in kWh for calibration (0 = skip)")
	return cmd
}

func estimate(path string, heatingHours, coolingHours, tempDiffC, measuredKWh float64) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	start := time.Now()
	params, diag := idf.Extract(string(raw))

	var weather *model.Weather
	if heatingHours != 0 || coolingHours != 0 || tempDiffC != 0 {
		weather = &model.Weather{HeatingHours: heatingHours, CoolingHours: coolingHours, TempDiffC: tempDiffC}
	}

	m := model.New(model.DefaultConstants())
	res, err := m.Compute(params, weather)
	if err != nil {
		return err
	}

	payload := report.Assemble(params, res, report.RequestMeta{
		RequestID:  uuid.New().String(),
		DurationMS: time.Since(start).Milliseconds(),
		Diag:       diag,
	})
	if measuredKWh != 0 {
		c, err := report.Calibrate(res, measuredKWh)
		if err != nil {
			return err
		}
		payload.Calibration = &c
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"crowdwatch.klederson.com/internal/app"
	"crowdwatch.klederson.com/internal/config"
	"crowdwatch.klederson.com/internal/logger"
	"crowdwatch.klederson.com/internal/metrics"
	"crowdwatch.klederson.com/internal/telemetry"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	flagConfig      string
	flagEndpoint    string
	flagMode        string
	flagDemo        bool
	flagFPS         int
	flagPoll        time.Duration
	flagLogFile     string
	flagLogLevel    string
	flagRecord      string
	flagMetricsAddr string
)

func main() {
	defaults := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "crowdwatch",
		Short: "CrowdWatch - terminal crowd surveillance dashboard",
		Long: `CrowdWatch polls a crowd analysis service for head counts and risk levels,
displaying them as a dashboard over an animated particle field.

Use --demo to run without an analysis service.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	f.StringVar(&flagEndpoint, "endpoint", defaults.Endpoint, "Analysis service base URL")
	f.StringVar(&flagMode, "mode", defaults.Mode, "Feed to poll: live or video")
	f.BoolVar(&flagDemo, "demo", false, "Generate synthetic readings (no service required)")
	f.IntVar(&flagFPS, "fps", defaults.FPS, "Backdrop frame rate")
	f.DurationVar(&flagPoll, "poll", defaults.PollInterval, "Telemetry poll interval")
	f.StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file")
	f.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	f.StringVar(&flagRecord, "record", "", "Append readings to this CSV file")
	f.StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		File:    settings.LogFile,
		Level:   settings.LogLevel,
		Service: "crowdwatch",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	recorder, err := telemetry.OpenRecorder(settings.RecordPath)
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.String("version", config.AppVersion),
		zap.String("endpoint", settings.Endpoint),
		zap.String("mode", settings.Mode),
		zap.Bool("demo", settings.Demo))

	model := app.New(app.Options{
		Settings: settings,
		Recorder: recorder,
		Logger:   log,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithFPS(settings.FPS),
	)
	model.Attach(p)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if settings.MetricsAddr != "" {
		g.Go(func() error {
			if err := metrics.Serve(ctx, settings.MetricsAddr); err != nil {
				p.Quit()
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}

// loadSettings layers the YAML file and the explicitly set flags over the
// defaults.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		s.Endpoint = flagEndpoint
	}
	if flags.Changed("mode") {
		s.Mode = flagMode
	}
	if flags.Changed("demo") {
		s.Demo = flagDemo
	}
	if flags.Changed("fps") {
		s.FPS = flagFPS
	}
	if flags.Changed("poll") {
		s.PollInterval = flagPoll
	}
	if flags.Changed("log-file") {
		s.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("record") {
		s.RecordPath = flagRecord
	}
	if flags.Changed("metrics-addr") {
		s.MetricsAddr = flagMetricsAddr
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

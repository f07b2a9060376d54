package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"catfeed/internal/catapi"
	"catfeed/internal/config"
	"catfeed/internal/feed"
	"catfeed/internal/telemetry"
	"catfeed/internal/ui"
)

// defaultLogFile is used when --verbose is set without --log-file.
const defaultLogFile = "catfeed.log"

// rootOptions is shared by every subcommand.
type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	level   slog.Level
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catfeed",
		Short: "Browse random cats in your terminal",
		Long: fmt.Sprintf(`catfeed shows a grid of random cat images from TheCatAPI.

Type how many cats you want (%d-%d) and press enter. Tab switches to the
grid, where arrow keys move, y copies the image URL and r refetches.

Example usage:
  catfeed                        # Open the feed
  catfeed fetch 3                # Print three cat URLs
  CATFEED_API_KEY=live_... catfeed`, feed.MinCount, feed.DefaultMax),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is .catfeed.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging (to catfeed.log unless --log-file is set)")
	pf.String("api-key", "", "TheCatAPI key (env CATFEED_API_KEY)")
	pf.String("base-url", "", "API base URL (default "+catapi.DefaultBaseURL+")")
	pf.Duration("timeout", 0, "per-request timeout (default 10s)")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Int("columns", 0, "maximum grid columns (default 2)")

	cmd.AddCommand(newFetchCmd(opts), newVersionCmd())
	return cmd
}

// load reads configuration once flags are parsed.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := telemetry.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	o.cfg = cfg
	o.level = level
	return nil
}

// newClient builds the API client from configuration.
func newClient(cfg *config.Config, logger *slog.Logger, exporter *telemetry.OTLPExporter) (*catapi.Client, error) {
	if cfg.API.Key == "" {
		logger.Warn("no API key configured; requests are anonymous and may be limited",
			"hint", "set CATFEED_API_KEY or api.key")
	}
	return catapi.New(cfg.API.BaseURL,
		catapi.WithAPIKey(cfg.API.Key),
		catapi.WithTimeout(cfg.API.Timeout),
		catapi.WithLogger(logger),
		catapi.WithTracer(exporter.Tracer("catfeed/catapi")),
	)
}

// startTracing enables OTLP export when configured and returns a shutdown
// func that flushes with a bounded wait.
func startTracing(ctx context.Context, logger *slog.Logger) (*telemetry.OTLPExporter, func()) {
	exporter, err := telemetry.NewOTLPExporter(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		return nil, func() {}
	}
	return exporter, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := exporter.Shutdown(ctx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}
}

// runFeed launches the interactive screen.
func runFeed(ctx context.Context, opts *rootOptions) error {
	cfg := opts.cfg

	logPath := cfg.Logging.File
	if logPath == "" && opts.verbose {
		logPath = defaultLogFile
	}
	logger, logFile, err := telemetry.FileLogger(logPath, opts.level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	exporter, shutdown := startTracing(ctx, logger)
	defer shutdown()

	client, err := newClient(cfg, logger, exporter)
	if err != nil {
		return err
	}

	ctrl := feed.NewController(client,
		feed.WithLimits(cfg.Limits()),
		feed.WithLogger(logger),
	)
	model := ui.NewAppModel(ctx, ctrl, cfg.Feed.Columns)
	model.Logger = logger

	logger.Info("starting feed",
		"base_url", cfg.API.BaseURL,
		"default_count", cfg.Feed.DefaultCount,
		"max_count", cfg.Feed.MaxCount)

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running feed: %w", err)
	}
	return nil
}

// stderrLogger is used by non-interactive commands.
func stderrLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return telemetry.NewLogger(cmd.ErrOrStderr(), level)
}

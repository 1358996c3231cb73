package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/srcapi/config"
	"github.com/s0up4200/srcapi/filter"
	"github.com/s0up4200/srcapi/speedrun"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *speedrun.Client
	filters   *filter.Manager
	evaluator *filter.Evaluator
	registry  *prometheus.Registry
	formatter = speedrun.NewConsoleFormatter()

	// Persistent flags
	jsonOutput bool
	baseURL    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "srcapi",
	Short: "Query the speedrun.com API from the command line",
	Long: `srcapi is a CLI for the read-only speedrun.com REST API. It looks up
users, their personal bests and games, and can narrow the results further
with filter expressions.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: logRequestSummary,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override api.base_url")

	// Add subcommands
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(pbsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	registry = prometheus.NewRegistry()
	metrics, err := speedrun.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	client, err = speedrun.NewClient(logger,
		speedrun.WithBaseURL(cfg.API.BaseURL),
		speedrun.WithTimeout(cfg.API.TimeoutDuration()),
		speedrun.WithUserAgent(fmt.Sprintf("%s/%s", cfg.API.UserAgent, appVersion)),
		speedrun.WithMetrics(metrics),
	)
	if err != nil {
		return fmt.Errorf("failed to create speedrun.com client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterPresets(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter presets: %w", err)
	}
	evaluator = filter.NewEvaluator(filter.WithWorkers(cfg.API.Concurrency))

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Strs("presets", filters.Presets()).
		Msg("Initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only make sense on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// logRequestSummary logs the API calls made by the command at debug level
func logRequestSummary(cmd *cobra.Command, args []string) error {
	if registry == nil {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to gather request metrics")
		return nil
	}

	for _, family := range families {
		if family.GetName() != "srcapi_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			event := logger.Debug()
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("count", m.GetCounter().GetValue()).Msg("API request summary")
		}
	}
	return nil
}

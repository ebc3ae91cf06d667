package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vukan322/gitstreak/internal/config"
	"github.com/vukan322/gitstreak/internal/core"
	"github.com/vukan322/gitstreak/internal/providers"
	"github.com/vukan322/gitstreak/internal/providers/events"
	"github.com/vukan322/gitstreak/internal/providers/githubgql"
	"github.com/vukan322/gitstreak/internal/render"
)

// Version is set by build flags.
var Version = "dev"

var (
	cfgFile    string
	flagUser   string
	flagOut    string
	flagSource string
	verbose    bool

	logger *logrus.Logger
	cfg    *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitstreak",
	Short: "Render a GitHub contribution streak badge as SVG",
	Long: `gitstreak fetches a user's daily contribution counts, computes their
current streak, longest streak and trailing 30-day activity, and renders
the result into a self-contained SVG badge.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("failed to load config, using defaults")
			cfg = config.Default()
		}

		if flagUser != "" {
			cfg.User = flagUser
		}
		if cmd.Flags().Changed("out") || cfg.Output == "" {
			cfg.Output = flagOut
		}
		if cmd.Flags().Changed("source") {
			cfg.Source = flagSource
		}
	},
	RunE: runBadge,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gitstreak.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&flagUser, "user", "u", "", "GitHub username to render")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "streak.svg", "output SVG file path")
	rootCmd.Flags().StringVarP(&flagSource, "source", "s", config.SourceGraphQL,
		fmt.Sprintf("activity source: %s or %s", config.SourceGraphQL, config.SourceEvents))
}

func runBadge(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	token := config.Token()
	if token == "" {
		logger.Warn("no GitHub token set (GITSTREAK_TOKEN, GH_TOKEN or GITHUB_TOKEN); the graphql source requires one")
	}

	var provider providers.Provider
	switch cfg.Source {
	case config.SourceEvents:
		provider = events.New(token)
	default:
		provider = githubgql.New(token)
	}

	logger.WithFields(logrus.Fields{
		"user":   cfg.User,
		"source": provider.Name(),
	}).Debug("fetching activity")

	stats, err := provider.Fetch(ctx, cfg.User)
	if err != nil {
		return fmt.Errorf("provider %s: %w", provider.Name(), err)
	}

	idx, err := core.BuildIndex(stats.Days)
	if err != nil {
		return fmt.Errorf("index daily counts: %w", err)
	}

	today := time.Now().UTC()
	metrics := core.Compute(idx, today)

	svg, err := render.Badge(metrics, stats.Profile)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	logger.WithFields(logrus.Fields{
		"out":            cfg.Output,
		"current_streak": metrics.CurrentStreak,
		"longest_streak": metrics.LongestStreak,
		"active_days":    metrics.WindowActiveDays,
	}).Debug("badge metrics")

	fmt.Printf("gitstreak: generated %s for %q via %s\n", cfg.Output, cfg.User, provider.Name())
	return nil
}

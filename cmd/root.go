package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/certview/internal/config"
	"github.com/kamusis/certview/internal/locale"
)

var rootCmd = &cobra.Command{
	Use:          "certview",
	Short:        "certview: browse and filter a catalog of completed course certificates",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `certview loads a certificate dataset (a local JSON file or an http(s) URL)
and lets you search, filter by domain, year and skills, and sort it.

The dataset location and defaults live in ~/.certview/certview.yaml.`,
	PersistentPreRunE: setupLogger,
}

var (
	flagData    string
	flagLang    string
	flagVerbose bool

	logger = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Dataset file or http(s) URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "UI language: en or fr (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Write diagnostics to stderr")
}

// setupLogger builds the diagnostics logger; silent unless --verbose.
func setupLogger(_ *cobra.Command, _ []string) error {
	if !flagVerbose {
		logger = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	logger = l
	return nil
}

// loadSettings returns the effective config with global flags applied.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if flagData != "" {
		p, err := config.ExpandPath(flagData)
		if err != nil {
			return nil, err
		}
		cfg.DataPath = p
	}
	if flagLang != "" {
		cfg.Lang = flagLang
	}
	logger.Debug("settings resolved",
		zap.String("data", cfg.DataPath),
		zap.String("lang", cfg.Lang),
	)
	return cfg, nil
}

// settingsLocale resolves the configured language tag.
func settingsLocale(cfg *config.Config) locale.Locale {
	return locale.Resolve(cfg.Lang)
}

// Execute is called by main.go.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

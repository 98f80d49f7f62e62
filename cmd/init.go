package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/certview/internal/config"
	"github.com/kamusis/certview/internal/locale"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.certview/",
	Long: `Create ~/.certview/ with a default certview.yaml and a .env template.

An existing certview.yaml is left untouched unless --force is given.
The global --data and --lang flags set the initial values.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var flagInitForce bool

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing certview.yaml with the defaults")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.certview directory ──────────────────────────────────────
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("certview directory ready: %s", dir))

	// ── 2. Write certview.yaml if missing ─────────────────────────────────────
	_, statErr := os.Stat(cfgPath)
	switch {
	case statErr == nil && !flagInitForce:
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	case statErr != nil && !os.IsNotExist(statErr):
		return fmt.Errorf("cannot stat config %s: %w", cfgPath, statErr)
	default:
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if flagData != "" {
			cfg.DataPath = flagData
		}
		if flagLang != "" {
			cfg.Lang = locale.Resolve(flagLang).String()
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	}

	// ── 3. dotenv template ────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Overrides file ready: %s", envPath))

	// ── 4. Dataset presence ───────────────────────────────────────────────────
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if isRemote(cfg.DataPath) {
		printInfo("", fmt.Sprintf("Dataset URL: %s", cfg.DataPath))
	} else if _, err := os.Stat(cfg.DataPath); os.IsNotExist(err) {
		printMiss("", fmt.Sprintf("No dataset at %s (run: certview build <archive-dir>)", cfg.DataPath))
	} else {
		printOK("", fmt.Sprintf("Dataset found: %s", cfg.DataPath))
	}
	return nil
}

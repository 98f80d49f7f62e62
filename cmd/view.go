package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/render"
	"github.com/kamusis/certview/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [query]",
	Short: "Print the certificates matching a search and filters",
	Long: `Print the certificates matching the given search text and filters.

Examples:
  certview view kubernetes
  certview view --domain cloud_infrastructure --year 2024
  certview view --skill go --skill rust --sort title-asc
  certview view --format html > learning.html
  certview view --watch`,
	RunE: runView,
}

var (
	flagViewDomain string
	flagViewYear   string
	flagViewSkills []string
	flagViewSort   string
	flagViewLayout string
	flagViewFormat string
	flagViewWatch  bool
)

func init() {
	viewCmd.Flags().StringVar(&flagViewDomain, "domain", filter.AllValue, "Only show this domain key")
	viewCmd.Flags().StringVar(&flagViewYear, "year", filter.AllValue, "Only show this year")
	viewCmd.Flags().StringArrayVar(&flagViewSkills, "skill", nil, "Require a skill (repeatable; all must match)")
	viewCmd.Flags().StringVar(&flagViewSort, "sort", "", "Sort order: "+sortKeyList())
	viewCmd.Flags().StringVar(&flagViewLayout, "layout", "", "Layout: list or grid")
	viewCmd.Flags().StringVar(&flagViewFormat, "format", "text", "Output format: text, html or json")
	viewCmd.Flags().BoolVar(&flagViewWatch, "watch", false, "Re-render whenever the dataset file changes")
	rootCmd.AddCommand(viewCmd)
}

func sortKeyList() string {
	keys := filter.SortKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return strings.Join(out, ", ")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	sink, err := render.New(flagViewFormat)
	if err != nil {
		return err
	}
	if text, ok := sink.(*render.Text); ok {
		fitToTerminal(text)
	}
	layout, err := render.ParseLayout(firstNonEmpty(flagViewLayout, cfg.Layout))
	if err != nil {
		return err
	}
	sortKey, err := filter.ParseSortKey(firstNonEmpty(flagViewSort, cfg.Sort))
	if err != nil {
		return err
	}
	if flagViewWatch && isRemote(cfg.DataPath) {
		return fmt.Errorf("--watch needs a local dataset file, got %s", cfg.DataPath)
	}

	ctx := commandContext(cmd)
	ctrl := viewer.New(catalog.NewStore(), viewer.Options{
		Locale: settingsLocale(cfg),
		Layout: layout,
		Sort:   sortKey,
		Logger: logger,
	})
	defer ctrl.Close()

	if err := ctrl.Load(ctx, cfg.DataPath); err != nil {
		// The failure is rendered as the localized load-failure message.
		printWarn("", err.Error())
	}
	if err := applyViewCriteria(ctrl, strings.Join(args, " ")); err != nil {
		return err
	}
	if err := ctrl.Attach(sink, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("cannot render view: %w", err)
	}
	if !flagViewWatch {
		return nil
	}
	return watchView(ctx, ctrl, cfg.DataPath)
}

func applyViewCriteria(ctrl *viewer.Controller, query string) error {
	if err := ctrl.SetSearch(query); err != nil {
		return err
	}
	if err := ctrl.SetDomain(filter.ParseMatch(flagViewDomain)); err != nil {
		return err
	}
	if err := ctrl.SetYear(filter.ParseMatch(flagViewYear)); err != nil {
		return err
	}
	for _, s := range flagViewSkills {
		if err := ctrl.SelectSkill(s); err != nil {
			return err
		}
	}
	return nil
}

// watchView re-renders on every dataset change until interrupted.
func watchView(ctx context.Context, ctrl *viewer.Controller, path string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := viewer.WatchDataset(ctx, path, logger)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	defer w.Close()
	ctrl.SubscribeReload(w.Changes())
	logger.Info("watching dataset", zap.String("path", path))

	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// fitToTerminal sizes the grid to the terminal width when stdout is a TTY.
func fitToTerminal(t *render.Text) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return
	}
	t.Columns = max(1, width/(t.CardWidth+2))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

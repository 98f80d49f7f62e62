package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/render"
	"github.com/kamusis/certview/internal/tui"
	"github.com/kamusis/certview/internal/viewer"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open a full-screen browser over the catalog.

Press / to search, d/y/s to cycle domain, year and sort, ←/→ and space to
pick skills, x to drop the last filter, c to clear, g for grid/list,
L for English/French, q to quit. A local dataset is reloaded when it changes.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var flagBrowseNoWatch bool

func init() {
	browseCmd.Flags().BoolVar(&flagBrowseNoWatch, "no-watch", false, "Do not reload when the dataset file changes")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs an interactive terminal\n  Use 'certview view' for scripted output.")
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	layout, err := render.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}
	sortKey, err := filter.ParseSortKey(cfg.Sort)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	ctrl := viewer.New(catalog.NewStore(), viewer.Options{
		Locale: settingsLocale(cfg),
		Layout: layout,
		Sort:   sortKey,
		Logger: logger,
	})
	defer ctrl.Close()
	// A failed load is shown inside the browser.
	_ = ctrl.Load(ctx, cfg.DataPath)

	var opts tui.Options
	if !flagBrowseNoWatch && !isRemote(cfg.DataPath) {
		w, err := viewer.WatchDataset(ctx, cfg.DataPath, logger)
		if err != nil {
			printWarn("", fmt.Sprintf("cannot watch %s: %v", cfg.DataPath, err))
		} else {
			defer w.Close()
			opts.Changes = w.Changes()
		}
	}

	p := tea.NewProgram(tui.New(ctx, ctrl, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

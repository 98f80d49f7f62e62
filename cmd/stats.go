package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
	"github.com/kamusis/certview/internal/locale"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals, domains and active years",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// loadCatalog loads source for the read-only reporting commands, where a load
// failure is an error rather than an empty view.
func loadCatalog(ctx context.Context, source string) (*catalog.Catalog, error) {
	store := catalog.NewStore()
	if err := store.Load(ctx, source); err != nil {
		return nil, fmt.Errorf("%w\nRun 'certview init' or pass --data.", err)
	}
	return store.Catalog(), nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(commandContext(cmd), cfg.DataPath)
	if err != nil {
		return err
	}
	labels := locale.For(settingsLocale(cfg))

	printSection(labels.Certificates)
	printInfo(labels.Certificates, fmt.Sprint(cat.Total()))
	printInfo(labels.Domains, fmt.Sprint(cat.DomainCount()))
	printInfo(labels.ActiveYears, fmt.Sprint(cat.YearCount()))
	if cat.Metadata.LastUpdated != "" {
		printInfo("", "last updated "+cat.Metadata.LastUpdated)
	}
	if n := cat.Total(); n != len(cat.Records) {
		printWarn("", fmt.Sprintf("metadata advertises %d certificates, dataset holds %d", n, len(cat.Records)))
	}

	perDomain := map[string]int{}
	perYear := map[string]int{}
	for _, r := range cat.Records {
		perDomain[r.Domain]++
		perYear[r.Year]++
	}

	printBullet(labels.Domains + ":")
	domains := cat.Domains()
	if len(domains) == 0 {
		printMiss("", "none")
	}
	for _, d := range domains {
		printOK(display.HumanizeDomain(d), fmt.Sprint(perDomain[d]))
	}

	printBullet(labels.ActiveYears + ":")
	years := cat.Years()
	if len(years) == 0 {
		printMiss("", "none")
	}
	for _, y := range years {
		printOK(y, fmt.Sprint(perYear[y]))
	}
	if len(cat.Metadata.Years) > 0 {
		printSkip("", "metadata years: "+strings.Join(cat.Metadata.Years, ", "))
	}
	return nil
}

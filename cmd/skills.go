package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills in the catalog, most common first",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

var (
	flagSkillsTop  int
	flagSkillsJSON bool
)

func init() {
	skillsCmd.Flags().IntVarP(&flagSkillsTop, "top", "n", 0, "Show only the N most common skills (0 = all)")
	skillsCmd.Flags().BoolVar(&flagSkillsJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(commandContext(cmd), cfg.DataPath)
	if err != nil {
		return err
	}

	counts := filter.SkillCounts(cat.Records)
	if flagSkillsTop > 0 && len(counts) > flagSkillsTop {
		counts = counts[:flagSkillsTop]
	}

	out := cmd.OutOrStdout()
	if flagSkillsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if counts == nil {
			counts = []filter.SkillCount{}
		}
		return enc.Encode(counts)
	}

	labels := locale.For(settingsLocale(cfg))
	if len(counts) == 0 {
		printMiss("", "no skills in "+cfg.DataPath)
		return nil
	}
	fmt.Fprintf(out, "%s (%d)\n", labels.Skills, len(counts))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Skill, c.Count)
	}
	return tw.Flush()
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/certview/internal/archive"
	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
)

var buildCmd = &cobra.Command{
	Use:   "build [archive-dir]",
	Short: "Scan a certificates archive and write the dataset",
	Long: `Walk an archive directory for CertificateOfCompletion*.pdf files and write
the dataset JSON consumed by the other commands.

The archive directory defaults to archive_dir from the config and the output
defaults to the configured data path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

type buildFlags struct {
	out      string
	timeout  time.Duration
	provider string
	dryRun   bool
}

type buildFlagsKey struct{}

func init() {
	var f buildFlags
	buildCmd.Flags().StringVarP(&f.out, "out", "o", "", "Dataset file to write (default: configured data path)")
	buildCmd.Flags().DurationVar(&f.timeout, "lock-timeout", 10*time.Second, "How long to wait for another build writing the same file")
	buildCmd.Flags().StringVar(&f.provider, "provider", "", "Provider recorded on every certificate")
	buildCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Scan and report but do not write the dataset")
	buildCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(context.WithValue(commandContext(cmd), buildFlagsKey{}, f))
		return nil
	}
	rootCmd.AddCommand(buildCmd)
}

// runBuild implements the `certview build` command.
func runBuild(cmd *cobra.Command, args []string) error {
	f, ok := commandContext(cmd).Value(buildFlagsKey{}).(buildFlags)
	if !ok {
		return fmt.Errorf("internal error: build flags missing")
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	root := cfg.ArchiveDir
	if len(args) == 1 {
		root = args[0]
	}
	out := cfg.DataPath
	if f.out != "" {
		out = f.out
	}
	if isRemote(out) {
		return fmt.Errorf("cannot write dataset to %s: output must be a local file (use --out)", out)
	}

	recs, err := archive.Scan(root, archive.Options{
		Rules:        cfg.DomainRules,
		TechKeywords: cfg.TechKeywords,
		Provider:     f.provider,
	})
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printWarn("", fmt.Sprintf("no certificates found under %s", root))
	}
	doc := archive.BuildDocument(recs, time.Now())
	logger.Debug("archive scanned",
		zap.String("root", root),
		zap.Int("records", len(recs)),
		zap.Int("domains", *doc.Metadata.Domains),
	)

	printSection("Build")
	perDomain := map[string]int{}
	for _, r := range recs {
		perDomain[r.Domain]++
	}
	for _, d := range catalog.FromDocument(doc).Domains() {
		printInfo(display.HumanizeDomain(d), fmt.Sprintf("%d certificate(s)", perDomain[d]))
	}

	if f.dryRun {
		printSkip("", fmt.Sprintf("dry run: %d certificate(s), %s not written", len(recs), out))
		return nil
	}

	unlock, err := acquireDatasetLock(out, f.timeout)
	if err != nil {
		return err
	}
	defer unlock()

	if err := catalog.WriteFile(out, doc); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Wrote %d certificate(s) to %s", len(recs), out))
	return nil
}

// acquireDatasetLock takes the exclusive lock guarding writes to path.
func acquireDatasetLock(path string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}, fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	lockPath := path + ".lock"
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire dataset lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another build is writing %s (lock: %s)", path, lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

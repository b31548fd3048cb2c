package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gesfix/internal/config"
	"gesfix/internal/rewrite"
)

var (
	// Global flags
	verbose      bool
	dryRun       bool
	configPath   string
	extension    string
	backupSuffix string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gesfix <xges_path> <old_path> <new_path>",
	Short: "Fix asset paths in GES project files after media was moved",
	Long: `gesfix searches <xges_path> recursively for GES project files (.xges)
and updates the asset paths inside them by changing <old_path> into
<new_path>.

Only the portion of the paths that differs needs to be specified: any prefix
and suffix the two paths have in common is stripped before matching, so full
paths and bare directory fragments both work. A backup copy of each modified
file is created next to it (".original" suffix) unless one already exists,
which makes repeated runs safe.`,
	Example: `  gesfix ~/Projects /home/alice/Videos /home/bob/Movies
  gesfix --dry-run ~/Projects /media/usb0 /mnt/archive`,
	Args: cobra.ExactArgs(3),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          runFix,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report matches; do not modify files")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a gesfix YAML config file")
	rootCmd.Flags().StringVar(&extension, "ext", "", "Project-file extension (default: .xges)")
	rootCmd.Flags().StringVar(&backupSuffix, "backup-suffix", "", "Suffix for backup copies (default: .original)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFix executes the one-shot batch: locate, reduce, rewrite, back up,
// write, summarize. Per-file failures are reported in the summary and leave
// the exit status at zero; only an unusable search root is fatal.
func runFix(cmd *cobra.Command, args []string) error {
	root, oldPath, newPath := args[0], args[1], args[2]

	cfg := config.DefaultConfig()
	if configPath != "" {
		// Load falls back to defaults for a missing file; an explicitly
		// requested config that does not exist is a typo, not a default.
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if extension != "" {
		cfg.Extension = extension
	}
	if backupSuffix != "" {
		cfg.BackupSuffix = backupSuffix
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))

	runner := &rewrite.Runner{
		Log:          log,
		Extension:    cfg.Extension,
		BackupSuffix: cfg.BackupSuffix,
		SkipDirs:     cfg.SkipDirs,
		DryRun:       dryRun,
	}

	sum, err := runner.Run(root, oldPath, newPath)
	if err != nil {
		return err
	}

	fmt.Printf("Scanned:  %d project files\n", sum.Scanned)
	fmt.Printf("Matched:  %d\n", sum.Matched)
	fmt.Printf("Modified: %d\n", sum.Modified)
	fmt.Printf("Backups:  %d created\n", sum.BackedUp)
	if dryRun {
		fmt.Printf("dry-run: OK (no files written)\n")
	}
	if len(sum.Failures) > 0 {
		fmt.Printf("Failed:   %d\n", len(sum.Failures))
		for _, f := range sum.Failures {
			fmt.Printf("  - %s: %v\n", f.Path, f.Err)
		}
	}
	return nil
}

// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jackchuka/devsweep/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config

	verbose     bool
	interactive bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "devsweep",
	Short: "Reclaim disk space from stale build artifacts",
	Long: `
  devsweep looks at every project directly under your workspace
  (default ~/Developer) that has not been touched for 30 days and
  reports how much space its build artifacts take:

    Rust     Cargo.toml         -> target        (cargo clean)
    nodeJS   package-lock.json  -> node_modules  (removed)

  Nothing is deleted unless you pass --dry-run=false.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := newLogger(cfg, verbose)
		if err != nil {
			return err
		}
		defer closer.Close()

		if interactive {
			return runReview(cmd.Context(), cfg, logger, cmd.OutOrStdout())
		}
		return runSweep(cmd.Context(), cfg, logger, cmd.OutOrStdout(), quiet)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/devsweep/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped and inconclusive entries")

	rootCmd.Flags().StringP("root", "r", "", "workspace to scan (default ~/Developer, env "+config.EnvRoot+")")
	rootCmd.Flags().Bool("dry-run", true, "report only; pass --dry-run=false to reclaim (env "+config.EnvDryRun+")")
	rootCmd.Flags().Duration("stale-after", config.DefaultStaleAfter, "minimum time since a project was modified (env "+config.EnvStaleAfter+")")
	rootCmd.Flags().StringSlice("ignore", nil, "patterns of workspace entries to skip (adds to config)")
	rootCmd.Flags().StringSlice("only", nil, "run only these cleaners (Rust, nodeJS)")
	rootCmd.Flags().Bool("wait", false, "wait for external clean commands and report their failures")
	rootCmd.Flags().String("log-file", "", "write logs to a rotating file instead of stderr")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "review findings and pick what to reclaim")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyFlags(cmd, cfg)

	if err := cfg.ResolveRoot(); err != nil {
		return err
	}
	return cfg.Validate()
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("stale-after") {
		cfg.StaleAfter, _ = flags.GetDuration("stale-after")
	}
	if flags.Changed("ignore") {
		extra, _ := flags.GetStringSlice("ignore")
		cfg.IgnorePatterns = append(cfg.IgnorePatterns, extra...)
	}
	if flags.Changed("only") {
		cfg.Cleaners, _ = flags.GetStringSlice("only")
	}
	if flags.Changed("wait") {
		cfg.WaitForClean, _ = flags.GetBool("wait")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

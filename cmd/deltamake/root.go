// Package main is the entry point for the deltamake CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.trai.ch/zerr"

	"github.com/deltamake/deltamake/internal/build"
	"github.com/deltamake/deltamake/internal/orchestrator"
)

// newRootCmd builds the single flat command surface described in §6: no
// subcommands, just `deltamake [flags] [build ...]`. Unknown flags and a
// value-less -w both print help and exit 0, matching the original's
// ParseArgs fallthrough — modeled here via a flag error func rather than
// cobra's default error-and-exit-1 path.
func newRootCmd(run func(ctx context.Context, cfg orchestrator.Config) (bool, error)) *cobra.Command {
	var cfg orchestrator.Config
	var help bool

	cmd := &cobra.Command{
		Use:           "deltamake [build ...]",
		Short:         "Incremental C/C++ build orchestrator",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintf(c.OutOrStdout(), "deltamake %s\n", build.Version)

			if help {
				// The original's "help" flag prints usage but does not exit,
				// so a build named alongside -h still runs.
				_ = c.Usage()
			}

			if c.Flags().Changed("workers") && cfg.Workers < 1 {
				// An explicit "-w 0" clamps to 1 worker immediately, distinct
				// from never passing -w at all, which leaves Workers at its
				// zero value so the orchestrator falls back to the CPU count.
				cfg.Workers = 1
			}

			cfg.Builds = args
			failed, err := run(c.Context(), cfg)
			if err != nil {
				return err
			}
			if failed {
				return errBuildFailed
			}
			return nil
		},
	}
	cmd.SetHelpFunc(func(*cobra.Command, []string) {}) // suppress cobra's own help flag so ours can fall through instead of exiting
	cmd.Flags().BoolVarP(&help, "help", "h", false, "show usage")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable detail-level logging")
	cmd.Flags().BoolVarP(&cfg.NoBuild, "no-build", "n", false, "load and scan, then exit without building")
	cmd.Flags().BoolVarP(&cfg.Force, "force", "f", false, "ignore the diff sidecar and rebuild everything")
	cmd.Flags().BoolVarP(&cfg.DontSaveDiff, "dont-save-diff", "d", false, "don't persist the diff sidecar after building")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", 0, "cap the worker pool size (0 means 1; omitted selects the CPU count)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, _ error) error {
		_ = c.Usage()
		os.Exit(0)
		return nil
	})

	return cmd
}

var errBuildFailed = zerr.New("build failed")

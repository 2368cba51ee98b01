package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/chainkit-mutate/internal/logger"
	"github.com/oshokin/chainkit-mutate/internal/service/mutator"
	"github.com/oshokin/chainkit-mutate/internal/version"
)

var errUnknownLogLevel = errors.New("unknown log level")

// newRootCmd builds the command that rewrites the generated ChainKit bindings.
func newRootCmd() *cobra.Command {
	var (
		// configPath to the optional configuration YAML file.
		configPath string
		// strict fails on a marker region that is never closed.
		strict bool
		// dryRun prints the result instead of rewriting the file.
		dryRun bool
		// logLevel is the minimum level of log entries.
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "chainkit-mutate",
		Short: "Post-process the generated ChainKit Swift bindings.",
		Long: `Rewrites platforms/ios/ChainKit/Sources/ChainKit/ChainKit.swift in place:
the "#if canImport(...)" and matching "#endif" lines are removed, and a
swiftlint suppression plus the current git revision are prepended.

Run it from the repository root after regenerating the bindings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownLogLevel, logLevel)
			}

			logger.SetLevel(level)

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &mutator.Options{
				ConfigPath: configPath,
				Strict:     strict,
				DryRun:     dryRun,
				Output:     cmd.OutOrStdout(),
			}

			return mutator.Run(ctx, options)
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: chainkit-mutate.yaml if present)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail if a marker region is never closed")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rewritten file instead of saving it")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	version.AttachCobraVersionCommand(rootCmd)

	return rootCmd
}

// Execute runs the chainkit-mutate CLI and exits with non-zero status on error.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.ErrorKV(context.Background(), "chainkit-mutate failed", "error", err)
		os.Exit(1)
	}
}

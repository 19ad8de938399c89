package main

import (
	"github.com/spf13/cobra"
)

const version = "0.2.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	cctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "picsync [flags] <directory>...",
		Short: "Match file timestamps to embedded capture dates",
		Long: `picsync synchronizes filesystem timestamps of image and video files with
the capture date embedded in their metadata, as reported by exiftool.

With --sort, files are moved into <output>/<year>/<month>/ instead of
being stamped in place. Name collisions at the destination are errors
unless --md5 enables content comparison; identical sources can then be
removed with --delete-matching.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSync(cmd, cctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format override (console, json)")

	rootCmd.Flags().BoolVarP(&flags.sort, "sort", "s", false, "move files into year/month subdirectories")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "destination root (for use with --sort)")
	rootCmd.Flags().BoolVar(&flags.md5, "md5", false, "compare file contents on destination name collisions")
	rootCmd.Flags().BoolVar(&flags.deleteMatching, "delete-matching", false, "delete source when content matches destination (requires --md5)")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "log planned actions without touching files")
	rootCmd.Flags().BoolVar(&flags.nativeFallback, "native-fallback", false, "decode EXIF directly when exiftool output has no recognized date field")

	rootCmd.AddCommand(newConfigCommand(cctx))
	rootCmd.AddCommand(newStatusCommand(cctx))

	return rootCmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"picsync/internal/config"
	"picsync/internal/exiftool"
	"picsync/internal/logging"
	"picsync/internal/organize"
	"picsync/internal/report"
	"picsync/internal/resolve"
	"picsync/internal/scan"
)

type runFlags struct {
	sort           bool
	output         string
	md5            bool
	deleteMatching bool
	dryRun         bool
	nativeFallback bool
}

// effectiveSettings merges CLI flags over config defaults. Flags only
// tighten settings; they never disable something the config enables.
type effectiveSettings struct {
	sort           bool
	output         string
	md5            bool
	deleteMatching bool
	dryRun         bool
	nativeFallback bool
}

func mergeSettings(cfg *config.Config, flags *runFlags) (effectiveSettings, error) {
	s := effectiveSettings{
		sort:           flags.sort,
		output:         flags.output,
		md5:            flags.md5 || cfg.Sort.MD5,
		deleteMatching: flags.deleteMatching || cfg.Sort.DeleteMatching,
		dryRun:         flags.dryRun,
		nativeFallback: flags.nativeFallback || cfg.Dates.NativeFallback,
	}
	if s.output == "" {
		s.output = cfg.Paths.OutputDir
	}

	if s.sort && s.output == "" {
		return s, errors.New("--sort requires --output (or paths.output_dir in the config)")
	}
	if s.deleteMatching && !s.md5 {
		return s, errors.New("--delete-matching requires --md5")
	}
	return s, nil
}

func runSync(cmd *cobra.Command, cctx *commandContext, flags *runFlags, dirs []string) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	settings, err := mergeSettings(cfg, flags)
	if err != nil {
		return err
	}

	logger, err := cctx.newLogger()
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	// exiftool absence is the one fatal condition; surface it before any
	// file is touched.
	client, err := exiftool.New(cfg.Exiftool.Binary)
	if err != nil {
		return err
	}
	logger.Info("resolved exiftool", logging.String("binary", client.Binary()))

	organizer, err := organize.New(organize.Options{
		OutputDir:      settings.output,
		MD5:            settings.md5,
		DeleteMatching: settings.deleteMatching,
		DryRun:         settings.dryRun,
	}, logger)
	if err != nil {
		return err
	}

	if settings.sort && !settings.dryRun {
		release, err := organize.LockOutput(settings.output)
		if err != nil {
			return err
		}
		defer release()
	}

	runner := &syncRunner{
		client:         client,
		resolver:       resolve.New(cfg.Dates.Fields),
		organizer:      organizer,
		logger:         logger,
		sort:           settings.sort,
		nativeFallback: settings.nativeFallback,
		scanOpts:       scan.Options{Extensions: cfg.Scan.Extensions},
	}

	summary := runner.run(cmd.Context(), dirs)

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"result", "files"},
		summary.Rows(),
		[]columnAlignment{alignLeft, alignRight},
	))
	logger.Info("run complete",
		logging.Int("examined", summary.Examined),
		logging.Int("errors", summary.Errors),
		logging.Duration("elapsed", summary.Elapsed()))
	return nil
}

// syncRunner drives the per-file pipeline: extract, resolve, reconcile.
// Failures are per-file and never abort the loop.
type syncRunner struct {
	client         *exiftool.Client
	resolver       *resolve.Resolver
	organizer      *organize.Organizer
	logger         *slog.Logger
	sort           bool
	nativeFallback bool
	scanOpts       scan.Options
}

func (r *syncRunner) run(ctx context.Context, dirs []string) *report.Summary {
	summary := report.NewSummary()
	for _, dir := range dirs {
		files, err := scan.Files(dir, r.scanOpts)
		if err != nil {
			r.logger.Error("cannot list directory", logging.String("dir", dir), logging.Error(err))
			summary.Errors++
			continue
		}
		r.logger.Info("scanning directory", logging.String("dir", dir), logging.Int("files", len(files)))
		for _, file := range files {
			if ctx.Err() != nil {
				return summary
			}
			summary.Examined++
			r.processFile(ctx, file, summary)
		}
	}
	return summary
}

func (r *syncRunner) processFile(ctx context.Context, path string, summary *report.Summary) {
	logger := r.logger.With(logging.String(logging.FieldFile, path))
	logger.Debug("processing file")

	md, err := r.client.Extract(ctx, path)
	if err != nil {
		logger.Warn("no metadata, skipping", logging.Error(err))
		summary.SkippedNoMetadata++
		return
	}

	ts, field, err := r.resolver.Resolve(md)
	if err != nil {
		if r.nativeFallback {
			if native, ok := resolve.NativeCreatedAt(path, nil); ok {
				ts, field = native, "embedded exif"
				err = nil
			}
		}
		if err != nil {
			logger.Error("no recognized date field, skipping",
				logging.String("fields", fmt.Sprintf("%v", r.resolver.Fields())))
			summary.SkippedNoDate++
			return
		}
	}
	logger.Debug("resolved capture date", logging.Time("timestamp", ts), logging.String("from", field))

	if !r.sort {
		if err := r.organizer.UpdateTimestamps(path, ts); err != nil {
			logger.Error("timestamp update failed", logging.Error(err))
			summary.Errors++
			return
		}
		summary.Updated++
		return
	}

	outcome, dest, err := r.organizer.Sort(path, ts)
	if err != nil {
		logger.Error("sort failed", logging.String("dest", dest), logging.Error(err))
		summary.Errors++
		return
	}
	switch outcome {
	case organize.OutcomeMoved:
		summary.Moved++
	case organize.OutcomeDuplicateSkipped:
		summary.DuplicatesSkipped++
	case organize.OutcomeDuplicateDeleted:
		summary.DuplicatesDeleted++
	}
}

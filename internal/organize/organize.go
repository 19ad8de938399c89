package organize

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"picsync/internal/fileutil"
	"picsync/internal/logging"
)

var (
	// ErrDestinationExists is returned on a name collision when content
	// comparison is disabled. Both files are left untouched.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrContentMismatch is returned when the colliding destination holds
	// different content. Both files are left untouched.
	ErrContentMismatch = errors.New("destination exists with different content")
)

// Outcome describes what happened to a single file.
type Outcome string

const (
	OutcomeUpdated          Outcome = "updated"
	OutcomeMoved            Outcome = "moved"
	OutcomeDuplicateSkipped Outcome = "duplicate_skipped"
	OutcomeDuplicateDeleted Outcome = "duplicate_deleted"
)

// Options configures an Organizer.
type Options struct {
	// OutputDir is the destination root for sort mode.
	OutputDir string
	// MD5 enables content comparison on destination name collisions.
	MD5 bool
	// DeleteMatching removes the source when its content matches the
	// colliding destination. Requires MD5.
	DeleteMatching bool
	// DryRun logs intended actions without touching the filesystem.
	DryRun bool
}

// Organizer reconciles files with their resolved creation dates: either
// stamping timestamps in place or moving files into year/month
// subdirectories of the output root.
type Organizer struct {
	opts   Options
	logger *slog.Logger
}

// New constructs an Organizer.
func New(opts Options, logger *slog.Logger) (*Organizer, error) {
	if opts.DeleteMatching && !opts.MD5 {
		return nil, errors.New("delete-matching requires md5 comparison")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{opts: opts, logger: logger}, nil
}

// UpdateTimestamps sets the file's access and modification times to the
// resolved creation date.
func (o *Organizer) UpdateTimestamps(path string, ts time.Time) error {
	o.logger.Info("updating timestamps",
		logging.String(logging.FieldFile, path),
		logging.Time("timestamp", ts))
	if o.opts.DryRun {
		return nil
	}
	if err := os.Chtimes(path, ts, ts); err != nil {
		return fmt.Errorf("update timestamps: %w", err)
	}
	return nil
}

// Sort moves the file into <output>/<year>/<zero-padded month>/ and stamps
// the destination with the resolved date. It returns the outcome, the
// destination path considered, and an error for collision policy failures.
// A file is moved at most once per invocation.
func (o *Organizer) Sort(path string, ts time.Time) (Outcome, string, error) {
	destDir := filepath.Join(o.opts.OutputDir,
		fmt.Sprintf("%d", ts.Year()),
		fmt.Sprintf("%02d", int(ts.Month())))
	dest := filepath.Join(destDir, filepath.Base(path))

	if _, err := os.Stat(dest); err == nil {
		return o.resolveCollision(path, dest)
	} else if !os.IsNotExist(err) {
		return "", dest, fmt.Errorf("stat destination: %w", err)
	}

	o.logger.Info("moving file",
		logging.String(logging.FieldFile, path),
		logging.String("dest", dest))
	if o.opts.DryRun {
		return OutcomeMoved, dest, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", dest, fmt.Errorf("create destination directory: %w", err)
	}
	if err := fileutil.MoveFile(path, dest); err != nil {
		return "", dest, fmt.Errorf("move: %w", err)
	}
	if err := os.Chtimes(dest, ts, ts); err != nil {
		return "", dest, fmt.Errorf("update timestamps after move: %w", err)
	}
	return OutcomeMoved, dest, nil
}

func (o *Organizer) resolveCollision(path, dest string) (Outcome, string, error) {
	if !o.opts.MD5 {
		return "", dest, fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	same, err := fileutil.SameContent(path, dest)
	if err != nil {
		return "", dest, fmt.Errorf("compare with destination: %w", err)
	}
	if !same {
		return "", dest, fmt.Errorf("%w: %s", ErrContentMismatch, dest)
	}

	if !o.opts.DeleteMatching {
		o.logger.Info("duplicate already sorted, leaving source in place",
			logging.String(logging.FieldFile, path),
			logging.String("dest", dest))
		return OutcomeDuplicateSkipped, dest, nil
	}

	o.logger.Info("deleting source, identical copy already sorted",
		logging.String(logging.FieldFile, path),
		logging.String("dest", dest))
	if o.opts.DryRun {
		return OutcomeDuplicateDeleted, dest, nil
	}
	if err := os.Remove(path); err != nil {
		return "", dest, fmt.Errorf("delete matching source: %w", err)
	}
	return OutcomeDuplicateDeleted, dest, nil
}

// LockOutput acquires an exclusive lock file under the output root so two
// concurrent runs cannot race collision checks against the same tree. The
// caller must invoke the returned release function.
func LockOutput(outputDir string) (release func(), err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, ".picsync.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another picsync run is sorting into %s", outputDir)
	}
	return func() { _ = lock.Unlock() }, nil
}

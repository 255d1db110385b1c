/*
Package counter implements the counting engine: the tree walker, the per-file
line classifier, the ignore-driven filtering and the aggregation of per-file
results into per-extension and grand totals.

The counter runs either sequentially or across a worker pool. Both modes
produce bit-identical reports: workers only classify, results come back from
the pool in traversal order, and the fold itself is always sequential.

Basic usage:

	cfg := counter.Config{
		Parallel: true,
		Workers:  runtime.NumCPU(),
	}

	cnt := counter.NewCounter(cfg, afero.NewOsFs(), log)
	report, err := cnt.Count(ctx, "/path/to/project")
*/
package counter

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/marcoimbee/pyloc/pkg/ignore"
	"github.com/marcoimbee/pyloc/pkg/language"
	"github.com/marcoimbee/pyloc/pkg/logger"
	"github.com/marcoimbee/pyloc/pkg/worker"
)

// Counter defines the interface for counting operations
type Counter interface {
	// Count walks the tree rooted at root and returns the aggregated report.
	Count(ctx context.Context, root string) (*Report, error)

	// Progress returns a snapshot of the running count.
	Progress() Progress
}

// counter implements the Counter interface
type counter struct {
	config  Config
	fs      afero.Fs
	log     logger.Logger
	matcher *ignore.Matcher
	include map[string]bool
	stats   *CounterStats

	startTime time.Time
}

// NewCounter creates a new Counter instance. The ignore matcher and the
// include-list are compiled once here and never mutated afterwards.
func NewCounter(config Config, fs afero.Fs, log logger.Logger) Counter {
	include := make(map[string]bool, len(config.Extensions))
	for _, ext := range config.Extensions {
		include[language.Normalize(ext)] = true
	}

	return &counter{
		config:  config,
		fs:      fs,
		log:     log,
		matcher: ignore.NewMatcher(config.IgnoreLines),
		include: include,
		stats:   NewCounterStats(),
	}
}

// Count performs the counting run.
func (c *counter) Count(ctx context.Context, root string) (*Report, error) {
	info, err := c.fs.Stat(root)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  root,
		}).Error("Failed to stat root directory")
		return nil, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: root}
	}

	c.startTime = time.Now()

	c.log.WithFields(logger.Fields{
		"path":       root,
		"parallel":   c.config.Parallel,
		"workers":    c.config.Workers,
		"extensions": c.config.Extensions,
		"rules":      c.matcher.Len(),
	}).Info("Starting count operation")

	report := newReport(c.config.Insights)

	if c.config.Parallel {
		err = c.countParallel(ctx, root, report)
	} else {
		err = c.countSequential(ctx, root, report)
	}
	if err != nil {
		return nil, err
	}

	report.Duration = time.Since(c.startTime)

	c.log.WithFields(logger.Fields{
		"files":    report.Files,
		"code":     report.Code,
		"comment":  report.Comment,
		"blank":    report.Blank,
		"skipped":  report.SkippedFiles,
		"duration": report.Duration,
	}).Info("Count operation completed")

	return report, nil
}

// Progress returns a snapshot of the running count.
func (c *counter) Progress() Progress {
	return Progress{
		FilesFound:   c.stats.GetFilesFound(),
		FilesCounted: c.stats.GetFilesCounted(),
		FilesSkipped: c.stats.GetFilesSkipped(),
		LinesCounted: c.stats.GetLinesCounted(),
		StartTime:    c.startTime,
	}
}

// countSequential classifies and folds one file at a time in walk order.
func (c *counter) countSequential(ctx context.Context, root string, report *Report) error {
	return c.walk(root, func(fe fileEntry) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		outcome := c.processFile(fe)
		c.foldOutcome(report, outcome)
		return nil
	})
}

// countParallel fans file classification out over the worker pool. The walk
// stays sequential and the pool returns results sorted by submission order,
// so folding them is indistinguishable from the sequential mode.
func (c *counter) countParallel(ctx context.Context, root string, report *Report) error {
	pool, err := worker.NewPool(worker.Config{
		Workers:   c.config.Workers,
		RateLimit: c.config.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}

	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	defer func() {
		if err := pool.Stop(); err != nil {
			c.log.WithFields(logger.Fields{
				"error": err,
			}).Warn("Error stopping worker pool")
		}
	}()

	err = c.walk(root, func(fe fileEntry) error {
		return pool.Submit(worker.Task{
			ID: fe.seq,
			Execute: func(ctx context.Context) (worker.Result, error) {
				return worker.Result{
					ID:   fe.seq,
					Data: c.processFile(fe),
				}, nil
			},
		})
	})
	if err != nil {
		return fmt.Errorf("walk failed: %w", err)
	}

	results, err := pool.Wait()
	if err != nil {
		return fmt.Errorf("error waiting for workers: %w", err)
	}

	for _, result := range results {
		outcome, ok := result.Data.(fileOutcome)
		if !ok {
			continue
		}
		c.foldOutcome(report, outcome)
	}

	return nil
}

// processFile reads and classifies one file. Read failures and binary
// content are reported as skips, never as run failures.
func (c *counter) processFile(fe fileEntry) fileOutcome {
	content, err := afero.ReadFile(c.fs, fe.path)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  fe.path,
		}).Warn("Failed to read file")
		c.stats.AddFilesSkipped(1)
		return fileOutcome{path: fe.rel, skipErr: err}
	}

	if IsBinary(content) {
		c.log.WithFields(logger.Fields{
			"path": fe.path,
		}).Debug("Skipping binary file")
		c.stats.AddFilesSkipped(1)
		return fileOutcome{path: fe.rel, skipErr: &BinaryFileError{Path: fe.rel}}
	}

	counts := Classify(content, fe.rule)
	c.stats.AddFilesCounted(1)
	c.stats.AddLinesCounted(int64(counts.Total))

	c.log.WithFields(logger.Fields{
		"path":    fe.rel,
		"code":    counts.Code,
		"comment": counts.Comment,
		"blank":   counts.Blank,
	}).Trace("File classified")

	return fileOutcome{
		result: FileResult{
			Path:   fe.rel,
			Ext:    fe.ext,
			Seq:    fe.seq,
			Counts: counts,
		},
	}
}

func (c *counter) foldOutcome(report *Report, outcome fileOutcome) {
	if outcome.skipErr != nil {
		report.skip(outcome.path, outcome.skipErr)
		return
	}

	report.fold(outcome.result)
}

/*
Package app provides the main application container and orchestration for the
pyloc application. It manages component lifecycle, coordinates counting runs,
and handles graceful shutdown.

The application container initializes and manages all core components:
- Logger for structured logging
- Counter for tree walking and line classification
- Progress visualization
- Output formatting

Usage:

	app := app.New(cfg)
	if err := app.Run(path); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/marcoimbee/pyloc/internal/config"
	"github.com/marcoimbee/pyloc/pkg/counter"
	"github.com/marcoimbee/pyloc/pkg/logger"
	"github.com/marcoimbee/pyloc/pkg/output"
	"github.com/marcoimbee/pyloc/pkg/progress"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs

	formatter output.Formatter
	progress  progress.Progress

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.RWMutex
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}

	app.initLogger()
	app.initComponents()
	app.setupSignalHandling()

	app.log.WithFields(logger.Fields{
		"workers": cfg.Workers,
		"verbose": cfg.Verbose,
	}).Info("Application initialized")

	return app
}

// Run executes a counting run over the tree rooted at path
func (a *App) Run(path string) error {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
		}
	}()

	if err := a.validatePath(path); err != nil {
		return err
	}

	ignoreLines, err := a.readGitignore(path)
	if err != nil {
		return err
	}

	a.log.WithFields(logger.Fields{
		"path":     path,
		"format":   a.config.Output,
		"parallel": !a.config.NoParallel,
		"insights": a.config.Insights,
	}).Info("Starting count operation")

	cnt := counter.NewCounter(counter.Config{
		Extensions:  a.config.Extensions,
		IgnoreLines: ignoreLines,
		Insights:    a.config.Insights,
		Parallel:    !a.config.NoParallel,
		Workers:     a.config.Workers,
		RateLimit:   a.config.RateLimit,
	}, a.fs, a.log)

	a.progress.Start("Counting")
	stopUpdates := a.watchProgress(cnt)

	ctx, cancel := context.WithTimeout(a.ctx, 1*time.Hour)
	defer cancel()

	report, err := cnt.Count(ctx, path)
	stopUpdates()
	if err != nil {
		a.progress.Error(fmt.Sprintf("Error: count failed: %v", err))
		return fmt.Errorf("count operation failed: %w", err)
	}

	if a.config.OutputFile == "" {
		// The report goes to stdout; leaving the progress line up would
		// interleave with it.
		a.progress.Stop()
	} else {
		a.progress.Complete("Complete")
	}

	formattedOutput, err := a.formatter.Format(report)
	if err != nil {
		return fmt.Errorf("output formatting failed: %w", err)
	}

	if err := a.writeOutput(formattedOutput, a.config.OutputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"files":    report.Files,
		"code":     report.Code,
		"skipped":  report.SkippedFiles,
		"duration": report.Duration,
		"outputTo": a.config.OutputFile,
	}).Info("Count operation completed")

	return nil
}

// Shutdown performs a graceful shutdown of the application
func (a *App) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	default:
	}

	a.log.Debug("Initiating graceful shutdown")

	a.cancel()
	a.progress.Stop()

	close(a.done)
	a.log.Debug("Shutdown complete")
	return nil
}

// initLogger initializes the application logger
func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Output:    os.Stderr,
	})

	a.log.WithFields(logger.Fields{
		"verbosity": a.config.Verbose,
	}).Debug("Logger initialized")
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.log.Debug("Initializing application components")

	a.formatter = output.NewFormatter(output.Config{
		Format:     output.Format(a.config.Output),
		WithColors: !a.config.NoColor,
	}, a.log)

	progressStyle := progress.StyleSpinner
	if a.config.NoProgress {
		progressStyle = progress.StyleSimple
	}

	a.progress = progress.New(progress.Config{
		Style:             progressStyle,
		ShowStats:         true,
		NoColor:           a.config.NoColor,
		RefreshRate:       100 * time.Millisecond,
		HideAfterComplete: false,
	}, a.log)

	a.log.Debug("Components initialized successfully")
}

// watchProgress feeds counter statistics into the progress display until the
// returned stop function is called. With progress disabled it is a no-op.
func (a *App) watchProgress(cnt counter.Counter) (stop func()) {
	if a.config.NoProgress {
		return func() {}
	}

	stopChan := make(chan struct{})
	doneChan := make(chan struct{})

	go func() {
		defer close(doneChan)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-stopChan:
				return
			case <-ticker.C:
				p := cnt.Progress()
				a.progress.Update(progress.Status{
					FilesFound:   p.FilesFound,
					FilesCounted: p.FilesCounted,
					LinesCounted: p.LinesCounted,
					StartTime:    p.StartTime,
				})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopChan)
			<-doneChan
		})
	}
}

// readGitignore loads the ignore lines from the .gitignore at the scan root.
// Returns nil lines when gitignore filtering is disabled.
func (a *App) readGitignore(path string) ([]string, error) {
	if !a.config.UseGitignore {
		return nil, nil
	}

	gitignorePath := filepath.Join(path, ".gitignore")
	content, err := afero.ReadFile(a.fs, gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.WithFields(logger.Fields{
				"path": gitignorePath,
			}).Error("No .gitignore file found")
			return nil, fmt.Errorf("no .gitignore file found in %s", path)
		}
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	a.log.WithFields(logger.Fields{
		"path":  gitignorePath,
		"lines": len(lines),
	}).Debug("Loaded .gitignore")

	return lines, nil
}

// writeOutput writes the formatted report to the specified destination
func (a *App) writeOutput(content string, outputPath string) error {
	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Debug("Writing output")

	if outputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		if err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Error("Failed to write to stdout")
		}
		return err
	}

	err := afero.WriteFile(a.fs, outputPath, []byte(content), 0644)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  outputPath,
		}).Error("Failed to write output file")
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Info("Output written successfully")
	return nil
}

// validatePath checks if the given path is valid for counting
func (a *App) validatePath(path string) error {
	a.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Validating path")

	info, err := a.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.WithFields(logger.Fields{
				"path": path,
			}).Error("Path does not exist")
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		a.log.WithFields(logger.Fields{
			"path": path,
		}).Error("Path is not a directory")
		return fmt.Errorf("path is not a directory: %s", path)
	}

	return nil
}

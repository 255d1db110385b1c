/*
Package logger provides a structured logging solution for the pyloc application.
It wraps uber-go/zap logger to provide a simpler interface with support for
different verbosity levels and structured logging.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	// Simple logging
	log.Info("Count started")
	log.Debug("Classifying file")  // Only shown with verbosity >= 1
	log.Trace("Line classified")   // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "component": "counter",
	    "path":      "/some/path",
	    "files":     42,
	}).Info("Count completed")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Count completed",
	    "component": "counter",
	    "path": "/some/path",
	    "files": 42
	}

Thread Safety:

The logger is safe for concurrent use by multiple goroutines.
All logging methods can be called concurrently.

Performance Considerations:

The logger uses uber-go/zap internally, which provides high-performance
structured logging. Field allocation is only done when the log level
is enabled.
*/
package logger

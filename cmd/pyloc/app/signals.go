/*
Package app signal handling implementation provides graceful shutdown and
cleanup functionality for the pyloc application. It handles system signals
like SIGINT and SIGTERM, ensuring proper resource cleanup and operation
termination.
*/
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/marcoimbee/pyloc/pkg/logger"
)

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// setupSignalHandling initializes signal handling for graceful shutdown
func (a *App) setupSignalHandling() {
	state := &signalState{}

	a.log.Debug("Initializing signal handlers")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	go a.handleSignals(sigChan, state)
}

// handleSignals processes incoming system signals
func (a *App) handleSignals(sigChan chan os.Signal, state *signalState) {
	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Received system signal")

		if !state.shutdownInitiated.CompareAndSwap(false, true) {
			a.handleForcedShutdown()
			return
		}

		a.handleGracefulShutdown()
	}
}

// handleGracefulShutdown cancels the running count and lets Run return
// through its normal error path.
func (a *App) handleGracefulShutdown() {
	a.log.Info("Interrupt received, cancelling count")

	a.cancel()
	a.progress.Stop()
}

// handleForcedShutdown performs an immediate shutdown
func (a *App) handleForcedShutdown() {
	a.log.Warn("Second interrupt received, forcing shutdown")

	a.cancel()
	if a.progress != nil {
		a.progress.Stop()
	}

	os.Exit(1)
}

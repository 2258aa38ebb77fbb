// Package shutdown provides the process-wide run flag shared between the
// timer loop and the signal handler.
package shutdown

import (
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Flag is a lock-free boolean read once per loop tick. It is written by the
// asynchronous signal handler and by the quit action; both writes are
// idempotent.
type Flag struct {
	run atomic.Bool
}

// NewFlag returns a flag in the running state.
func NewFlag() *Flag {
	f := &Flag{}
	f.run.Store(true)
	return f
}

// Running reports whether the loop should keep going.
func (f *Flag) Running() bool {
	return f.run.Load()
}

// Set stores the running state.
func (f *Flag) Set(running bool) {
	f.run.Store(running)
}

// Arm installs a SIGINT/SIGTERM handler that clears the flag. The loop
// observes the cleared flag within one poll interval. The returned stop
// function removes the handler and releases its goroutine.
func Arm(logger *slog.Logger, f *Flag) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("shutdown signal received", "signal", sig.String())
			f.Set(false)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}

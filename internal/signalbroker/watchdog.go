// Copyright (c) KolibroidAmy 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/KolibroidAmy/prettycat/internal/ctxlog"
)

// forceExitCode follows the shell convention for SIGINT termination.
const forceExitCode = 130

// exitFn is stubbed in tests.
var exitFn = os.Exit

// Watch monitors the signal channel and handles signals.
// The first signal cancels the context so the renderer can restore the
// terminal on its way out; a second signal terminates the process.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	received := false

	for sig := range sigCh {
		if received {
			ctxlog.Logger(ctx).Info("watchdog", "detail", "received second signal, forcefully terminating", "signal", sig.String())
			exitFn(forceExitCode)

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, cancelling", "signal", sig.String())
		cancel()

		received = true
	}
}

// Package logging provides structured logging for pinview.
//
// This package wraps zap logger with convenience functions for the few events
// the pin widget reports: verify activations, focus transitions and rejected
// keystrokes.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: focus transitions, rejected input, the verified code itself
//   - Info: verify activations (length only)
//   - Warn: non-fatal issues (unreadable config falling back to defaults)
//   - Error: fatal issues (startup failures)
//
// # Silent By Default
//
// The pin panel owns the terminal while it runs, so logging is silent unless
// PINVIEW_LOG_LEVEL is set. PINVIEW_LOG_FILE redirects output to a file:
//
//	PINVIEW_LOG_LEVEL=debug PINVIEW_LOG_FILE=/tmp/pinview.log pinview
//
// # Configuration
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/pinview.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging

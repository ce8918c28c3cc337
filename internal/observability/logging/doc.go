// Package logging provides structured logging utilities with context propagation.
//
// Loggers are log/slog loggers writing JSON (default) or text (LOG_FORMAT=text)
// to stdout. The HTTP Logging middleware stores a request-scoped logger in the
// request context; handlers retrieve it with FromContext.
//
// Example usage:
//
//	logger := logging.FromEnv()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Info("article created")
//	}
package logging

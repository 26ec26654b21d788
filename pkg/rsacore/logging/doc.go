// Package logging provides a minimal logging facade for the RSA core.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New(nil) binds slog.Default(); New(slog.New(handler)) uses a custom
// handler; Discard() drops everything and is what rsacore.Config falls back to.
//
// Never log primes, totients or private exponents. Use Redacted to record
// that such a field existed:
//
//	logger.Info(ctx, "generated key", "bits", 1024, logging.Redacted("d"))
//	// Logs: d="[redacted]"
package logging

// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured with functional options at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// Each level has a context-aware and a context-unaware method; the latter
// use [DefaultContextProvider]:
//
//	logger.DebugContext(ctx, "table loaded", slog.Int("modules", n))
//	logger.Warn("query not found", slog.String("query", q))
//
// The package also keeps a default logger writing to standard error. It is
// reconfigured with [Config] and used by the package-level functions
// ([Debug], [InfoContext], ...).
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Records below the configured level are discarded. The default is
// [LevelWarn], which keeps a command-line tool quiet unless something is
// wrong.
//
// # Formats
//
// [FormatText] (default) and [FormatJSON]. With [WithPretty] enabled, text
// output is styled with lipgloss when the output is a terminal and plain
// otherwise.
package log

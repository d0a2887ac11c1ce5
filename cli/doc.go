// Package cli contains the command line interface for psplibdoc.
//
// # Usage
//
//	psplibdoc [flags] <query> ...
//	psplibdoc --list [--where EXPR]
//	psplibdoc dump [--format yaml|json] [module ...]
//	psplibdoc browse
//
// Each query is tried as a module file id, then a NID, then a symbol name:
//
//	psplibdoc kd/iofilemgr.prx 0x109F50BC sceIoClose
//
// The document defaults to psplibdoc_660.xml in the working directory and is
// changed with --doc.
//
// # Configuration
//
// Flag defaults may be set in config.yaml in the user configuration
// directory ($XDG_CONFIG_HOME/psplibdoc on Linux). Keys are flag names, with
// underscores allowed in place of hyphens; a mapping keyed by a command name
// holds that command's flags:
//
//	log_level: info
//	doc: /opt/psp/psplibdoc_660.xml
//	query:
//	  suggest: false
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Style text output when writing to a terminal
//
// Logs are written to standard error.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/psplibdoc/pprof)
package cli

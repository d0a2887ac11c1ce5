// Package profile provides optional runtime profiling for psplibdoc.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only when
// building with the "pprof" tag:
//
//	go build -tags pprof .
//	./psplibdoc --pprof-mode cpu --pprof-dir ./profiles sceIoOpen
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a
// no-op [Stopper].
//
// Profiles are written to the configured directory with names matching the
// mode (cpu.pprof, mem.pprof, ...) and are read with go tool pprof:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// The tagged build also imports [net/http/pprof], registering its handlers
// on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

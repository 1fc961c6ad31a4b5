// Package profile wraps [github.com/pkg/profile] for optional runtime
// profiling of elcond.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty.
//
// # Modes
//
//   - allocs:    memory allocation profiling
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      live heap profiling
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution tracing
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/elcond"}
//	defer p.Start().Stop()
//
// Profiles land in Path named after the mode (cpu.pprof, mem.pprof, ...)
// and are read with go tool pprof:
//
//	go tool pprof -http=: /tmp/elcond/cpu.pprof
package profile

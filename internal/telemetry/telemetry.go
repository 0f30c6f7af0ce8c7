// Package telemetry wraps the standard library log package with the
// leveled, prefixed messages the teacher's main.go writes inline
// ("Error: ...", "Warning: ...") everywhere it logs, collected here
// into a small reusable Logger instead of repeating the prefix at
// every call site.
package telemetry

import (
	"io"
	"log"
	"os"
)

// Logger issues leveled log lines through a standard library
// *log.Logger, the way the teacher's main.go prefixes ad-hoc
// Printf/Println calls with "Error:"/"Warning:" by hand.
type Logger struct {
	out *log.Logger
}

// New returns a Logger writing to w with the given name as part of
// its line prefix (e.g. "solarsim: ").
func New(w io.Writer, name string) *Logger {
	return &Logger{out: log.New(w, name+": ", log.LstdFlags)}
}

// Default returns a Logger writing to os.Stderr, the teacher's
// implicit destination for every bare log.Printf call.
func Default(name string) *Logger {
	return New(os.Stderr, name)
}

// Nop returns a Logger that discards everything, mirroring the
// teacher's io.Discard "nullLogger" used to silence a noisy
// dependency (main.go).
func Nop() *Logger {
	return New(io.Discard, "")
}

func (l *Logger) Infof(format string, args ...any) {
	l.out.Printf("INFO "+format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.out.Printf("WARN "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.out.Printf("ERROR "+format, args...)
}

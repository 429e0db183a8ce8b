// Package diag is the emulator's diagnostic logger: a thin wrapper over the
// standard library's log.Logger with level-prefixed helpers, matching the
// teacher's terse fmt-to-stderr diagnostics rather than pulling in a
// structured logging library the rest of the pack never needed either.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger prints level-tagged diagnostics. The zero value is not usable;
// use New.
type Logger struct {
	out *log.Logger
}

// New creates a Logger writing to w with no extra timestamp decoration
// (the caller supplies its own prefix per call).
func New(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", 0)}
}

// Default returns a Logger writing to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.out.Print("WARN " + fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.out.Print("INFO " + fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.out.Print("ERROR " + fmt.Sprintf(format, args...))
}

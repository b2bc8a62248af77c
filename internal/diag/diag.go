// Package diag carries advisory warnings out of the engine without writing
// to the console directly.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

type Sink interface {
	Warn(msg string, args ...any)
}

var Discard Sink = discard{}

type discard struct{}

func (discard) Warn(string, ...any) {}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(l *slog.Logger) *Logger {
	return &Logger{logger: l}
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Console prints "warning: msg key=value ..." lines with a colored prefix.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	prefix *color.Color
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, prefix: color.New(color.FgYellow, color.Bold)}
}

func (c *Console) Warn(msg string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "%s %s%s\n", c.prefix.Sprint("warning:"), msg, formatArgs(args))
}

func formatArgs(args []any) string {
	s := ""
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			s += fmt.Sprintf(" %v=%v", args[i], args[i+1])
		} else {
			s += fmt.Sprintf(" %v", args[i])
		}
	}
	return s
}

// Recorder keeps every warning in memory.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *Recorder) Warn(msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, msg+formatArgs(args))
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Messages)
}

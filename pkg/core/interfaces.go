package core

import (
	"fmt"
	"io"
	"os"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to an io.Writer, stdout by default
type DefaultLogger struct {
	out io.Writer
}

// NewDefaultLogger creates a logger that writes to stdout
func NewDefaultLogger() Logger {
	return &DefaultLogger{out: os.Stdout}
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) Logger {
	return &DefaultLogger{out: w}
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

// Package logging builds the zerolog loggers used by the engines, the
// registry and the command line.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Builder assembles a logger step by step.
type Builder struct {
	writer  io.Writer
	path    string
	level   zerolog.Level
	console bool
}

// Log is a built logger and the file it writes to, if any.
type Log struct {
	File   *os.File
	Logger zerolog.Logger
}

// New starts a builder writing JSON at info level to stderr.
func New() *Builder {
	return &Builder{level: zerolog.InfoLevel}
}

// FromWriter sends the log to w.
func (b *Builder) FromWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// FromPath appends the log to the file at path. It takes precedence over
// FromWriter and disables console formatting.
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

// WithLevel sets the minimum level.
func (b *Builder) WithLevel(l zerolog.Level) *Builder {
	b.level = l
	return b
}

// Console switches to human-readable output.
func (b *Builder) Console(on bool) *Builder {
	b.console = on
	return b
}

// Make opens the log destination and returns the logger.
func (b *Builder) Make() (*Log, error) {
	log := new(Log)
	var w io.Writer = os.Stderr
	if b.writer != nil {
		w = b.writer
	}

	switch {
	case b.path != "":
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		log.File = f
		w = zerolog.SyncWriter(f)
	case b.console:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}

	log.Logger = zerolog.New(w).Level(b.level).With().Timestamp().Logger()
	return log, nil
}

// Close closes the log file, if any.
func (l *Log) Close() error {
	if l.File == nil {
		return nil
	}
	return l.File.Close()
}

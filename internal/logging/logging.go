// Package logging provides source-tagged structured loggers for wearsum.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp    = "app"
	SourceLoader = "loader"
	SourceReport = "report"
	SourceOutput = "output"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger
)

// Init configures the base logger. Diagnostics go to stderr so report
// output on stdout stays clean for piping.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.WarnLevel,
			ReportTimestamp: false,
		})
	})
}

// SetVerbose lowers the log level to debug.
func SetVerbose() {
	Init()
	baseLogger.SetLevel(log.DebugLevel)
}

// SetQuiet raises the log level so only errors are shown.
func SetQuiet() {
	Init()
	baseLogger.SetLevel(log.ErrorLevel)
}

// Logger returns a logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()
	return baseLogger.With("source", source)
}

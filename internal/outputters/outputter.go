// Package outputters dispatches report rendering to the formatter matching
// the configured output format.
package outputters

import (
	"fmt"
	"os"

	"github.com/dotcommander/wearsum/internal/config"
	"github.com/dotcommander/wearsum/internal/health"
	"github.com/dotcommander/wearsum/internal/output"
	"github.com/dotcommander/wearsum/internal/report"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(cfg *config.Config) *Outputter {
	return &Outputter{config: cfg}
}

// Write renders the report in the given format. Sleep records for the report
// period are used by the HTML formatter's nightly chart; other formats
// ignore them.
func (o *Outputter) Write(rep *report.Report, sleep []health.SleepRecord, format string) error {
	switch format {
	case config.FormatConsole:
		formatter := output.NewConsoleFormatter(os.Stdout, o.config.Quiet, o.config.Verbose)
		return formatter.Format(rep)
	case config.FormatHTML:
		formatter := output.NewHTMLFormatter(o.config.Output)
		return formatter.Format(rep, sleep)
	case config.FormatJSON:
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.Format(rep)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

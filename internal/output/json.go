package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dotcommander/wearsum/internal/report"
)

// JSONFormatter marshals the report snapshot as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a JSONFormatter. When outputFile is empty the
// document is written to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{indent: indent, outputFile: outputFile}
}

// Format writes the report as a JSON document.
func (f *JSONFormatter) Format(rep *report.Report) error {
	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(rep, "", "  ")
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

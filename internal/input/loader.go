// Package input loads health data files into an evaluation model.
package input

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/wearsum/internal/health"
	"github.com/dotcommander/wearsum/internal/logging"
	"github.com/dotcommander/wearsum/internal/schema"
)

// ErrNegativeDuration is returned in strict mode when a sleep record carries
// a negative duration.
var ErrNegativeDuration = errors.New("negative sleep duration")

// DateLayout is the calendar date format used in data files.
const DateLayout = "2006-01-02"

// MetricRow is one metric entry in a data file.
type MetricRow struct {
	Name     string  `yaml:"name"`
	Value    float64 `yaml:"value"`
	Lower    float64 `yaml:"lower"`
	Upper    float64 `yaml:"upper"`
	Category string  `yaml:"category"`
}

// SleepRow is one night of sleep in a data file. Quality and Efficiency are
// optional; absent values fall back to the ledger defaults.
type SleepRow struct {
	Date          string   `yaml:"date"`
	DurationHours float64  `yaml:"duration_hours"`
	Quality       *float64 `yaml:"quality"`
	Efficiency    *float64 `yaml:"efficiency"`
}

// DataFile is the on-disk document describing one patient's health data.
type DataFile struct {
	Patient          string      `yaml:"patient"`
	TargetSleepHours float64     `yaml:"target_sleep_hours"`
	Metrics          []MetricRow `yaml:"metrics"`
	Sleep            []SleepRow  `yaml:"sleep"`
}

// Options controls loading behavior.
type Options struct {
	// Strict rejects inverted metric ranges and negative sleep durations.
	Strict bool
	// Validate runs the CUE schema over the document before loading.
	Validate bool
	// TargetSleepHours overrides the configured target when the file does
	// not carry its own.
	TargetSleepHours float64
}

// Load reads a YAML data file and builds a Model from it. The returned
// patient identifier comes from the file.
func Load(path string, opts Options) (*health.Model, string, error) {
	logger := logging.Logger(logging.SourceLoader)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading data file: %w", err)
	}

	if opts.Validate {
		if errs := schema.ValidateDataFile(raw); len(errs) > 0 {
			return nil, "", fmt.Errorf("%s: %w", path, errs[0])
		}
	}

	var file DataFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, "", fmt.Errorf("error parsing %s: %w", path, err)
	}

	target := file.TargetSleepHours
	if target <= 0 {
		target = opts.TargetSleepHours
	}

	model := health.NewModel(target)
	model.SetStrict(opts.Strict)

	for _, row := range file.Metrics {
		if _, err := model.AddMetric(row.Name, row.Value, row.Lower, row.Upper, row.Category); err != nil {
			return nil, "", fmt.Errorf("metric %q: %w", row.Name, err)
		}
	}

	for _, row := range file.Sleep {
		date, err := time.Parse(DateLayout, row.Date)
		if err != nil {
			return nil, "", fmt.Errorf("sleep record %q: %w", row.Date, err)
		}
		if opts.Strict && row.DurationHours < 0 {
			return nil, "", fmt.Errorf("sleep record %q: %w", row.Date, ErrNegativeDuration)
		}
		quality := health.DefaultSleepQuality
		if row.Quality != nil {
			quality = *row.Quality
		}
		efficiency := health.DefaultSleepEfficiency
		if row.Efficiency != nil {
			efficiency = *row.Efficiency
		}
		model.AddSleepRecord(date, row.DurationHours, quality, efficiency)
	}

	logger.Debug("loaded data file", "path", path, "metrics", len(file.Metrics), "sleep", len(file.Sleep))
	return model, file.Patient, nil
}

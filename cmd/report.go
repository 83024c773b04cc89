package cmd

import (
	"fmt"
	"time"

	"github.com/dotcommander/wearsum/internal/config"
	"github.com/dotcommander/wearsum/internal/discovery"
	"github.com/dotcommander/wearsum/internal/input"
	"github.com/dotcommander/wearsum/internal/logging"
	"github.com/dotcommander/wearsum/internal/outputters"
	"github.com/dotcommander/wearsum/internal/report"
)

// dateLayout is the format accepted by the date flags.
const dateLayout = "2006-01-02"

// runReport generates one report per discovered data file.
func runReport(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	logger := logging.Logger(logging.SourceReport)

	if len(args) == 0 {
		return fmt.Errorf("no data files given")
	}
	files, err := discovery.Resolve(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no data files matched")
	}
	if cfg.Output != "" && len(files) > 1 {
		return fmt.Errorf("--output requires a single data file, got %d", len(files))
	}

	dates, err := resolveDates()
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	for _, file := range files {
		model, patient, err := input.Load(file, input.Options{
			Strict:           cfg.Strict,
			Validate:         cfg.Validate && !noValidate,
			TargetSleepHours: cfg.TargetSleepHours,
		})
		if err != nil {
			return err
		}

		assembler := report.NewAssembler(model)
		rep, err := assembler.Generate(patient, dates.report, dates.periodStart, dates.periodEnd, dates.refStart, dates.refEnd)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("generated report", "file", file, "patient", patient, "score", rep.HealthScore)

		sleep := model.SleepRecordsIn(dates.periodStart, dates.periodEnd)
		if err := outputter.Write(rep, sleep, cfg.Format); err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}
	}
	return nil
}

type reportDates struct {
	report      time.Time
	periodStart time.Time
	periodEnd   time.Time
	refStart    *time.Time
	refEnd      *time.Time
}

// resolveDates parses the date flags, defaulting to a 7-day period ending
// today. The reference period is included only when both of its flags are
// set.
func resolveDates() (*reportDates, error) {
	today := time.Now().Truncate(24 * time.Hour)

	dates := &reportDates{
		report:      today,
		periodStart: today.AddDate(0, 0, -6),
		periodEnd:   today,
	}

	var err error
	if reportDate != "" {
		if dates.report, err = time.Parse(dateLayout, reportDate); err != nil {
			return nil, fmt.Errorf("invalid --report-date: %w", err)
		}
	}
	if periodStart != "" {
		if dates.periodStart, err = time.Parse(dateLayout, periodStart); err != nil {
			return nil, fmt.Errorf("invalid --period-start: %w", err)
		}
	}
	if periodEnd != "" {
		if dates.periodEnd, err = time.Parse(dateLayout, periodEnd); err != nil {
			return nil, fmt.Errorf("invalid --period-end: %w", err)
		}
	}

	if (referenceStart == "") != (referenceEnd == "") {
		return nil, fmt.Errorf("--reference-start and --reference-end must be given together")
	}
	if referenceStart != "" {
		start, err := time.Parse(dateLayout, referenceStart)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference-start: %w", err)
		}
		end, err := time.Parse(dateLayout, referenceEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference-end: %w", err)
		}
		dates.refStart = &start
		dates.refEnd = &end
	}
	return dates, nil
}

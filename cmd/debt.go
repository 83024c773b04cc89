package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/wearsum/internal/config"
	"github.com/dotcommander/wearsum/internal/health"
	"github.com/dotcommander/wearsum/internal/input"
)

var debtCmd = &cobra.Command{
	Use:   "debt [file]",
	Short: "Print cumulative sleep debt for the reporting period",
	Long: `Debt sums the nightly shortfall below the sleep target over the
reporting period. Nights at or above target contribute nothing; the result
is never negative.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDebt(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(debtCmd)
}

func runDebt(file string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	model, patient, err := input.Load(file, input.Options{
		Strict:           cfg.Strict,
		Validate:         cfg.Validate && !noValidate,
		TargetSleepHours: cfg.TargetSleepHours,
	})
	if err != nil {
		return err
	}

	dates, err := resolveDates()
	if err != nil {
		return err
	}

	records := model.SleepRecordsIn(dates.periodStart, dates.periodEnd)
	debt := model.SleepDebt(dates.periodStart, dates.periodEnd)
	metric := model.SleepDebtMetric(dates.periodStart, dates.periodEnd, health.DefaultMaxAcceptableDebt)

	fmt.Printf("Patient: %s\n", patient)
	fmt.Printf("Period: %s - %s\n\n", dates.periodStart.Format(dateLayout), dates.periodEnd.Format(dateLayout))

	if !quiet {
		for _, rec := range records {
			deficit := model.TargetSleepHours - rec.DurationHours
			if deficit < 0 {
				deficit = 0
			}
			fmt.Printf("  %s  slept %5.2f h  deficit %5.2f h\n",
				rec.Date.Format(dateLayout), rec.DurationHours, deficit)
		}
		if len(records) > 0 {
			fmt.Println()
		}
	}

	fmt.Printf("Total sleep debt: %.2f hours (target %.2f h/night)\n", debt, model.TargetSleepHours)
	if metric.Flagged {
		fmt.Println("Status: FLAGGED")
	} else {
		fmt.Println("Status: Normal")
	}
	return nil
}

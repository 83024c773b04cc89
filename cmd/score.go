package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/wearsum/internal/config"
	"github.com/dotcommander/wearsum/internal/health"
	"github.com/dotcommander/wearsum/internal/input"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Print the composite health score with its per-metric breakdown",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(file string) error {
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

	if quiet {
		fmt.Printf("%.1f\n", model.HealthScore())
		return nil
	}

	fmt.Printf("Patient: %s\n\n", patient)
	for _, metric := range model.Metrics() {
		mark := " "
		if metric.Flagged {
			mark = "!"
		}
		fmt.Printf("  %s %-22s %8.2f  score %.2f  weight %.1f  (%s)\n",
			mark, metric.Name, metric.Value,
			health.MetricScore(metric), health.CategoryWeight(metric.Category), metric.Category)
	}
	fmt.Printf("\nOverall Health Score: %.1f/100\n", model.HealthScore())
	return nil
}

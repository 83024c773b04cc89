package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/wearsum/internal/logging"
)

var (
	periodStart    string
	periodEnd      string
	referenceStart string
	referenceEnd   string
	reportDate     string
	outputFormat   string
	outputFile     string
	targetSleep    float64
	strict         bool
	quiet          bool
	verbose        bool
	noValidate     bool
)

var rootCmd = &cobra.Command{
	Use:   "wearsum [files...]",
	Short: "Wearable health summary report generator",
	Long: `Wearsum evaluates wearable health metrics against per-metric acceptable
ranges, accumulates sleep debt over a reporting period, derives a weighted
composite health score, and renders the result as console text, a standalone
HTML document, or JSON.

Data files are YAML documents holding a patient identifier, health metrics
with their thresholds, and nightly sleep records. Arguments may be file
paths, directories, or doublestar glob patterns (data/**/*.yaml).`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&periodStart, "period-start", "", "Start of the reporting period (YYYY-MM-DD, default 6 days ago)")
	rootCmd.PersistentFlags().StringVar(&periodEnd, "period-end", "", "End of the reporting period (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVar(&referenceStart, "reference-start", "", "Start of the reference period (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&referenceEnd, "reference-end", "", "End of the reference period (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&reportDate, "report-date", "", "Report date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().Float64VarP(&targetSleep, "target", "t", 8.0, "Target sleep hours per night")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject inverted ranges and periods instead of evaluating them literally")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noValidate, "no-validate", false, "Skip schema validation of data files")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|html|json)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (default stdout)")

	viper.BindPFlag("targetSleepHours", rootCmd.PersistentFlags().Lookup("target"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
}

func initLogging() {
	logging.Init()
	if verbose {
		logging.SetVerbose()
	}
	if quiet {
		logging.SetQuiet()
	}
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/wearsum/internal/report"
)

// ConsoleFormatter renders a report as styled text for terminal display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	out      io.Writer
}

// NewConsoleFormatter creates a ConsoleFormatter writing to out.
func NewConsoleFormatter(out io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
		out:      out,
	}
}

// Format writes the report. In quiet mode only the score line is printed.
func (f *ConsoleFormatter) Format(rep *report.Report) error {
	if f.quiet {
		fmt.Fprintf(f.out, "%.1f\n", rep.HealthScore)
		return nil
	}

	f.printHeader()
	f.printPatientInfo(rep)
	f.printFlaggedMetrics(rep)
	f.printSleepDebt(rep)
	f.printScore(rep)
	return nil
}

func (f *ConsoleFormatter) style(color string, bold bool) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if bold {
		s = s.Bold(true)
	}
	return s
}

func (f *ConsoleFormatter) printHeader() {
	rule := strings.Repeat("=", 60)
	title := f.style("12", true).Render("WEARABLE HEALTH SUMMARY REPORT")
	fmt.Fprintf(f.out, "%s\n%s\n%s\n\n", rule, title, rule)
}

func (f *ConsoleFormatter) printPatientInfo(rep *report.Report) {
	fmt.Fprintf(f.out, "Patient: %s\n", rep.PatientID)
	fmt.Fprintf(f.out, "Report date: %s\n\n", rep.ReportDate.Format(reportDateLayout))

	p := rep.Period
	fmt.Fprintf(f.out, "%d Days values: %s - %s (%d days)\n",
		p.Days, p.Start.Format(periodDateLayout), p.End.Format(periodDateLayout), p.Days)

	if ref := rep.Reference; ref != nil {
		fmt.Fprintf(f.out, "%d Days Reference Range: %s - %s (%d days)\n",
			ref.Days, ref.Start.Format(periodDateLayout), ref.End.Format(periodDateLayout), ref.Days)
	}
	fmt.Fprintf(f.out, "\n%s\n\n", strings.Repeat("-", 60))
}

func (f *ConsoleFormatter) printFlaggedMetrics(rep *report.Report) {
	fmt.Fprintln(f.out, f.style("", true).Render("FLAGGED METRICS"))
	fmt.Fprintf(f.out, "\nTotal flagged metrics: %d\n\n", rep.TotalFlagged)

	flagStyle := f.style("9", false)
	for _, group := range rep.Categories {
		fmt.Fprintf(f.out, "%s %d %s\n", CategoryIcon(group.Category), len(group.Metrics), group.Category)
		for _, m := range group.Metrics {
			line := fmt.Sprintf("  - %s: %.2f (Range: %.2f - %.2f)", m.Name, m.Value, m.Lower, m.Upper)
			fmt.Fprintln(f.out, flagStyle.Render(line))
		}
	}
	fmt.Fprintf(f.out, "\n%s\n\n", strings.Repeat("-", 60))
}

func (f *ConsoleFormatter) printSleepDebt(rep *report.Report) {
	debt := rep.SleepDebt
	fmt.Fprintln(f.out, f.style("", true).Render("SLEEP DEBT"))
	fmt.Fprintf(f.out, "\nTotal sleep debt: %.2f hours\n", debt.Value)
	fmt.Fprintf(f.out, "Target sleep: %.2f hours/night\n", debt.Target)

	status := f.style("10", false).Render("✅ Normal")
	if debt.Flagged {
		status = f.style("9", true).Render("⚠️ FLAGGED")
	}
	fmt.Fprintf(f.out, "Status: %s\n\n", status)
}

func (f *ConsoleFormatter) printScore(rep *report.Report) {
	fmt.Fprintln(f.out, strings.Repeat("-", 60))
	score := fmt.Sprintf("Overall Health Score: %.1f/100", rep.HealthScore)
	color := "10"
	if rep.HealthScore < 50 {
		color = "9"
	} else if rep.HealthScore < 75 {
		color = "3"
	}
	fmt.Fprintln(f.out, f.style(color, true).Render(score))
	fmt.Fprintln(f.out, strings.Repeat("=", 60))
}

package output

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dotcommander/wearsum/internal/health"
	"github.com/dotcommander/wearsum/internal/report"
)

// HTMLFormatter renders a report as a standalone HTML document with embedded
// charts for the health score and the nightly sleep pattern.
type HTMLFormatter struct {
	outputFile string
}

// NewHTMLFormatter creates an HTMLFormatter. When outputFile is empty the
// document is written to stdout.
func NewHTMLFormatter(outputFile string) *HTMLFormatter {
	return &HTMLFormatter{outputFile: outputFile}
}

type htmlCategory struct {
	Icon    string
	Name    string
	Count   int
	Metrics []health.Metric
}

type htmlData struct {
	Report      *report.Report
	ReportDate  string
	PeriodLine  string
	RefLine     string
	Categories  []htmlCategory
	StatusIcon  string
	StatusLabel string
	ScoreChart  template.HTML
	SleepChart  template.HTML
}

// Format writes the report as an HTML document. Sleep records for the report
// period feed the nightly sleep chart; pass nil to omit it.
func (f *HTMLFormatter) Format(rep *report.Report, sleep []health.SleepRecord) error {
	data := htmlData{
		Report:     rep,
		ReportDate: rep.ReportDate.Format(reportDateLayout),
		PeriodLine: fmt.Sprintf("%d Days values: %s - %s (%d days)",
			rep.Period.Days,
			rep.Period.Start.Format(periodDateLayout),
			rep.Period.End.Format(periodDateLayout),
			rep.Period.Days),
		StatusIcon:  "✅",
		StatusLabel: "Normal",
	}
	if rep.SleepDebt.Flagged {
		data.StatusIcon = "⚠️"
		data.StatusLabel = "FLAGGED"
	}
	if ref := rep.Reference; ref != nil {
		data.RefLine = fmt.Sprintf("%d Days Reference Range: %s - %s (%d days)",
			ref.Days,
			ref.Start.Format(periodDateLayout),
			ref.End.Format(periodDateLayout),
			ref.Days)
	}
	for _, group := range rep.Categories {
		data.Categories = append(data.Categories, htmlCategory{
			Icon:    CategoryIcon(group.Category),
			Name:    group.Category,
			Count:   len(group.Metrics),
			Metrics: group.Metrics,
		})
	}

	scoreChart, err := renderScoreGauge(rep.HealthScore)
	if err != nil {
		return fmt.Errorf("error rendering score chart: %w", err)
	}
	data.ScoreChart = scoreChart

	if len(sleep) > 0 {
		sleepChart, err := renderSleepChart(sleep, rep.SleepDebt.Target)
		if err != nil {
			return fmt.Errorf("error rendering sleep chart: %w", err)
		}
		data.SleepChart = sleepChart
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("error executing report template: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}

// renderScoreGauge renders the composite score as a gauge chart snippet.
func renderScoreGauge(score float64) (template.HTML, error) {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Overall Health Score"}),
	)
	gauge.AddSeries("Health Score", []opts.GaugeData{
		{Name: "Score", Value: float64(int(score*10)) / 10},
	})

	var buf bytes.Buffer
	if err := gauge.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// renderSleepChart renders nightly sleep durations against the target as a
// bar chart snippet.
func renderSleepChart(sleep []health.SleepRecord, target float64) (template.HTML, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Nightly Sleep vs Target"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hours"}),
	)

	var xAxis []string
	var durations []opts.BarData
	var targets []opts.BarData
	for _, rec := range sleep {
		xAxis = append(xAxis, rec.Date.Format("Jan 02"))
		durations = append(durations, opts.BarData{Value: rec.DurationHours})
		targets = append(targets, opts.BarData{Value: target})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Sleep", durations).
		AddSeries("Target", targets)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Wearable Health Summary Report</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 40px auto;
            padding: 20px;
            background-color: #ffffff;
        }
        h1 { font-size: 28px; font-weight: bold; margin-bottom: 30px; }
        .info-section { display: flex; justify-content: space-between; margin-bottom: 30px; }
        .info-column { flex: 1; }
        .info-item { margin-bottom: 10px; }
        .flagged-count { font-size: 32px; font-weight: bold; margin: 20px 0; }
        .category-group { margin: 15px 0; font-size: 16px; }
        .category-icon { font-size: 20px; margin-right: 8px; }
        .metric-row { margin-left: 28px; color: #555; font-size: 14px; }
        hr { border: none; border-top: 1px solid #ddd; margin: 20px 0; }
        .sleep-debt { margin-top: 20px; padding: 15px; background-color: #f5f5f5; border-radius: 5px; }
        .health-score { margin-top: 20px; font-size: 18px; font-weight: bold; }
        .report-id { margin-top: 30px; color: #999; font-size: 11px; }
    </style>
</head>
<body>
    <h1>Wearable Health Summary Report</h1>

    <div class="info-section">
        <div class="info-column">
            <div class="info-item">Patient: {{.Report.PatientID}}</div>
            <div class="info-item">{{.PeriodLine}}</div>
        </div>
        <div class="info-column">
            <div class="info-item">Report date: {{.ReportDate}}</div>
            {{if .RefLine}}<div class="info-item">{{.RefLine}}</div>{{end}}
        </div>
    </div>

    <div class="flagged-section">
        <h2>Flagged Metrics</h2>
        <div class="flagged-count">{{.Report.TotalFlagged}}</div>
        {{range .Categories}}
        <div class="category-group">
            <span class="category-icon">{{.Icon}}</span>
            <span>{{.Count}} {{.Name}}</span>
            {{range .Metrics}}
            <div class="metric-row">{{.Name}}: {{printf "%.2f" .Value}} (Range: {{printf "%.2f" .Lower}} - {{printf "%.2f" .Upper}})</div>
            {{end}}
        </div>
        {{end}}

        <hr>
        <div class="sleep-debt">
            <h3>Sleep Debt</h3>
            <p><strong>Total sleep debt:</strong> {{printf "%.2f" .Report.SleepDebt.Value}} hours</p>
            <p><strong>Target sleep:</strong> {{printf "%.2f" .Report.SleepDebt.Target}} hours/night</p>
            <p><strong>Status:</strong> {{.StatusIcon}} {{.StatusLabel}}</p>
        </div>

        <hr>
        <div class="health-score">
            Overall Health Score: {{printf "%.1f" .Report.HealthScore}}/100
        </div>

        {{if .ScoreChart}}<div class="chart">{{.ScoreChart}}</div>{{end}}
        {{if .SleepChart}}<div class="chart">{{.SleepChart}}</div>{{end}}

        <div class="report-id">Report {{.Report.ID}}</div>
    </div>
</body>
</html>
`))

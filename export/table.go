package export

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/trends"
)

// PrintRiskReport writes the latest score and the forecast of a subject as a table
func PrintRiskReport(w io.Writer, report *analytics.RiskReport, useColors bool) error {
	if _, err := fmt.Fprintf(w, "Patient %s (%s)\n", report.UserId, report.DiagnosisContext); err != nil {
		return err
	}
	if report.Latest == nil {
		_, err := fmt.Fprintln(w, "No risk assessments")
		return err
	}

	if _, err := fmt.Fprintf(w, "Latest score %s: %s\n", formatScore(report.Latest.Value), categoryLabel(*report.Category, useColors)); err != nil {
		return err
	}
	if report.Guidance != nil {
		if _, err := fmt.Fprintln(w, report.Guidance.Message); err != nil {
			return err
		}
	}
	if !report.HasEnoughData {
		_, err := fmt.Fprintln(w, "Not enough risk assessments for a trend")
		return err
	}
	if _, err := fmt.Fprintf(w, "Trend %s, slope %s per day\n", report.Trend.Direction, formatScore(report.Trend.Slope)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Day", "Date", "Forecast", "Category"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(report.Forecast))
	for i, p := range report.Forecast {
		data = append(data, []string{
			fmt.Sprintf("+%d", i+1),
			time.UnixMilli(p.Timestamp).UTC().Format(time.DateOnly),
			formatScore(p.Value),
			categoryLabel(trends.CategorizeRisk(p.Value), useColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func PrintGlucoseReport(w io.Writer, report *analytics.GlucoseReport, useColors bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Patient", "Context", "Readings", "Latest", "Status", "Direction"})

	latest := "-"
	if report.Latest != nil {
		latest = fmt.Sprintf("%.0f mg/dL", report.Latest.Value)
	}

	if err := table.Append([]string{
		report.UserId,
		string(report.DiagnosisContext),
		fmt.Sprint(report.Readings),
		latest,
		glucoseLabel(report.Status, useColors),
		string(report.Direction),
	}); err != nil {
		return err
	}
	return table.Render()
}

func PrintDistribution(w io.Writer, report *analytics.DistributionReport, useColors bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Risk Band", "Patients", "Percent"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(trends.RiskCategories))
	for _, category := range trends.RiskCategories {
		count := report.Counts.Count(category)
		data = append(data, []string{
			categoryLabel(category, useColors),
			fmt.Sprint(count),
			fmt.Sprintf("%.2f%%", trends.Percent(count, report.Total)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Clinic %s: %d patients\n", report.ClinicId, report.Total)
	return err
}

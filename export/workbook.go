package export

import (
	"time"

	"github.com/fatih/structs"
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/trends"
)

const (
	WorkbookSheetNameSummary = "Summary"
	WorkbookSheetNameBands   = "Risk Bands"

	workbookTagName = "xlsx"
)

type bandRow struct {
	Band     string  `xlsx:"Risk Band"`
	Patients int     `xlsx:"Patients"`
	Percent  float64 `xlsx:"Percent"`
}

// DistributionWorkbook renders a clinic risk distribution as a workbook with a summary
// sheet and one row per risk band
func DistributionWorkbook(report *analytics.DistributionReport, generated time.Time) (*xlsx.File, error) {
	workbook := xlsx.NewFile()

	summary, err := workbook.AddSheet(WorkbookSheetNameSummary)
	if err != nil {
		return nil, err
	}
	addPair(summary, "Clinic", report.ClinicId)
	addPair(summary, "Report Generated", generated.UTC().Format(time.RFC3339))
	addPair(summary, "Patients", report.Total)

	bands, err := workbook.AddSheet(WorkbookSheetNameBands)
	if err != nil {
		return nil, err
	}

	rows := make([]bandRow, 0, len(trends.RiskCategories))
	for _, category := range trends.RiskCategories {
		rows = append(rows, bandRow{
			Band:     Label(string(category)),
			Patients: report.Counts.Count(category),
			Percent:  trends.Percent(report.Counts.Count(category), report.Total),
		})
	}
	addRows(bands, rows)

	return workbook, nil
}

func addPair(sh *xlsx.Sheet, name string, value interface{}) {
	row := sh.AddRow()
	row.AddCell().SetValue(name)
	row.AddCell().SetValue(value)
}

// addRows writes a header row from the struct tags followed by one row per element
func addRows[T any](sh *xlsx.Sheet, rows []T) {
	if len(rows) == 0 {
		return
	}

	header := sh.AddRow()
	for _, field := range taggedFields(rows[0]) {
		header.AddCell().SetValue(field.Tag(workbookTagName))
	}

	for _, r := range rows {
		current := sh.AddRow()
		for _, field := range taggedFields(r) {
			current.AddCell().SetValue(field.Value())
		}
	}
}

func taggedFields(value interface{}) []*structs.Field {
	s := structs.New(value)
	s.TagName = workbookTagName
	return s.Fields()
}

package export

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"

	"github.com/tidepool-org/riskanalytics/analytics"
)

const (
	PointKindHistory  = "history"
	PointKindForecast = "forecast"
)

// TrendRow is a single observed or forecast risk score of a subject
type TrendRow struct {
	// ExportId is shared by all rows written by the same export
	ExportId string `parquet:"export_id,snappy"`

	UserId string `parquet:"user_id,snappy"`

	// Kind is either history or forecast
	Kind string `parquet:"kind,dict,snappy"`

	// Timestamp in milliseconds since epoch
	Timestamp int64 `parquet:"timestamp,snappy"`

	Value float64 `parquet:"value,snappy"`
}

// NewTrendRows flattens the history and the forecast of a report into rows stamped
// with a new export id
func NewTrendRows(report *analytics.RiskReport) []TrendRow {
	exportId := uuid.New().String()
	rows := make([]TrendRow, 0, len(report.History)+len(report.Forecast))
	for _, p := range report.History {
		rows = append(rows, TrendRow{
			ExportId:  exportId,
			UserId:    report.UserId,
			Kind:      PointKindHistory,
			Timestamp: p.Timestamp,
			Value:     p.Value,
		})
	}
	for _, p := range report.Forecast {
		rows = append(rows, TrendRow{
			ExportId:  exportId,
			UserId:    report.UserId,
			Kind:      PointKindForecast,
			Timestamp: p.Timestamp,
			Value:     p.Value,
		})
	}
	return rows
}

func WriteTrendParquet(w io.Writer, rows []TrendRow) error {
	writer := parquet.NewGenericWriter[TrendRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write trend rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

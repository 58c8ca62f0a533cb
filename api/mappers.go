package api

import (
	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/pointer"
	"github.com/tidepool-org/riskanalytics/trends"
)

func NewRiskTrendDto(report *analytics.RiskReport) RiskTrend {
	dto := RiskTrend{
		UserId:           report.UserId,
		DiagnosisContext: DiagnosisContext(report.DiagnosisContext),
		HasEnoughData:    report.HasEnoughData,
		History:          NewDataPointsDto(report.History),
		Latest:           NewDataPointDto(report.Latest),
	}

	if report.Category != nil {
		dto.Category = pointer.FromAny(RiskCategory(*report.Category))
	}
	if report.Guidance != nil {
		dto.Guidance = &Guidance{
			Key:     report.Guidance.Key,
			Message: report.Guidance.Message,
		}
	}
	if report.Comparison != nil {
		dto.Comparison = &BenchmarkComparison{
			PopulationAverage:        report.Comparison.PopulationAverage,
			DifferenceFromPopulation: report.Comparison.DifferenceFromPopulation,
			CohortAverage:            report.Comparison.CohortAverage,
			DifferenceFromCohort:     report.Comparison.DifferenceFromCohort,
			AgeBand:                  pointer.FromNonZero(report.Comparison.AgeBand),
		}
	}
	if report.Trend != nil {
		dto.Trend = &TrendLine{
			Slope:     report.Trend.Slope,
			Intercept: report.Trend.Intercept,
			Direction: Direction(report.Trend.Direction),
		}

		forecast := make([]DataPoint, 0, len(report.Forecast))
		for _, p := range report.Forecast {
			forecast = append(forecast, DataPoint{Timestamp: p.Timestamp, Value: p.Value})
		}
		dto.Forecast = &forecast
	}

	return dto
}

func NewGlucoseStatusDto(report *analytics.GlucoseReport) GlucoseStatus {
	return GlucoseStatus{
		UserId:           report.UserId,
		Status:           GlucoseStatusValue(report.Status),
		DiagnosisContext: DiagnosisContext(report.DiagnosisContext),
		Direction:        Direction(report.Direction),
		Latest:           NewDataPointDto(report.Latest),
		Readings:         report.Readings,
		TypicalGlucose:   report.TypicalGlucose,
	}
}

func NewRiskDistributionDto(report *analytics.DistributionReport) RiskDistribution {
	return RiskDistribution{
		ClinicId: report.ClinicId,
		Total:    report.Total,
		Counts: RiskBandCounts{
			Low:      report.Counts.Low,
			Moderate: report.Counts.Moderate,
			High:     report.Counts.High,
			VeryHigh: report.Counts.VeryHigh,
		},
		Percentages: RiskBandPercentages{
			Low:      report.Percentages.Low,
			Moderate: report.Percentages.Moderate,
			High:     report.Percentages.High,
			VeryHigh: report.Percentages.VeryHigh,
		},
	}
}

func NewDataPointsDto(series trends.Series) []DataPoint {
	points := make([]DataPoint, 0, len(series))
	for _, p := range series {
		points = append(points, DataPoint{Timestamp: p.Timestamp, Value: p.Value})
	}
	return points
}

func NewDataPointDto(point *trends.Point) *DataPoint {
	if point == nil {
		return nil
	}
	return &DataPoint{
		Timestamp: point.Timestamp,
		Value:     point.Value,
	}
}

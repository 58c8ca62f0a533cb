package analytics

import (
	"context"

	"github.com/tidepool-org/riskanalytics/trends"
)

//go:generate mockgen --build_flags=--mod=mod -source=./analytics.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	// RiskTrend fits the subject's risk score history and forecasts it horizon days ahead.
	// A nil horizon uses the configured default.
	RiskTrend(ctx context.Context, userId string, horizon *int) (*RiskReport, error)
	GlucoseStatus(ctx context.Context, userId string) (*GlucoseReport, error)
	ClinicDistribution(ctx context.Context, clinicId string) (*DistributionReport, error)
}

type RiskReport struct {
	UserId           string                  `json:"userId"`
	DiagnosisContext trends.DiagnosisContext `json:"diagnosisContext"`
	HasEnoughData    bool                    `json:"hasEnoughData"`
	History          trends.Series           `json:"history"`

	Latest     *trends.Point        `json:"latest,omitempty"`
	Category   *trends.RiskCategory `json:"category,omitempty"`
	Guidance   *trends.Guidance     `json:"guidance,omitempty"`
	Comparison *Comparison          `json:"comparison,omitempty"`

	// Trend and Forecast are only set when the history has at least two points
	Trend    *trends.TrendResult    `json:"trend,omitempty"`
	Forecast []trends.ForecastPoint `json:"forecast,omitempty"`
}

// Comparison puts the latest score of a subject next to the reference averages
type Comparison struct {
	PopulationAverage        float64  `json:"populationAverage"`
	DifferenceFromPopulation float64  `json:"differenceFromPopulation"`
	AgeBand                  string   `json:"ageBand,omitempty"`
	CohortAverage            *float64 `json:"cohortAverage,omitempty"`
	DifferenceFromCohort     *float64 `json:"differenceFromCohort,omitempty"`
}

type GlucoseReport struct {
	UserId string `json:"userId"`
	trends.StatusClassification
	Readings       int      `json:"readings"`
	TypicalGlucose *float64 `json:"typicalGlucose,omitempty"`
}

type DistributionReport struct {
	ClinicId    string                         `json:"clinicId"`
	Total       int                            `json:"total"`
	Counts      trends.Distribution            `json:"counts"`
	Percentages trends.DistributionPercentages `json:"percentages"`
}

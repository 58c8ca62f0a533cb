package analytics

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/benchmarks"
	"github.com/tidepool-org/riskanalytics/config"
	"github.com/tidepool-org/riskanalytics/errors"
	"github.com/tidepool-org/riskanalytics/metrics"
	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/trends"
)

type service struct {
	config     *config.Config
	repo       records.Repository
	benchmarks *benchmarks.Provider
	metrics    *metrics.Metrics
	logger     *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(config *config.Config, repo records.Repository, benchmarks *benchmarks.Provider, metrics *metrics.Metrics, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		config:     config,
		repo:       repo,
		benchmarks: benchmarks,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

func (s *service) RiskTrend(ctx context.Context, userId string, horizon *int) (*RiskReport, error) {
	defer s.metrics.Observe(metrics.OperationRiskTrend)()

	days, err := s.forecastHorizon(horizon)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repo.GetSnapshot(ctx, userId, s.config.GlucoseWindow)
	if err != nil {
		return nil, err
	}

	diagnosisContext := snapshot.Profile.DiagnosisContext()
	series := trends.NewRiskSeries(records.RiskRawRecords(snapshot.Assessments))
	report := &RiskReport{
		UserId:           userId,
		DiagnosisContext: diagnosisContext,
		HasEnoughData:    trends.HasEnoughData(series),
		History:          series,
	}

	if latest, ok := series.Latest(); ok {
		category := trends.CategorizeRisk(latest.Value)
		report.Latest = &latest
		report.Category = &category
		if guidance, ok := trends.GuidanceFor(latest.Value, diagnosisContext); ok {
			report.Guidance = &guidance
		}
		report.Comparison = s.compare(latest.Value, snapshot.Profile.AgeBand)
	}

	fit, ok := trends.FitTrend(series, trends.RiskScoreSensitivity)
	if !ok {
		s.metrics.InsufficientData(metrics.SeriesRiskScore)
		s.logger.Infow("not enough risk assessments for a trend", "userId", userId, "points", len(series))
		return report, nil
	}
	if fit.Degenerate {
		s.metrics.DegenerateTrend(metrics.SeriesRiskScore)
		s.logger.Warnw("risk assessments share the same day offset, using the mean", "userId", userId, "points", len(series))
	}

	report.Trend = &fit.Result
	report.Forecast = trends.Forecast(fit.Result, fit.Anchor, days)

	s.logger.Infow("computed risk trend",
		"userId", userId,
		"points", len(series),
		"direction", fit.Result.Direction,
		"horizon", days,
	)
	return report, nil
}

func (s *service) GlucoseStatus(ctx context.Context, userId string) (*GlucoseReport, error) {
	defer s.metrics.Observe(metrics.OperationGlucoseStatus)()

	snapshot, err := s.repo.GetSnapshot(ctx, userId, s.config.GlucoseWindow)
	if err != nil {
		return nil, err
	}

	diagnosisContext := snapshot.Profile.DiagnosisContext()
	series := trends.NewGlucoseSeries(records.GlucoseRawRecords(snapshot.Readings))
	if !trends.HasEnoughData(series) {
		s.metrics.InsufficientData(metrics.SeriesGlucose)
	}

	report := &GlucoseReport{
		UserId:               userId,
		StatusClassification: trends.ClassifyGlucoseSeries(series, diagnosisContext),
		Readings:             len(series),
	}
	if typical, ok := s.benchmarks.Table().TypicalGlucoseFor(diagnosisContext); ok {
		report.TypicalGlucose = &typical
	}

	s.logger.Infow("classified glucose",
		"userId", userId,
		"readings", len(series),
		"status", report.Status,
		"direction", report.Direction,
	)
	return report, nil
}

func (s *service) ClinicDistribution(ctx context.Context, clinicId string) (*DistributionReport, error) {
	defer s.metrics.Observe(metrics.OperationClinicDistribution)()

	latest, err := s.repo.ListLatestRiskScores(ctx, clinicId)
	if err != nil {
		return nil, err
	}

	distribution := trends.Aggregate(records.LatestRiskScores(latest))
	s.logger.Infow("computed risk distribution", "clinicId", clinicId, "subjects", distribution.Total())

	return &DistributionReport{
		ClinicId:    clinicId,
		Total:       distribution.Total(),
		Counts:      distribution,
		Percentages: distribution.Percentages(),
	}, nil
}

func (s *service) forecastHorizon(horizon *int) (int, error) {
	if horizon == nil {
		return s.config.ForecastHorizonDays, nil
	}
	if *horizon < 1 || *horizon > s.config.MaxForecastHorizonDays {
		return 0, fmt.Errorf("horizon must be between 1 and %d days: %w", s.config.MaxForecastHorizonDays, errors.BadRequest)
	}
	return *horizon, nil
}

func (s *service) compare(score float64, ageBand string) *Comparison {
	table := s.benchmarks.Table()
	comparison := &Comparison{
		PopulationAverage:        table.PopulationAverageRiskScore,
		DifferenceFromPopulation: round2(score - table.PopulationAverageRiskScore),
	}

	if cohort, ok := table.CohortAverage(ageBand); ok {
		difference := round2(score - cohort)
		comparison.AgeBand = ageBand
		comparison.CohortAverage = &cohort
		comparison.DifferenceFromCohort = &difference
	}

	return comparison
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

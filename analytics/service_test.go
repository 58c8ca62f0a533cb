package analytics_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/benchmarks"
	"github.com/tidepool-org/riskanalytics/config"
	"github.com/tidepool-org/riskanalytics/errors"
	"github.com/tidepool-org/riskanalytics/metrics"
	"github.com/tidepool-org/riskanalytics/records"
	recordsTest "github.com/tidepool-org/riskanalytics/records/test"
	"github.com/tidepool-org/riskanalytics/test"
	"github.com/tidepool-org/riskanalytics/trends"
)

var _ = Describe("Analytics Service", func() {
	var ctrl *gomock.Controller
	var repo *recordsTest.MockRepository
	var m *metrics.Metrics
	var service analytics.Service
	var profile records.Profile
	var ctx context.Context

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		repo = recordsTest.NewMockRepository(ctrl)
		m = metrics.New()
		cfg := &config.Config{
			ForecastHorizonDays:    30,
			MaxForecastHorizonDays: 365,
			GlucoseWindow:          30,
		}

		service, err = analytics.NewService(cfg, repo, benchmarks.NewStaticProvider(benchmarks.Default()), m, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		profile = recordsTest.RandomProfile()
		profile.DiabetesType = "type2"
		profile.AgeBand = "45-54"
	})

	assessment := func(day int, score interface{}) records.RiskAssessment {
		return records.RiskAssessment{
			UserId:    profile.UserId,
			ClinicId:  profile.ClinicId,
			Time:      t0.AddDate(0, 0, day),
			RiskScore: score,
		}
	}

	reading := func(hour int, value float64) records.GlucoseReading {
		return records.GlucoseReading{
			UserId: profile.UserId,
			Time:   t0.Add(time.Duration(hour) * time.Hour),
			Value:  value,
			Units:  records.UnitsMgdL,
		}
	}

	Describe("RiskTrend", func() {
		It("fits and forecasts the risk score history", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, 0.2), assessment(30, 0.5)},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.HasEnoughData).To(BeTrue())
			Expect(report.DiagnosisContext).To(Equal(trends.DiagnosisContextDiagnosed))
			Expect(report.History).To(HaveLen(2))

			Expect(report.Trend).ToNot(BeNil())
			Expect(report.Trend.Slope).To(BeNumerically("~", 1, 1e-9))
			Expect(report.Trend.Intercept).To(BeNumerically("~", 20, 1e-9))
			Expect(report.Trend.Direction).To(Equal(trends.DirectionIncreasing))

			Expect(report.Forecast).To(HaveLen(30))
			Expect(report.Forecast[9].Value).To(Equal(60.0))
			Expect(report.Forecast[29].Value).To(Equal(80.0))
			Expect(report.Forecast[29].Timestamp).To(Equal(t0.AddDate(0, 0, 60).UnixMilli()))

			Expect(*report.Category).To(Equal(trends.RiskCategoryHigh))
			Expect(report.Guidance.Key).To(Equal("management_high"))
			Expect(report.Comparison.PopulationAverage).To(Equal(23.0))
			Expect(report.Comparison.DifferenceFromPopulation).To(Equal(27.0))
			Expect(report.Comparison.AgeBand).To(Equal("45-54"))
			Expect(*report.Comparison.CohortAverage).To(Equal(27.0))
			Expect(*report.Comparison.DifferenceFromCohort).To(Equal(23.0))
		})

		It("uses the guidance bounds rather than the category bounds", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, 0.22)},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(*report.Category).To(Equal(trends.RiskCategoryModerate))
			Expect(report.Guidance).ToNot(BeNil())
			Expect(report.Guidance.Key).To(Equal("management_low"))
		})

		It("omits guidance for at risk subjects with a low score", func() {
			profile.DiabetesType = "prediabetes"
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, 10), assessment(7, 24.99)},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(*report.Category).To(Equal(trends.RiskCategoryModerate))
			Expect(report.Guidance).To(BeNil())
		})

		It("uses the requested horizon", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, 0.2), assessment(30, 0.5)},
			}, nil)

			horizon := 90
			report, err := service.RiskTrend(ctx, profile.UserId, &horizon)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Forecast).To(HaveLen(90))
			Expect(report.Forecast[89].Value).To(Equal(100.0))
		})

		It("returns the latest score without a trend for a single assessment", func() {
			profile.DiabetesType = "prediabetes"
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, "0.62")},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.HasEnoughData).To(BeFalse())
			Expect(report.Trend).To(BeNil())
			Expect(report.Forecast).To(BeNil())
			Expect(report.Latest.Value).To(BeNumerically("~", 62, 1e-9))
			Expect(*report.Category).To(Equal(trends.RiskCategoryHigh))
			Expect(report.Guidance.Key).To(Equal("prevention_high"))

			Expect(testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP riskanalytics_insufficient_data_total Number of series with fewer than two points
# TYPE riskanalytics_insufficient_data_total counter
riskanalytics_insufficient_data_total{series="risk_score"} 1
`), "riskanalytics_insufficient_data_total")).To(Succeed())
		})

		It("returns an empty report for a subject without assessments", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile: profile,
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.HasEnoughData).To(BeFalse())
			Expect(report.History).To(BeEmpty())
			Expect(report.Latest).To(BeNil())
			Expect(report.Category).To(BeNil())
			Expect(report.Comparison).To(BeNil())
		})

		It("flags a degenerate trend", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(3, 40.0), assessment(3, 60.0)},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Trend.Slope).To(Equal(0.0))
			Expect(report.Trend.Intercept).To(Equal(50.0))
			Expect(report.Trend.Direction).To(Equal(trends.DirectionStable))

			count, err := testutil.GatherAndCount(m.Registry(), "riskanalytics_degenerate_trend_total")
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("omits the cohort comparison for unknown age bands", func() {
			profile.AgeBand = ""
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:     profile,
				Assessments: []records.RiskAssessment{assessment(0, 0.1)},
			}, nil)

			report, err := service.RiskTrend(ctx, profile.UserId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Comparison.CohortAverage).To(BeNil())
			Expect(report.Comparison.DifferenceFromCohort).To(BeNil())
		})

		DescribeTable("rejects invalid horizons without reading records",
			func(horizon int) {
				_, err := service.RiskTrend(ctx, profile.UserId, &horizon)
				Expect(err).To(MatchError(errors.BadRequest))
			},
			Entry("zero", 0),
			Entry("negative", -1),
			Entry("above the maximum", 366),
		)

		It("returns not found for unknown subjects", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), "unknown", 30).Return(nil, records.ErrNotFound)

			_, err := service.RiskTrend(ctx, "unknown", nil)
			Expect(err).To(MatchError(errors.NotFound))
		})
	})

	Describe("GlucoseStatus", func() {
		It("classifies a rising reading of a diagnosed subject", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:  profile,
				Readings: []records.GlucoseReading{reading(0, 120), reading(1, 150), reading(2, 185)},
			}, nil)

			report, err := service.GlucoseStatus(ctx, profile.UserId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Status).To(Equal(trends.GlucoseStatusHigh))
			Expect(report.Direction).To(Equal(trends.DirectionIncreasing))
			Expect(report.DiagnosisContext).To(Equal(trends.DiagnosisContextDiagnosed))
			Expect(report.Readings).To(Equal(3))
			Expect(*report.TypicalGlucose).To(Equal(154.0))
		})

		It("uses the at risk thresholds for subjects without a diagnosis", func() {
			profile.DiabetesType = "prediabetes"
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:  profile,
				Readings: []records.GlucoseReading{reading(0, 160), reading(1, 160)},
			}, nil)

			report, err := service.GlucoseStatus(ctx, profile.UserId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Status).To(Equal(trends.GlucoseStatusHigh))
			Expect(report.Direction).To(Equal(trends.DirectionStable))
			Expect(report.DiagnosisContext).To(Equal(trends.DiagnosisContextAtRisk))
		})

		It("is normal and stable without enough readings", func() {
			repo.EXPECT().GetSnapshot(gomock.Any(), profile.UserId, 30).Return(&records.Snapshot{
				Profile:  profile,
				Readings: []records.GlucoseReading{reading(0, 250)},
			}, nil)

			report, err := service.GlucoseStatus(ctx, profile.UserId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Status).To(Equal(trends.GlucoseStatusNormal))
			Expect(report.Direction).To(Equal(trends.DirectionStable))
			Expect(report.Latest).To(BeNil())
		})
	})

	Describe("ClinicDistribution", func() {
		It("aggregates the latest score of every subject", func() {
			clinicId := primitive.NewObjectID().Hex()
			repo.EXPECT().ListLatestRiskScores(gomock.Any(), clinicId).Return([]records.LatestScore{
				{UserId: test.RandomUserId(), RiskScore: 0.05},
				{UserId: test.RandomUserId(), RiskScore: 25},
				{UserId: test.RandomUserId(), RiskScore: 60.0},
				{UserId: test.RandomUserId(), RiskScore: "0.9"},
			}, nil)

			report, err := service.ClinicDistribution(ctx, clinicId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Total).To(Equal(4))
			Expect(report.Counts).To(Equal(trends.Distribution{Low: 1, Moderate: 1, High: 1, VeryHigh: 1}))
			Expect(report.Percentages).To(Equal(trends.DistributionPercentages{Low: 25, Moderate: 25, High: 25, VeryHigh: 25}))
		})

		It("returns zeros for a clinic without assessments", func() {
			clinicId := primitive.NewObjectID().Hex()
			repo.EXPECT().ListLatestRiskScores(gomock.Any(), clinicId).Return([]records.LatestScore{}, nil)

			report, err := service.ClinicDistribution(ctx, clinicId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Total).To(Equal(0))
			Expect(report.Percentages).To(Equal(trends.DistributionPercentages{}))
		})

		It("returns repository errors", func() {
			repo.EXPECT().ListLatestRiskScores(gomock.Any(), "invalid").Return(nil, errors.BadRequest)

			_, err := service.ClinicDistribution(ctx, "invalid")
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})
})

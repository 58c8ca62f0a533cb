package trends_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/riskanalytics/test"
	"github.com/tidepool-org/riskanalytics/trends"
)

const day = trends.MillisecondsPerDay

func riskSeries(points ...trends.Point) trends.Series {
	return trends.Series(points)
}

func at(dayOffset int64, value float64) trends.Point {
	return trends.Point{Timestamp: 1700000000000 + dayOffset*day, Value: value}
}

var _ = Describe("Linear Trend Estimator", func() {
	It("requires at least two points", func() {
		_, ok := trends.FitTrend(nil, trends.RiskScoreSensitivity)
		Expect(ok).To(BeFalse())

		_, ok = trends.FitTrend(riskSeries(at(0, 42)), trends.RiskScoreSensitivity)
		Expect(ok).To(BeFalse())

		Expect(trends.HasEnoughData(riskSeries(at(0, 42)))).To(BeFalse())
		Expect(trends.HasEnoughData(riskSeries(at(0, 42), at(1, 43)))).To(BeTrue())
	})

	It("is stable for a flat series", func() {
		fit, ok := trends.FitTrend(riskSeries(at(0, 10), at(10, 10), at(20, 10)), trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Result).To(Equal(trends.TrendResult{
			Slope:     0,
			Intercept: 10,
			Direction: trends.DirectionStable,
		}))
		Expect(fit.Degenerate).To(BeFalse())
	})

	It("fits a line through two points", func() {
		fit, ok := trends.FitTrend(riskSeries(at(0, 20), at(30, 50)), trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Result.Slope).To(Equal(1.0))
		Expect(fit.Result.Intercept).To(Equal(20.0))
		Expect(fit.Result.Direction).To(Equal(trends.DirectionIncreasing))
		Expect(fit.Anchor.Offset).To(Equal(30.0))
		Expect(fit.Anchor.Timestamp).To(Equal(at(30, 0).Timestamp))
	})

	It("detects a decreasing risk score", func() {
		fit, ok := trends.FitTrend(riskSeries(at(0, 60), at(7, 55), at(14, 48), at(21, 45)), trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Result.Slope).To(BeNumerically("<", 0))
		Expect(fit.Result.Direction).To(Equal(trends.DirectionDecreasing))
	})

	It("uses fractional days between assessments", func() {
		series := riskSeries(
			trends.Point{Timestamp: 0, Value: 10},
			trends.Point{Timestamp: day / 2, Value: 11},
		)
		fit, ok := trends.FitTrend(series, trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Result.Slope).To(BeNumerically("~", 2, 1e-9))
		Expect(fit.Anchor.Offset).To(Equal(0.5))
	})

	It("falls back to the mean when all points share the same day offset", func() {
		values := []float64{10, 20, 30, 40}
		series := trends.Series{}
		for _, v := range values {
			series = append(series, at(5, v))
		}

		fit, ok := trends.FitTrend(series, trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Degenerate).To(BeTrue())
		Expect(fit.Result.Slope).To(Equal(0.0))
		Expect(fit.Result.Intercept).To(Equal(25.0))
		Expect(fit.Result.Direction).To(Equal(trends.DirectionStable))
	})

	It("falls back to the mean for any series with identical offsets", func() {
		for i := 0; i < 100; i++ {
			n := test.Rand.Intn(20) + 2
			ts := test.Rand.Int63n(1 << 40)
			series := trends.Series{}
			sum := 0.0
			for j := 0; j < n; j++ {
				v := test.RandomFloatBetween(0, 100)
				sum += v
				series = append(series, trends.Point{Timestamp: ts, Value: v})
			}

			fit, ok := trends.FitTrend(series, trends.RiskScoreSensitivity)
			Expect(ok).To(BeTrue())
			Expect(fit.Result.Slope).To(Equal(0.0))
			Expect(fit.Result.Intercept).To(BeNumerically("~", sum/float64(n), 1e-9))
		}
	})

	It("tolerates duplicate timestamps", func() {
		fit, ok := trends.FitTrend(riskSeries(at(0, 10), at(0, 20), at(10, 30), at(10, 40)), trends.RiskScoreSensitivity)
		Expect(ok).To(BeTrue())
		Expect(fit.Degenerate).To(BeFalse())
		Expect(fit.Result.Slope).To(BeNumerically("~", 2, 1e-9))
		Expect(fit.Result.Intercept).To(BeNumerically("~", 15, 1e-9))
	})

	It("is idempotent", func() {
		series := trends.Series{}
		for i := int64(0); i < 30; i++ {
			series = append(series, at(i*3, test.RandomFloatBetween(0, 100)))
		}

		first, _ := trends.FitTrend(series, trends.RiskScoreSensitivity)
		second, _ := trends.FitTrend(series, trends.RiskScoreSensitivity)
		Expect(second).To(Equal(first))
	})

	Describe("sensitivities", func() {
		It("keeps separate epsilons for risk scores and glucose", func() {
			Expect(trends.RiskScoreSensitivity.Epsilon).To(Equal(0.0))
			Expect(trends.GlucoseSensitivity.Epsilon).To(Equal(0.5))
			Expect(trends.RiskScoreSensitivity.Axis).To(Equal(trends.AxisDays))
			Expect(trends.GlucoseSensitivity.Axis).To(Equal(trends.AxisReadingIndex))
		})

		DescribeTable("classifies slopes",
			func(sensitivity trends.Sensitivity, slope float64, expected trends.Direction) {
				Expect(sensitivity.Direction(slope)).To(Equal(expected))
			},
			Entry("risk score tiny positive", trends.RiskScoreSensitivity, 0.0001, trends.DirectionIncreasing),
			Entry("risk score tiny negative", trends.RiskScoreSensitivity, -0.0001, trends.DirectionDecreasing),
			Entry("risk score zero", trends.RiskScoreSensitivity, 0.0, trends.DirectionStable),
			Entry("glucose below epsilon", trends.GlucoseSensitivity, 0.5, trends.DirectionStable),
			Entry("glucose negative below epsilon", trends.GlucoseSensitivity, -0.5, trends.DirectionStable),
			Entry("glucose above epsilon", trends.GlucoseSensitivity, 0.51, trends.DirectionIncreasing),
			Entry("glucose below negative epsilon", trends.GlucoseSensitivity, -0.51, trends.DirectionDecreasing),
		)

		It("regresses glucose over the reading index", func() {
			series := trends.Series{
				{Timestamp: 0, Value: 100},
				{Timestamp: 5 * day, Value: 120},
				{Timestamp: 6 * day, Value: 140},
			}
			Expect(trends.GlucoseSensitivity.Offsets(series)).To(Equal([]float64{0, 1, 2}))

			fit, ok := trends.FitTrend(series, trends.GlucoseSensitivity)
			Expect(ok).To(BeTrue())
			Expect(fit.Result.Slope).To(BeNumerically("~", 20, 1e-9))
			Expect(fit.Result.Direction).To(Equal(trends.DirectionIncreasing))
		})
	})
})

var _ = Describe("Series", func() {
	It("normalizes and orders raw records", func() {
		series := trends.NewRiskSeries([]trends.RawRecord{
			{Timestamp: 3 * day, RawValue: "0.4"},
			{Timestamp: 1 * day, RawValue: 12.5},
			{Timestamp: 2 * day, RawValue: nil},
		})
		Expect(series).To(Equal(trends.Series{
			{Timestamp: 1 * day, Value: 12.5},
			{Timestamp: 2 * day, Value: 0},
			{Timestamp: 3 * day, Value: 40},
		}))
	})

	It("keeps the stored order of duplicate timestamps", func() {
		series := trends.NewGlucoseSeries([]trends.RawRecord{
			{Timestamp: day, RawValue: 150},
			{Timestamp: 0, RawValue: 90},
			{Timestamp: day, RawValue: 160},
		})
		Expect(series.Values()).To(Equal([]float64{90, 150, 160}))

		latest, ok := series.Latest()
		Expect(ok).To(BeTrue())
		Expect(latest.Value).To(Equal(160.0))
	})

	It("does not scale glucose readings", func() {
		series := trends.NewGlucoseSeries([]trends.RawRecord{{Timestamp: 0, RawValue: 1}})
		Expect(series.Values()).To(Equal([]float64{1}))
	})
})

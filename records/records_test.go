package records_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/trends"
)

var _ = Describe("Records", func() {
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	It("converts assessments to raw records", func() {
		decimal, err := primitive.ParseDecimal128("0.42")
		Expect(err).ToNot(HaveOccurred())

		raw := records.RiskRawRecords([]records.RiskAssessment{
			{Time: t0, RiskScore: 0.135},
			{Time: t0.Add(time.Hour), RiskScore: decimal},
			{Time: t0.Add(2 * time.Hour), RiskScore: primitive.Null{}},
		})
		Expect(raw).To(Equal([]trends.RawRecord{
			{Timestamp: t0.UnixMilli(), RawValue: 0.135},
			{Timestamp: t0.Add(time.Hour).UnixMilli(), RawValue: "0.42"},
			{Timestamp: t0.Add(2 * time.Hour).UnixMilli(), RawValue: nil},
		}))

		series := trends.NewRiskSeries(raw)
		Expect(series[1].Value).To(BeNumerically("~", 42, 1e-9))
		Expect(series[2].Value).To(Equal(0.0))
	})

	It("converts mmol/L readings to mg/dL", func() {
		raw := records.GlucoseRawRecords([]records.GlucoseReading{
			{Time: t0, Value: 10.0, Units: records.UnitsMmolL},
			{Time: t0, Value: "140", Units: records.UnitsMgdL},
		})
		Expect(raw[0].RawValue).To(BeNumerically("~", 180.1559, 1e-9))
		Expect(raw[1].RawValue).To(Equal("140"))
	})

	It("normalizes the latest scores", func() {
		scores := records.LatestRiskScores([]records.LatestScore{
			{UserId: "a", RiskScore: 0.05},
			{UserId: "b", RiskScore: int32(25)},
			{UserId: "c", RiskScore: "60"},
			{UserId: "d", RiskScore: nil},
		})
		Expect(scores).To(HaveLen(4))
		Expect(scores[0]).To(BeNumerically("~", 5, 1e-9))
		Expect(scores[1:]).To(Equal([]float64{25, 60, 0}))
	})

	DescribeTable("maps the diabetes type of a profile to a diagnosis context",
		func(diabetesType string, expected trends.DiagnosisContext) {
			Expect(records.Profile{DiabetesType: diabetesType}.DiagnosisContext()).To(Equal(expected))
		},
		Entry("type 2", "type2", trends.DiagnosisContextDiagnosed),
		Entry("prediabetes", "prediabetes", trends.DiagnosisContextAtRisk),
	)
})

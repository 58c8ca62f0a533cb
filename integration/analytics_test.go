package integration_test

import (
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/riskanalytics/api"
	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/test"
)

var _ = Describe("Risk analytics", Ordered, func() {
	var clinicId primitive.ObjectID
	var patient records.Profile
	var other records.Profile
	var start time.Time

	BeforeAll(func() {
		clinicId = primitive.NewObjectID()
		start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		patient = records.Profile{
			UserId:       test.RandomUserId(),
			ClinicId:     clinicId,
			DiabetesType: "type2",
			AgeBand:      "45-54",
		}
		other = records.Profile{
			UserId:       test.RandomUserId(),
			ClinicId:     clinicId,
			DiabetesType: "prediabetes",
			AgeBand:      "18-34",
		}
	})

	Describe("Seed records", func() {
		It("Succeeds", func() {
			Expect(repo.UpsertProfile(testCtx(), patient)).To(Succeed())
			Expect(repo.UpsertProfile(testCtx(), other)).To(Succeed())

			var assessments []records.RiskAssessment
			for i, score := range []interface{}{0.2, "0.3", 40, 0.5} {
				assessments = append(assessments, records.RiskAssessment{
					UserId:    patient.UserId,
					ClinicId:  clinicId,
					Time:      start.AddDate(0, 0, i),
					RiskScore: score,
				})
			}
			assessments = append(assessments, records.RiskAssessment{
				UserId:    other.UserId,
				ClinicId:  clinicId,
				Time:      start,
				RiskScore: 0.1,
			})
			Expect(repo.CreateRiskAssessments(testCtx(), assessments)).To(Succeed())

			var readings []records.GlucoseReading
			for i, value := range []float64{120, 130, 140, 150} {
				readings = append(readings, records.GlucoseReading{
					UserId: patient.UserId,
					Time:   start.Add(time.Duration(i) * time.Hour),
					Value:  value,
					Units:  records.UnitsMgdL,
				})
			}
			Expect(repo.CreateGlucoseReadings(testCtx(), readings)).To(Succeed())
		})
	})

	Describe("Get risk trend", func() {
		It("Returns the trend and the forecast", func() {
			req := prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend?horizon=3", patient.UserId))
			res := serve(req)
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var trend api.RiskTrend
			decode(res, &trend)
			Expect(trend.UserId).To(Equal(patient.UserId))
			Expect(trend.HasEnoughData).To(BeTrue())
			Expect(trend.DiagnosisContext).To(Equal(api.Diagnosed))
			Expect(trend.History).To(HaveLen(4))
			Expect(trend.Latest).ToNot(BeNil())
			Expect(trend.Latest.Value).To(BeNumerically("==", 50))

			Expect(trend.Trend).ToNot(BeNil())
			Expect(trend.Trend.Direction).To(Equal(api.Increasing))
			Expect(trend.Trend.Slope).To(BeNumerically("~", 10, 1e-9))
			Expect(trend.Trend.Intercept).To(BeNumerically("~", 20, 1e-9))

			Expect(trend.Forecast).ToNot(BeNil())
			Expect(*trend.Forecast).To(HaveLen(3))
			values := make([]float64, 0, 3)
			for _, p := range *trend.Forecast {
				values = append(values, p.Value)
			}
			Expect(values).To(Equal([]float64{60, 70, 80}))
			Expect((*trend.Forecast)[0].Timestamp).To(Equal(start.AddDate(0, 0, 4).UnixMilli()))

			Expect(trend.Category).ToNot(BeNil())
			Expect(*trend.Category).To(Equal(api.RiskCategoryHigh))
			Expect(trend.Guidance).ToNot(BeNil())
			Expect(trend.Guidance.Key).To(Equal("management_high"))

			Expect(trend.Comparison).ToNot(BeNil())
			Expect(trend.Comparison.PopulationAverage).To(BeNumerically("==", 23))
			Expect(trend.Comparison.DifferenceFromPopulation).To(BeNumerically("==", 27))
			Expect(trend.Comparison.DifferenceFromCohort).ToNot(BeNil())
			Expect(*trend.Comparison.DifferenceFromCohort).To(BeNumerically("==", 23))
		})

		It("Uses the default horizon", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend", patient.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var trend api.RiskTrend
			decode(res, &trend)
			Expect(trend.Forecast).ToNot(BeNil())
			Expect(*trend.Forecast).To(HaveLen(30))
		})

		It("Reports insufficient data for a single assessment", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend", other.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var trend api.RiskTrend
			decode(res, &trend)
			Expect(trend.HasEnoughData).To(BeFalse())
			Expect(trend.History).To(HaveLen(1))
			Expect(trend.Trend).To(BeNil())
			Expect(trend.Forecast).To(BeNil())
			Expect(trend.Category).ToNot(BeNil())
			Expect(*trend.Category).To(Equal(api.RiskCategoryLow))
			Expect(trend.Guidance).To(BeNil())
		})

		It("Rejects a horizon of zero", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend?horizon=0", patient.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("Rejects a horizon above the maximum", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend?horizon=366", patient.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("Returns not found for unknown patients", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/risk/trend", test.RandomUserId())))
			Expect(res.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Get glucose status", func() {
		It("Classifies the latest reading", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/glucose/status", patient.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var status api.GlucoseStatus
			decode(res, &status)
			Expect(status.UserId).To(Equal(patient.UserId))
			Expect(status.Status).To(Equal(api.GlucoseStatusValueNormalHigh))
			Expect(status.Direction).To(Equal(api.Increasing))
			Expect(status.Readings).To(Equal(4))
			Expect(status.Latest).ToNot(BeNil())
			Expect(status.Latest.Value).To(BeNumerically("==", 150))
		})

		It("Returns normal and stable without readings", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/patients/%s/glucose/status", other.UserId)))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var status api.GlucoseStatus
			decode(res, &status)
			Expect(status.Status).To(Equal(api.GlucoseStatusValueNormal))
			Expect(status.Direction).To(Equal(api.Stable))
			Expect(status.Latest).To(BeNil())
		})
	})

	Describe("Get clinic risk distribution", func() {
		It("Counts the latest score of every patient", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/clinics/%s/risk/distribution", clinicId.Hex())))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var distribution api.RiskDistribution
			decode(res, &distribution)
			Expect(distribution.ClinicId).To(Equal(clinicId.Hex()))
			Expect(distribution.Total).To(Equal(2))
			Expect(distribution.Counts).To(Equal(api.RiskBandCounts{Low: 1, High: 1}))
			Expect(distribution.Percentages).To(Equal(api.RiskBandPercentages{Low: 50, High: 50}))
		})

		It("Returns zeros for an empty clinic", func() {
			res := serve(prepareRequest(http.MethodGet, fmt.Sprintf("/v1/clinics/%s/risk/distribution", primitive.NewObjectID().Hex())))
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			var distribution api.RiskDistribution
			decode(res, &distribution)
			Expect(distribution.Total).To(Equal(0))
			Expect(distribution.Percentages).To(Equal(api.RiskBandPercentages{}))
		})

		It("Rejects an invalid clinic id", func() {
			res := serve(prepareRequest(http.MethodGet, "/v1/clinics/not-an-id/risk/distribution"))
			Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Readiness", func() {
		It("Reports ready", func() {
			res := serve(prepareRequest(http.MethodGet, "/ready"))
			Expect(res.StatusCode).To(Equal(http.StatusOK))
		})
	})
})

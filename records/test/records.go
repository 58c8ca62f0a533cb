package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/test"
)

var (
	diabetesTypes = []string{"type1", "type2", "gestational", "other", "prediabetes", "none"}
	ageBands      = []string{"18-34", "35-44", "45-54", "55-64", "65+"}
)

func RandomProfile() records.Profile {
	return records.Profile{
		UserId:       test.RandomUserId(),
		ClinicId:     primitive.NewObjectID(),
		DiabetesType: test.Faker.RandomStringElement(diabetesTypes),
		AgeBand:      test.Faker.RandomStringElement(ageBands),
	}
}

// RandomRiskAssessments returns count assessments one week apart ending today. Scores are stored
// as probabilities, like the model writes them.
func RandomRiskAssessments(profile records.Profile, count int) []records.RiskAssessment {
	start := today().AddDate(0, 0, -7*(count-1))
	assessments := make([]records.RiskAssessment, 0, count)
	for i := 0; i < count; i++ {
		assessments = append(assessments, records.RiskAssessment{
			UserId:       profile.UserId,
			ClinicId:     profile.ClinicId,
			Time:         start.AddDate(0, 0, 7*i),
			RiskScore:    test.RandomFloatBetween(0.01, 1),
			ModelVersion: "2.1.0",
		})
	}
	return assessments
}

// RandomGlucoseReadings returns count hourly readings in mg/dL ending now
func RandomGlucoseReadings(userId string, count int) []records.GlucoseReading {
	start := today().Add(-time.Duration(count-1) * time.Hour)
	readings := make([]records.GlucoseReading, 0, count)
	for i := 0; i < count; i++ {
		readings = append(readings, records.GlucoseReading{
			UserId: userId,
			Time:   start.Add(time.Duration(i) * time.Hour),
			Value:  float64(test.Faker.IntBetween(60, 250)),
			Units:  records.UnitsMgdL,
		})
	}
	return readings
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

package command

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/records"
	"github.com/tidepool-org/riskanalytics/trends"
)

const seedModelVersion = "demo"

var (
	seedClinicId     string
	seedDiabetesType string
	seedAgeBand      string
	seedDays         int
	seedReadings     int
)

var seedCmd = &cobra.Command{
	Use:   "seed <userId>",
	Short: "Generate demo records for a patient",
	Long:  "The seed command creates a profile with weekly risk assessments and hourly glucose readings. Only use it in local environments.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clinicId, err := primitive.ObjectIDFromHex(seedClinicId)
		if err != nil {
			return fmt.Errorf("invalid clinic id %q: %w", seedClinicId, err)
		}
		if seedDays < 1 {
			return fmt.Errorf("days must be positive")
		}

		return Run(func(repo records.Repository, logger *zap.SugaredLogger) error {
			seeder := newSeeder(faker.New(), time.Now().UTC())
			profile := records.Profile{
				UserId:       args[0],
				ClinicId:     clinicId,
				DiabetesType: seedDiabetesType,
				AgeBand:      seedAgeBand,
			}
			return seed(cmd.Context(), cmd.OutOrStdout(), repo, seeder, profile, logger)
		})
	},
}

func seed(ctx context.Context, w io.Writer, repo records.Repository, seeder *seeder, profile records.Profile, logger *zap.SugaredLogger) error {
	if err := repo.UpsertProfile(ctx, profile); err != nil {
		return err
	}

	assessments := seeder.riskAssessments(profile, seedDays)
	if err := repo.CreateRiskAssessments(ctx, assessments); err != nil {
		return err
	}

	readings := seeder.glucoseReadings(profile, seedReadings)
	if err := repo.CreateGlucoseReadings(ctx, readings); err != nil {
		return err
	}

	logger.Infow("seeded demo records",
		"userId", profile.UserId,
		"clinicId", profile.ClinicId.Hex(),
		"assessments", len(assessments),
		"readings", len(readings),
	)
	_, err := fmt.Fprintf(w, "Created %d risk assessments and %d glucose readings for %s\n", len(assessments), len(readings), profile.UserId)
	return err
}

type seeder struct {
	faker faker.Faker
	now   time.Time
}

func newSeeder(f faker.Faker, now time.Time) *seeder {
	return &seeder{faker: f, now: now}
}

// riskAssessments returns weekly probabilities following a random walk over the last days
func (s *seeder) riskAssessments(profile records.Profile, days int) []records.RiskAssessment {
	count := days/7 + 1
	start := s.now.AddDate(0, 0, -7*(count-1))
	score := s.between(0.05, 0.6)

	assessments := make([]records.RiskAssessment, 0, count)
	for i := 0; i < count; i++ {
		assessments = append(assessments, records.RiskAssessment{
			UserId:       profile.UserId,
			ClinicId:     profile.ClinicId,
			Time:         start.AddDate(0, 0, 7*i),
			RiskScore:    math.Round(score*1000) / 1000,
			ModelVersion: seedModelVersion,
		})
		score = math.Min(0.99, math.Max(0.01, score+s.between(-0.03, 0.04)))
	}
	return assessments
}

// glucoseReadings returns hourly readings around the typical level of the diagnosis context
func (s *seeder) glucoseReadings(profile records.Profile, count int) []records.GlucoseReading {
	base := 100.0
	if profile.DiagnosisContext() == trends.DiagnosisContextDiagnosed {
		base = 150.0
	}

	start := s.now.Add(-time.Duration(count-1) * time.Hour)
	readings := make([]records.GlucoseReading, 0, count)
	for i := 0; i < count; i++ {
		readings = append(readings, records.GlucoseReading{
			UserId: profile.UserId,
			Time:   start.Add(time.Duration(i) * time.Hour),
			Value:  math.Round(base + s.between(-35, 45)),
			Units:  records.UnitsMgdL,
		})
	}
	return readings
}

func (s *seeder) between(min, max float64) float64 {
	return min + float64(s.faker.IntBetween(0, 10000))/10000*(max-min)
}

func init() {
	seedCmd.Flags().StringVar(&seedClinicId, "clinic", "", "Id of the clinic of the patient")
	seedCmd.Flags().StringVar(&seedDiabetesType, "type", "type2", "Diabetes type of the patient")
	seedCmd.Flags().StringVar(&seedAgeBand, "age-band", "45-54", "Age band of the patient")
	seedCmd.Flags().IntVar(&seedDays, "days", 90, "Number of days of risk assessments to generate")
	seedCmd.Flags().IntVar(&seedReadings, "readings", 48, "Number of hourly glucose readings to generate")
	_ = seedCmd.MarkFlagRequired("clinic")
	rootCmd.AddCommand(seedCmd)
}

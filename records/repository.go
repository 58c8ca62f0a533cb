package records

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/errors"
	"github.com/tidepool-org/riskanalytics/store"
)

const (
	profilesCollectionName        = "profiles"
	riskAssessmentsCollectionName = "riskAssessments"
	glucoseReadingsCollectionName = "glucoseReadings"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repository.go -destination=./test/mock_repository.go -package test MockRepository

type Repository interface {
	GetProfile(ctx context.Context, userId string) (*Profile, error)
	UpsertProfile(ctx context.Context, profile Profile) error
	ListRiskAssessments(ctx context.Context, userId string) ([]RiskAssessment, error)
	ListGlucoseReadings(ctx context.Context, userId string, limit int) ([]GlucoseReading, error)
	GetSnapshot(ctx context.Context, userId string, glucoseLimit int) (*Snapshot, error)
	ListLatestRiskScores(ctx context.Context, clinicId string) ([]LatestScore, error)
	CreateRiskAssessments(ctx context.Context, assessments []RiskAssessment) error
	CreateGlucoseReadings(ctx context.Context, readings []GlucoseReading) error
}

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		client:      db.Client(),
		profiles:    db.Collection(profilesCollectionName),
		assessments: db.Collection(riskAssessmentsCollectionName),
		readings:    db.Collection(glucoseReadingsCollectionName),
		logger:      logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	client      *mongo.Client
	profiles    *mongo.Collection
	assessments *mongo.Collection
	readings    *mongo.Collection
	logger      *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	err := store.CreateIndexes(ctx, r.profiles, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetUnique(true).
				SetName("UniqueProfile"),
		},
	}, r.logger)
	if err != nil {
		return err
	}

	err = store.CreateIndexes(ctx, r.assessments, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("AssessmentsByUser"),
		},
		{
			Keys: bson.D{
				{Key: "clinicId", Value: 1},
				{Key: "userId", Value: 1},
				{Key: "time", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("LatestAssessmentsByClinic"),
		},
	}, r.logger)
	if err != nil {
		return err
	}

	return store.CreateIndexes(ctx, r.readings, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "time", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("ReadingsByUser"),
		},
	}, r.logger)
}

func (r *repository) GetProfile(ctx context.Context, userId string) (*Profile, error) {
	profile := &Profile{}
	err := r.profiles.FindOne(ctx, bson.M{"userId": userId}).Decode(profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting profile: %w", err)
	}

	return profile, nil
}

func (r *repository) UpsertProfile(ctx context.Context, profile Profile) error {
	if profile.UserId == "" {
		return fmt.Errorf("user id is required: %w", errors.BadRequest)
	}

	profile.Id = nil
	profile.UpdatedTime = time.Now().UTC().Truncate(time.Millisecond)

	selector := bson.M{"userId": profile.UserId}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	_, err := r.profiles.UpdateOne(ctx, selector, update, opts)
	if store.IsDuplicateKeyError(err) {
		// Concurrent upserts of a new profile race on the unique index
		r.logger.Debugw("retrying profile upsert after duplicate key error", "userId", profile.UserId)
		_, err = r.profiles.UpdateOne(ctx, selector, update, opts)
	}
	if err != nil {
		return fmt.Errorf("error upserting profile: %w", err)
	}

	return nil
}

func (r *repository) ListRiskAssessments(ctx context.Context, userId string) ([]RiskAssessment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "time", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.assessments.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing risk assessments: %w", err)
	}

	assessments := make([]RiskAssessment, 0)
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, fmt.Errorf("error decoding risk assessments: %w", err)
	}

	return assessments, nil
}

// ListGlucoseReadings returns the most recent readings in ascending order of time
func (r *repository) ListGlucoseReadings(ctx context.Context, userId string, limit int) ([]GlucoseReading, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive: %w", errors.BadRequest)
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "time", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(limit))

	cursor, err := r.readings.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing glucose readings: %w", err)
	}

	readings := make([]GlucoseReading, 0)
	if err = cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("error decoding glucose readings: %w", err)
	}

	slices.Reverse(readings)
	return readings, nil
}

// GetSnapshot reads the profile and both histories of a subject from a single
// snapshot so concurrent ingestion can't produce a mixed view
func (r *repository) GetSnapshot(ctx context.Context, userId string, glucoseLimit int) (*Snapshot, error) {
	return store.ReadSnapshot(ctx, r.client, func(sessCtx mongo.SessionContext) (*Snapshot, error) {
		profile, err := r.GetProfile(sessCtx, userId)
		if err != nil {
			return nil, err
		}

		assessments, err := r.ListRiskAssessments(sessCtx, userId)
		if err != nil {
			return nil, err
		}

		readings, err := r.ListGlucoseReadings(sessCtx, userId, glucoseLimit)
		if err != nil {
			return nil, err
		}

		return &Snapshot{
			Profile:     *profile,
			Assessments: assessments,
			Readings:    readings,
		}, nil
	})
}

func (r *repository) ListLatestRiskScores(ctx context.Context, clinicId string) ([]LatestScore, error) {
	clinicObjId, err := primitive.ObjectIDFromHex(clinicId)
	if err != nil {
		return nil, fmt.Errorf("invalid clinic id: %w", errors.BadRequest)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"clinicId": clinicObjId}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "userId", Value: 1},
			{Key: "time", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$userId"},
			{Key: "time", Value: bson.M{"$first": "$time"}},
			{Key: "riskScore", Value: bson.M{"$first": "$riskScore"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.assessments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating latest risk scores: %w", err)
	}

	scores := make([]LatestScore, 0)
	if err = cursor.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("error decoding latest risk scores: %w", err)
	}

	return scores, nil
}

func (r *repository) CreateRiskAssessments(ctx context.Context, assessments []RiskAssessment) error {
	if len(assessments) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(assessments))
	for _, a := range assessments {
		a.Id = nil
		documents = append(documents, a)
	}

	if _, err := r.assessments.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("error creating risk assessments: %w", err)
	}

	r.logger.Debugw("created risk assessments", "count", len(documents))
	return nil
}

func (r *repository) CreateGlucoseReadings(ctx context.Context, readings []GlucoseReading) error {
	if len(readings) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(readings))
	for _, reading := range readings {
		reading.Id = nil
		if reading.Units == "" {
			reading.Units = UnitsMgdL
		}
		documents = append(documents, reading)
	}

	if _, err := r.readings.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("error creating glucose readings: %w", err)
	}

	r.logger.Debugw("created glucose readings", "count", len(documents))
	return nil
}

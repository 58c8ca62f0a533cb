package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func NewDatabase(client *mongo.Client, cfg *Config, logger *zap.SugaredLogger) (*mongo.Database, error) {
	if cfg.DatabaseName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	logger.Debugw("using database", "name", cfg.DatabaseName)
	return client.Database(cfg.DatabaseName), nil
}

// CreateIndexes creates the indexes of a collection. Indexes which already exist with a
// different definition are left untouched, because rebuilding them must be done by an operator.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, models []mongo.IndexModel, logger *zap.SugaredLogger) error {
	_, err := collection.Indexes().CreateMany(ctx, models)
	if IsIndexConflictError(err) {
		logger.Warnw("index definition conflicts with an existing index", "collection", collection.Name(), "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to create indexes of %s: %w", collection.Name(), err)
	}
	return nil
}

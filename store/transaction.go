package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

type Transaction = func(sessCtx mongo.SessionContext) (interface{}, error)

func WithTransaction(ctx context.Context, dbClient *mongo.Client, txn Transaction) (interface{}, error) {
	session, err := dbClient.StartSession()
	if err != nil {
		return nil, fmt.Errorf("unable to start sessions %w", err)
	}
	defer session.EndSession(ctx)

	wc := writeconcern.Majority()
	rc := readconcern.Snapshot()
	txnOpts := options.Transaction().SetWriteConcern(wc).SetReadConcern(rc).SetReadPreference(readpref.Primary())
	return session.WithTransaction(ctx, txn, txnOpts)
}

// ReadSnapshot runs read only queries against a single point in time of the database
func ReadSnapshot[T any](ctx context.Context, dbClient *mongo.Client, read func(sessCtx mongo.SessionContext) (T, error)) (T, error) {
	var empty T
	result, err := WithTransaction(ctx, dbClient, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return read(sessCtx)
	})
	if err != nil {
		return empty, err
	}

	typed, ok := result.(T)
	if !ok {
		return empty, fmt.Errorf("unexpected snapshot result type %T", result)
	}
	return typed, nil
}

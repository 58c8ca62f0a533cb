package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	errorCodeIndexOptionsConflict  = 85
	errorCodeIndexKeySpecsConflict = 86
)

func IsDuplicateKeyError(err error) bool {
	if e, ok := serverError(err); ok {
		return e.HasErrorCode(11000) || e.HasErrorCode(11001) || e.HasErrorCode(12582) ||
			e.HasErrorCodeWithMessage(16460, " E11000 ")
	}
	return false
}

// IsIndexConflictError reports whether an index with the same name but a different
// definition already exists
func IsIndexConflictError(err error) bool {
	if e, ok := serverError(err); ok {
		return e.HasErrorCode(errorCodeIndexOptionsConflict) || e.HasErrorCode(errorCodeIndexKeySpecsConflict)
	}
	return false
}

func serverError(err error) (mongo.ServerError, bool) {
	var e mongo.ServerError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package errors

import (
	"errors"
	"net/http"
)

// Sentinels are wrapped with %w and translated to a status code by CustomHTTPErrorHandler
var (
	NotFound    = HttpError{http.StatusNotFound, errors.New("not found")}
	BadRequest  = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Unavailable = HttpError{http.StatusServiceUnavailable, errors.New("service unavailable")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler responds with the status code of HttpError sentinels found in the
// error chain. Requests cancelled by a deadline are reported as unavailable.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("request timed out: %w", Unavailable)
	}

	e := HttpError{}
	if errors.As(err, &e) {
		err = echo.NewHTTPError(e.Code, err.Error())
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}

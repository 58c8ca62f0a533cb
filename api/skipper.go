package api

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouteSkipper skips middlewares for the given route paths, e.g. probes and metrics
func RouteSkipper(routes []string) middleware.Skipper {
	skipped := mapset.NewSet(routes...)
	return func(ec echo.Context) bool {
		return skipped.Contains(ec.Path())
	}
}

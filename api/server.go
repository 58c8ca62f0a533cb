package api

import (
	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echomiddleware "github.com/oapi-codegen/echo-middleware"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/errors"
	"github.com/tidepool-org/riskanalytics/metrics"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, metrics *metrics.Metrics, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api spec
	swagger.Servers = nil

	// Skip validation and logging for readiness probe and metrics routes
	skipper := RouteSkipper([]string{"/ready", "/metrics"})
	requestValidator := echomiddleware.OapiRequestValidatorWithOptions(swagger, &echomiddleware.Options{
		Options: openapi3filter.Options{
			ExcludeRequestBody: true,
		},
		Skipper: skipper,
	})
	loggerMiddleware := func(next echo.HandlerFunc) echo.HandlerFunc {
		log := echozap.ZapLogger(logger)(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return log(c)
		}
	}

	e.Use(middleware.Recover())
	e.Use(loggerMiddleware)
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	RegisterHandlers(e, handler)

	return e, nil
}

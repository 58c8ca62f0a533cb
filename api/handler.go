package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/tidepool-org/riskanalytics/analytics"
)

type Handler struct {
	analytics analytics.Service
}

var _ ServerInterface = &Handler{}

type Params struct {
	fx.In

	Analytics analytics.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		analytics: p.Analytics,
	}
}

func (h *Handler) GetRiskTrend(ec echo.Context, userId UserId, params GetRiskTrendParams) error {
	report, err := h.analytics.RiskTrend(ec.Request().Context(), userId, params.Horizon)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewRiskTrendDto(report))
}

func (h *Handler) GetGlucoseStatus(ec echo.Context, userId UserId) error {
	report, err := h.analytics.GlucoseStatus(ec.Request().Context(), userId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewGlucoseStatusDto(report))
}

func (h *Handler) GetRiskDistribution(ec echo.Context, clinicId ClinicId) error {
	report, err := h.analytics.ClinicDistribution(ec.Request().Context(), clinicId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewRiskDistributionDto(report))
}

package api_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/riskanalytics/api"
)

var _ = Describe("RouteSkipper", func() {
	It("skips only the listed routes", func() {
		e := echo.New()
		skipper := api.RouteSkipper([]string{"/ready", "/metrics"})

		ready := e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), httptest.NewRecorder())
		ready.SetPath("/ready")
		Expect(skipper(ready)).To(BeTrue())

		trend := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/patients/1/risk/trend", nil), httptest.NewRecorder())
		trend.SetPath("/v1/patients/:userId/risk/trend")
		Expect(skipper(trend)).To(BeFalse())
	})
})

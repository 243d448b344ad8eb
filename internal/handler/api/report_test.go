//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fuel-station/internal/handler/api"
	resdto "fuel-station/internal/handler/dto/response"
	"fuel-station/internal/usecase/queries"
	"fuel-station/tests/common/httptest"
	queriesmock "fuel-station/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries)

	s.router.GET("/reports/overview", s.handler.Overview)
	s.router.GET("/reports/timeseries", s.handler.Timeseries)
	s.router.GET("/reports/by-fuel-type", s.handler.ByFuelType)
	s.router.GET("/reports/price-history/:id", s.handler.PriceHistory)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestOverview() {
	s.Run("success: returns aggregated figures", func() {
		view := &queries.OverviewView{
			TotalRevenue: decimal.RequireFromString("13500"),
			TotalLitres:  decimal.RequireFromString("7200.5"),
			TxCount:      42,
			AvgTicket:    decimal.RequireFromString("321.43"),
		}
		s.mockQueries.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/overview", nil)

		var body resdto.OverviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("13500.00", body.TotalRevenue)
		s.Equal("7200.500", body.TotalLitres)
		s.Equal(int64(42), body.TxCount)
	})

	s.Run("error: 400 on malformed timestamp", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/overview?from=lastweek", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "RFC3339")
	})
}

func (s *ReportHandlerTestSuite) TestTimeseries() {
	s.Run("success: passes granularity through", func() {
		s.mockQueries.EXPECT().
			Timeseries(gomock.Any(), gomock.Any(), queries.GranularityWeek).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/timeseries?granularity=week", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown granularity", func() {
		s.mockQueries.EXPECT().
			Timeseries(gomock.Any(), gomock.Any(), queries.Granularity("hour")).
			Return(nil, queries.ErrInvalidGranularity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/timeseries?granularity=hour", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "granularity")
	})
}

func (s *ReportHandlerTestSuite) TestPriceHistory() {
	s.Run("success: returns intervals", func() {
		views := []*queries.PriceIntervalView{
			{PricePerLitre: decimal.RequireFromString("1.859")},
		}
		s.mockQueries.EXPECT().
			PriceHistory(gomock.Any(), int64(1), gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/price-history/1", nil)

		var body []resdto.PriceIntervalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("1.859", body[0].PricePerLitre)
	})

	s.Run("error: 404 when fuel type is unknown", func() {
		s.mockQueries.EXPECT().
			PriceHistory(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, queries.ErrFuelTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/price-history/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/price-history/premium", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID")
	})
}

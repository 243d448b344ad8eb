package api

import (
	"errors"
	"net/http"

	reqdto "fuel-station/internal/handler/dto/request"
	resdto "fuel-station/internal/handler/dto/response"
	"fuel-station/internal/handler/httperr"
	"fuel-station/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Sales overview
// @Description Aggregate revenue, volume and ticket statistics for a period
// @Tags reports
// @Produce json
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (inclusive)"
// @Param fuel_type_id query int false "Restrict to one fuel type"
// @Success 200 {object} resdto.OverviewResponse
// @Failure 400 {object} map[string]string
// @Router /reports/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	view, err := h.reportQueries.Overview(c.Request.Context(), filter)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverviewView(view))
}

// @Summary Revenue timeseries
// @Description Revenue and volume bucketed by day, week or month
// @Tags reports
// @Produce json
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (inclusive)"
// @Param fuel_type_id query int false "Restrict to one fuel type"
// @Param granularity query string false "day, week or month (default day)"
// @Success 200 {array} resdto.TimeseriesBucketResponse
// @Failure 400 {object} map[string]string
// @Router /reports/timeseries [get]
func (h *ReportHandler) Timeseries(c *gin.Context) {
	var query reqdto.ReportQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.reportQueries.Timeseries(c.Request.Context(), filter, query.ToGranularity())
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	response := make([]*resdto.TimeseriesBucketResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTimeseriesBucketView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Sales by fuel type
// @Description Revenue and volume broken down per fuel type, highest revenue first
// @Tags reports
// @Produce json
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (inclusive)"
// @Success 200 {array} resdto.FuelTypeSalesResponse
// @Failure 400 {object} map[string]string
// @Router /reports/by-fuel-type [get]
func (h *ReportHandler) ByFuelType(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	views, err := h.reportQueries.ByFuelType(c.Request.Context(), filter.Range)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	response := make([]*resdto.FuelTypeSalesResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromFuelTypeSalesView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Price history
// @Description Price intervals for a fuel type overlapping the requested range, oldest first
// @Tags reports
// @Produce json
// @Param id path int true "Fuel type ID"
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (inclusive)"
// @Success 200 {array} resdto.PriceIntervalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports/price-history/{id} [get]
func (h *ReportHandler) PriceHistory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fuel type ID format", nil)
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	views, err := h.reportQueries.PriceHistory(c.Request.Context(), id, filter.Range)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrFuelTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel type not found", nil)
		default:
			h.respondQueryError(c, err)
		}
		return
	}

	response := make([]*resdto.PriceIntervalResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPriceIntervalView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) bindFilter(c *gin.Context) (queries.ReportFilter, bool) {
	var query reqdto.ReportQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return queries.ReportFilter{}, false
	}

	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return queries.ReportFilter{}, false
	}
	return filter, true
}

func (h *ReportHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from must not be after to", nil)
	case errors.Is(err, queries.ErrInvalidGranularity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "granularity must be day, week or month", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package api

import (
	"errors"
	"net/http"

	reqdto "fuel-station/internal/handler/dto/request"
	resdto "fuel-station/internal/handler/dto/response"
	"fuel-station/internal/handler/httperr"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"
	"fuel-station/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleCommands commands.SaleCommands
	saleQueries  queries.SaleQueries
}

func NewSaleHandler(saleCommands commands.SaleCommands, saleQueries queries.SaleQueries) *SaleHandler {
	return &SaleHandler{
		saleCommands: saleCommands,
		saleQueries:  saleQueries,
	}
}

// @Summary Record sale
// @Description Sell litres of a fuel type at its current price, decrementing stock atomically
// @Tags sales
// @Accept json
// @Produce json
// @Param request body reqdto.RecordSaleRequest true "Sale request"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /sales [post]
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req reqdto.RecordSaleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	litres, err := req.Decimal()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decimal value", nil)
		return
	}

	sale, err := h.saleCommands.RecordSale(c.Request.Context(), req.FuelTypeID, litres)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrFuelTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel type not found", nil)
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
		case errors.Is(err, shared.ErrTxContention):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service busy, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSaleRecord(sale))
}

// @Summary List sales
// @Description List sales, optionally filtered by time range and fuel type
// @Tags sales
// @Produce json
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (inclusive)"
// @Param fuel_type_id query int false "Restrict to one fuel type"
// @Param order query string false "asc or desc, default asc"
// @Success 200 {array} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var query reqdto.ListSalesQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.saleQueries.List(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must not be after to", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.SaleResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSaleView(v)
	}

	c.JSON(http.StatusOK, response)
}

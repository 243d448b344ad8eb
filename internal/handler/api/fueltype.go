package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "fuel-station/internal/handler/dto/request"
	resdto "fuel-station/internal/handler/dto/response"
	"fuel-station/internal/handler/httperr"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"
	"fuel-station/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type FuelTypeHandler struct {
	fuelTypeCommands commands.FuelTypeCommands
	fuelTypeQueries  queries.FuelTypeQueries
}

func NewFuelTypeHandler(fuelTypeCommands commands.FuelTypeCommands, fuelTypeQueries queries.FuelTypeQueries) *FuelTypeHandler {
	return &FuelTypeHandler{
		fuelTypeCommands: fuelTypeCommands,
		fuelTypeQueries:  fuelTypeQueries,
	}
}

// @Summary Create fuel type
// @Description Register a new fuel type with its starting price and optional opening stock
// @Tags fuel-types
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFuelTypeRequest true "Fuel type to create"
// @Success 201 {object} resdto.FuelTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /fuel-types [post]
func (h *FuelTypeHandler) CreateFuelType(c *gin.Context) {
	var req reqdto.CreateFuelTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	price, stock, err := req.Decimals()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decimal value", nil)
		return
	}

	rec, err := h.fuelTypeCommands.CreateFuelType(c.Request.Context(), req.Name, price, stock)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrFuelTypeExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Fuel type with this name already exists", nil)
		case errors.Is(err, shared.ErrTxContention):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service busy, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFuelTypeRecord(rec))
}

// @Summary List fuel types
// @Description List all fuel types with their current price and stock
// @Tags fuel-types
// @Produce json
// @Success 200 {array} resdto.FuelTypeResponse
// @Router /fuel-types [get]
func (h *FuelTypeHandler) ListFuelTypes(c *gin.Context) {
	views, err := h.fuelTypeQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.FuelTypeResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromFuelTypeView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update fuel price
// @Description Set a new per-litre price, closing the current price interval and opening a new one
// @Tags fuel-types
// @Accept json
// @Produce json
// @Param id path int true "Fuel type ID"
// @Param request body reqdto.UpdatePriceRequest true "New price"
// @Success 200 {object} resdto.FuelTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /fuel-types/{id}/price [patch]
func (h *FuelTypeHandler) UpdatePrice(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fuel type ID format", nil)
		return
	}

	var req reqdto.UpdatePriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	price, err := req.Decimal()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decimal value", nil)
		return
	}

	rec, err := h.fuelTypeCommands.UpdatePrice(c.Request.Context(), id, price)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrFuelTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fuel type not found", nil)
		case errors.Is(err, shared.ErrTxContention):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service busy, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFuelTypeRecord(rec))
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

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

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Refill stock
// @Description Add litres to a fuel type's stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.RefillRequest true "Refill request"
// @Success 200 {object} resdto.FuelTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /inventory/refill [post]
func (h *InventoryHandler) Refill(c *gin.Context) {
	var req reqdto.RefillRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	litres, err := req.Decimal()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decimal value", nil)
		return
	}

	rec, err := h.inventoryCommands.Refill(c.Request.Context(), req.FuelTypeID, litres)
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

// @Summary Inventory snapshot
// @Description Current stock levels across all fuel types
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.InventoryItemResponse
// @Router /inventory [get]
func (h *InventoryHandler) Snapshot(c *gin.Context) {
	views, err := h.inventoryQueries.Snapshot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.InventoryItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromInventoryItemView(v)
	}

	c.JSON(http.StatusOK, response)
}

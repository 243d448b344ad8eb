package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fuel-station/internal/handler/api"
	"fuel-station/internal/handler/middleware"
	"fuel-station/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	fuelTypeHandler *api.FuelTypeHandler,
	inventoryHandler *api.InventoryHandler,
	saleHandler *api.SaleHandler,
	reportHandler *api.ReportHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, fuelTypeHandler, inventoryHandler, saleHandler, reportHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	fuelTypeHandler *api.FuelTypeHandler,
	inventoryHandler *api.InventoryHandler,
	saleHandler *api.SaleHandler,
	reportHandler *api.ReportHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		fuelTypes := apiGroup.Group("/fuel-types")
		{
			addRoutes(fuelTypes, []route{
				{Method: http.MethodPost, Path: "", Handler: fuelTypeHandler.CreateFuelType},
				{Method: http.MethodGet, Path: "", Handler: fuelTypeHandler.ListFuelTypes},
				{Method: http.MethodPatch, Path: "/:id/price", Handler: fuelTypeHandler.UpdatePrice},
			})
		}

		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: inventoryHandler.Snapshot},
				{Method: http.MethodPost, Path: "/refill", Handler: inventoryHandler.Refill},
			})
		}

		sales := apiGroup.Group("/sales")
		{
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "", Handler: saleHandler.RecordSale},
				{Method: http.MethodGet, Path: "", Handler: saleHandler.ListSales},
			})
		}

		reports := apiGroup.Group("/reports")
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/overview", Handler: reportHandler.Overview},
				{Method: http.MethodGet, Path: "/timeseries", Handler: reportHandler.Timeseries},
				{Method: http.MethodGet, Path: "/by-fuel-type", Handler: reportHandler.ByFuelType},
				{Method: http.MethodGet, Path: "/price-history/:id", Handler: reportHandler.PriceHistory},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

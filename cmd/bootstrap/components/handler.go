package components

import (
	"fuel-station/internal/handler"
	"fuel-station/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFuelTypeHandler,
		api.NewInventoryHandler,
		api.NewSaleHandler,
		api.NewReportHandler,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"fuel-station/internal/pkg/clock"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFuelTypeCommands,
		commands.NewInventoryCommands,
		commands.NewSaleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFuelTypeQueries,
		queries.NewInventoryQueries,
		queries.NewSaleQueries,
		queries.NewReportQueries,
	),
)

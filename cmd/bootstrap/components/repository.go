package components

import (
	"fuel-station/internal/infra/db"
	"fuel-station/internal/infra/readstore"
	repo_impl "fuel-station/internal/infra/repository"
	"fuel-station/internal/usecase/commands"
	"fuel-station/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repo_impl.NewFuelTypeRepository,
			fx.As(new(commands.FuelTypeRepository)),
		),
		fx.Annotate(
			repo_impl.NewPriceHistoryRepository,
			fx.As(new(commands.PriceHistoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewSaleRepository,
			fx.As(new(commands.SaleRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewFuelTypeReadStore,
			fx.As(new(queries.FuelTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

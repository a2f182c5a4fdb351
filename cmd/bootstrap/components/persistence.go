package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"tripslot/internal/infra/db"
	"tripslot/internal/infra/readstore"
	"tripslot/internal/infra/uow"
	"tripslot/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewExperienceReadStore,
			fx.As(new(queries.ExperienceViewRepo)),
		),
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(queries.PromoViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

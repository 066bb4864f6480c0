package components

import (
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/infra/readstore"
	"bookstore-api/internal/infra/repository"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(commands.BookRepository)),
			fx.As(new(commands.BookWriteRepository)),
		),
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(commands.PurchaseRepository)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PurchaseReadStore)),
			fx.As(new(queries.PurchaseEntitlementStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

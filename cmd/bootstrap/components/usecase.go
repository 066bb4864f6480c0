package components

import (
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookQueries,
		queries.NewPurchaseQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookCommands,
		commands.NewPurchaseCommands,
		func(authCommands commands.AuthCommands) commands.TokenValidator {
			return authCommands
		},
	),
)

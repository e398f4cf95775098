package components

import (
	"carmommy/internal/infra/readstore"
	repo_impl "carmommy/internal/infra/repository"
	"carmommy/internal/pkg/clock"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentLedger)),
		),
		fx.Annotate(
			repo_impl.NewCallRepository,
			fx.As(new(commands.CallWriteRepo)),
		),
		fx.Annotate(
			repo_impl.NewVideoRepository,
			fx.As(new(commands.VideoWriteRepo)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readstore.NewCallReadStore,
			fx.As(new(queries.CallViewRepo)),
		),
		fx.Annotate(
			readstore.NewVideoReadStore,
			fx.As(new(queries.VideoViewRepo)),
		),
	),
)

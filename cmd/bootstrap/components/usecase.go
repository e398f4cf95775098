package components

import (
	"carmommy/internal/pkg/config"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentUseCase,
		func(payments commands.PaymentCommands, vendor commands.VoiceVendor, calls commands.CallWriteRepo, cfg config.Config) commands.CallCommands {
			return commands.NewCallUseCase(payments, vendor, calls, cfg.Solana.MerchantAddress)
		},
		commands.NewWebhookUseCase,
		commands.NewQuoteUseCase,
		commands.NewVoiceUseCase,
		commands.NewVideoUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCallQueries,
		queries.NewListingQueries,
		queries.NewVoiceQueries,
		queries.NewVideoQueries,
	),
)

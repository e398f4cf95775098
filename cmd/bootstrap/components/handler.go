package components

import (
	"carmommy/internal/handler"
	"carmommy/internal/handler/api"
	"carmommy/internal/handler/webhook"
	"carmommy/internal/pkg/config"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewPaymentHandler,
		api.NewCallHandler,
		api.NewVoiceHandler,
		api.NewVideoHandler,
		api.NewEmailHandler,
		func(webhookCommands commands.WebhookCommands, quoteCommands commands.QuoteCommands, callQueries queries.CallQueries, cfg config.Config) *webhook.ElevenLabsHandler {
			return webhook.NewElevenLabsHandler(webhookCommands, quoteCommands, callQueries, cfg.ElevenLabs.WebhookSecret)
		},
	),
	fx.Invoke(handler.NewRouter),
)

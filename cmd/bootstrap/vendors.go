package bootstrap

import (
	"context"

	"carmommy/internal/infra/carfax"
	"carmommy/internal/infra/elevenlabs"
	"carmommy/internal/infra/gemini"
	"carmommy/internal/infra/solana"
	"carmommy/internal/pkg/config"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"go.uber.org/fx"
)

// VendorModule wires the external service clients behind their usecase ports.
var VendorModule = fx.Module("vendors",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *solana.Client {
				return solana.NewClient(cfg.Solana)
			},
			fx.As(new(commands.LedgerClient)),
		),
		fx.Annotate(
			func(cfg config.Config) *elevenlabs.Client {
				return elevenlabs.NewClient(cfg.ElevenLabs)
			},
			fx.As(new(commands.VoiceVendor)),
			fx.As(new(queries.VoiceDirectory)),
		),
		fx.Annotate(
			func(cfg config.Config) (*gemini.Extractor, error) {
				return gemini.NewExtractor(context.Background(), cfg.Gemini)
			},
			fx.As(new(commands.PriceExtractor)),
		),
		fx.Annotate(
			func(cfg config.Config) *carfax.Client {
				return carfax.NewClient(cfg.Carfax)
			},
			fx.As(new(queries.ListingSearcher)),
		),
	),
)

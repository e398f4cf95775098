package bootstrap

import (
	"carmommy/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	VendorModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

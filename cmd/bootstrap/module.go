package bootstrap

import (
	"go.uber.org/fx"

	"tripslot/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	JanitorModule,
)

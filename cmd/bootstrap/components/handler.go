package components

import (
	"go.uber.org/fx"

	"tripslot/internal/handler"
	"tripslot/internal/handler/api"
	"tripslot/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewExperienceHandler,
		api.NewPromoHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"payconnect/internal/handler"
	"payconnect/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		api.NewWebhookHandler,
	),
	fx.Invoke(handler.NewRouter),
)

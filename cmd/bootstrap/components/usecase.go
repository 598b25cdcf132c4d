package components

import (
	"payconnect/internal/pkg/config"
	"payconnect/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewPaymentCommands,
		func(
			cfg config.Config,
			sms commands.SMSGateway,
			orders commands.OrderStoreGateway,
			pending commands.PendingStore,
			window commands.SuppressionWindow,
		) commands.WebhookCommands {
			return commands.NewWebhookCommands(cfg.Moolre.WebhookSecret, sms, orders, pending, window)
		},
	),
)

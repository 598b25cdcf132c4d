package components

import (
	"payconnect/internal/infra/gateway"
	"payconnect/internal/pkg/config"
	"payconnect/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *gateway.MoolreClient { return gateway.NewMoolreClient(cfg.Moolre) },
			fx.As(new(commands.ProcessorGateway)),
		),
		fx.Annotate(
			func(cfg config.Config) *gateway.HubtelClient { return gateway.NewHubtelClient(cfg.Hubtel) },
			fx.As(new(commands.SMSGateway)),
		),
		fx.Annotate(
			func(cfg config.Config) *gateway.AirtableClient { return gateway.NewAirtableClient(cfg.Airtable) },
			fx.As(new(commands.OrderStoreGateway)),
		),
	),
)

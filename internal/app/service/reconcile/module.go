package reconcile

import (
	"go.uber.org/fx"

	"github.com/agrofono/checkout/internal/platform/mercadopago"
)

// Module exposes the reconciliation engine via Fx.
var Module = fx.Options(
	fx.Provide(
		mercadopago.NewClient,
		func(c *mercadopago.Client) Provider { return c },
		NewEngine,
	),
)

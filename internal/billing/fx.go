package billing

import (
	"github.com/vasavigrand/vgbilling/internal/billing/service"
	"github.com/vasavigrand/vgbilling/internal/tax"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	tax.Module,
	fx.Provide(service.NewCalculator),
)

package service

import (
	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
	"github.com/vasavigrand/vgbilling/internal/tax/domain"
)

type tableResolver struct {
	rates map[billingdomain.BillType]domain.Rate
}

// NewResolver returns the static rate table. Every bill type currently maps
// to the zero rate: GST is not charged yet, but downstream rendering prints
// the tax line, so the table stays in the computation path as the place a
// real rate will slot in.
func NewResolver() domain.Resolver {
	return &tableResolver{
		rates: map[billingdomain.BillType]domain.Rate{},
	}
}

func (r *tableResolver) RateFor(billType billingdomain.BillType) domain.Rate {
	return r.rates[billType]
}

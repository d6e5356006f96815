package domain

import (
	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
)

// Rate is a GST percentage applied to a bill subtotal. Rendered bills split
// it into equal CGST and SGST halves.
type Rate struct {
	Percent float64
}

func (r Rate) AmountOn(subtotal float64) float64 {
	return subtotal * r.Percent / 100
}

// Resolver looks up the rate for a bill type. The lookup must be a pure
// table read so the billing calculator stays deterministic.
type Resolver interface {
	RateFor(billType billingdomain.BillType) Rate
}

package domain

import (
	"context"

	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
)

type Service interface {
	// Preview recomputes the live summary; incomplete dates yield the zero
	// sentinel result, never an error.
	Preview(ctx context.Context, input billingdomain.BillingInput) billingdomain.BillingResult

	// Issue validates the request, computes the final figures, assigns the
	// next bill number and stamps the issue date/time.
	Issue(ctx context.Context, req IssueRequest) (*Bill, error)

	Get(ctx context.Context, number string) (*Bill, error)
	List(ctx context.Context) []*Bill

	ResetSequence(ctx context.Context) error
}

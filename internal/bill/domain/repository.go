package domain

import "context"

// SequenceGenerator owns the monotonically increasing bill counter. Next
// hands out the current value and advances; the first call ever returns 1.
// Reset rewinds to 1 and exists for the explicit administrative operation
// only.
type SequenceGenerator interface {
	Next(ctx context.Context) (int64, error)
	Reset(ctx context.Context) error
}

// Store is the session-scoped bill store. Nothing here survives a restart.
type Store interface {
	Save(bill *Bill)
	Get(number string) (*Bill, bool)
	GetByIdempotencyKey(key string) (*Bill, bool)
	SaveIdempotencyKey(key string, bill *Bill)
	List() []*Bill
}

// Renderer produces the downloadable document for an issued bill.
type Renderer interface {
	Render(bill *Bill) ([]byte, error)
}

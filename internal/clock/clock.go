package clock

import (
	"context"
	"time"
)

// Clock supplies the current instant to the bill-issuance path. The billing
// calculator never reads it; only issue stamping and the bill-number year do.
type Clock interface {
	Now(ctx context.Context) time.Time
}

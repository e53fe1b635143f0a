package risk

import (
	"context"

	"github.com/google/uuid"

	"risk-measures/internal/pricing"
)

// Request pairs a descriptor with the pricing context it must be evaluated in.
type Request struct {
	ID      uuid.UUID
	Measure Descriptor
	Context pricing.Context
}

// NewRequest resolves d's pricing context against ctx and stamps a fresh ID.
func NewRequest(ctx context.Context, d Descriptor) Request {
	return Request{
		ID:      uuid.New(),
		Measure: d,
		Context: d.PricingContext(ctx),
	}
}

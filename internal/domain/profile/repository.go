package profile

import (
	"context"

	"github.com/google/uuid"

	"qrforge/internal/domain/tier"
)

// Repository resolves an owner's subscription tier. Billing keeps the
// underlying column up to date; an owner without a profile is on the free tier.
type Repository interface {
	Tier(ctx context.Context, ownerID uuid.UUID) (tier.Tier, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/tier"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProfileRepository(pool *pgxpool.Pool, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		pool: pool,
		log:  log.With("component", "profile_repository"),
	}
}

// Tier returns the owner's tier. Owners without a profile, and profiles
// carrying a label this build does not know, are treated as free.
func (r *ProfileRepository) Tier(ctx context.Context, ownerID uuid.UUID) (tier.Tier, error) {
	const query = `SELECT subscription_tier FROM profiles WHERE id = $1`

	var label string
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&label); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tier.Free, nil
		}
		return "", fmt.Errorf("get subscription tier: %w", err)
	}

	t, err := tier.Parse(label)
	if err != nil {
		r.log.Warn("unknown subscription tier", "owner_id", ownerID, "tier", label)
		return tier.Free, nil
	}
	return t, nil
}

// SetTier upserts the owner's profile. Billing owns this in production;
// operators use it to move an account between plans by hand.
func (r *ProfileRepository) SetTier(ctx context.Context, ownerID uuid.UUID, t tier.Tier) error {
	const query = `
		INSERT INTO profiles (id, subscription_tier) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET subscription_tier = EXCLUDED.subscription_tier,
		                               updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, ownerID, string(t)); err != nil {
		return fmt.Errorf("set subscription tier: %w", err)
	}
	return nil
}

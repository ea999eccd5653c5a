package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/tier"
)

type ProfileRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewProfileRepository(db *sql.DB, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:  db,
		log: log.With("component", "profile_repository"),
	}
}

// Tier returns the owner's tier, free when there is no profile or the stored label is unknown.
func (r *ProfileRepository) Tier(ctx context.Context, ownerID uuid.UUID) (tier.Tier, error) {
	const query = `SELECT subscription_tier FROM profiles WHERE id = ?`

	var label string
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&label); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

// SetTier upserts the owner's profile.
func (r *ProfileRepository) SetTier(ctx context.Context, ownerID uuid.UUID, t tier.Tier) error {
	const query = `
		INSERT INTO profiles (id, subscription_tier) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET subscription_tier = excluded.subscription_tier,
		                               updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, ownerID, string(t)); err != nil {
		return fmt.Errorf("set subscription tier: %w", err)
	}
	return nil
}

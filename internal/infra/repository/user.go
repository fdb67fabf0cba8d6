package repository

import (
	"context"

	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// ApplyStatsDelta is an increment-style update: it composes with concurrent
// writers to the same user row, which an absolute overwrite would not.
func (r *UserRepository) ApplyStatsDelta(ctx context.Context, tx db.DBTX, id uuid.UUID, delta user.StatsDelta) error {
	if delta.IsZero() {
		return nil
	}

	const q = `
		UPDATE users
		SET transactions_completed = transactions_completed + $2,
		    money_saved_cents = money_saved_cents + $3,
		    money_earned_cents = money_earned_cents + $4
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, delta.Transactions, delta.MoneySavedCents, delta.MoneyEarnedCents)
	if err != nil {
		return infra.WrapDBErr("failed to apply user stats delta", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) SetStars(ctx context.Context, tx db.DBTX, id uuid.UUID, stars float64) error {
	const q = `UPDATE users SET stars = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, stars)
	if err != nil {
		return infra.WrapDBErr("failed to update user stars", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

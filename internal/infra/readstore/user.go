package readstore

import (
	"context"
	"errors"

	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

func (r *UserReadStore) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `
		SELECT id, name, email, is_email_verified, stars,
		       transactions_completed, money_saved_cents, money_earned_cents, push_token
		FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	err := tx.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.IsEmailVerified, &snap.Stars,
		&snap.TransactionsCompleted, &snap.MoneySavedCents, &snap.MoneyEarnedCents, &snap.PushToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to find user by id", err)
	}
	return &snap, nil
}

package repository

import (
	"context"
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, tx db.DBTX, l *listing.Listing) error {
	const q = `
		INSERT INTO listings (
			id, seller_id, seller_name, dining_hall, time_start, time_end,
			transaction_date, seller_rating, payment_types, price_cents, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, q,
		l.ID(), l.SellerID(), l.SellerName(), l.DiningHall(), l.TimeStart(), l.TimeEnd(),
		l.TransactionDate(), l.SellerRating(), l.PaymentTypes(), l.PriceCents(), l.Status().String(), l.CreatedAt(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to insert listing", err)
	}
	return nil
}

func (r *ListingRepository) MarkClaimed(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return r.setStatus(ctx, tx, id, listing.StatusClaimed)
}

func (r *ListingRepository) MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return r.setStatus(ctx, tx, id, listing.StatusCancelled)
}

func (r *ListingRepository) setStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status listing.Status) error {
	const q = `UPDATE listings SET status = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapDBErr("failed to update listing status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "listing not found", nil)
	}
	return nil
}

func (r *ListingRepository) ExpireBefore(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	const q = `
		UPDATE listings
		SET status = $1
		WHERE status = $2 AND transaction_date < $3`

	tag, err := tx.Exec(ctx, q, listing.StatusExpired.String(), listing.StatusActive.String(), cutoff)
	if err != nil {
		return 0, infra.WrapDBErr("failed to expire listings", err)
	}
	return tag.RowsAffected(), nil
}

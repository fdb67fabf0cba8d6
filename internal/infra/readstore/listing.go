package readstore

import (
	"context"
	"errors"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listingColumns = `
	id, seller_id, seller_name, dining_hall, time_start, time_end,
	transaction_date, seller_rating, payment_types, price_cents, status`

type ListingReadStore struct{}

func NewListingReadStore() *ListingReadStore {
	return &ListingReadStore{}
}

func (r *ListingReadStore) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.ListingSnapshot, error) {
	row := tx.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)

	snap, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "listing not found", err)
		}
		return nil, infra.WrapDBErr("failed to find listing by id", err)
	}
	return snap, nil
}

// FindActive returns the open feed: claimable listings, soonest first.
func (r *ListingReadStore) FindActive(ctx context.Context, tx db.DBTX) ([]shared.ListingSnapshot, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE status = $1 ORDER BY transaction_date`,
		listing.StatusActive.String(),
	)
	if err != nil {
		return nil, infra.WrapDBErr("failed to query active listings", err)
	}
	defer rows.Close()

	var out []shared.ListingSnapshot
	for rows.Next() {
		snap, err := scanListing(rows)
		if err != nil {
			return nil, infra.WrapDBErr("failed to scan listing row", err)
		}
		out = append(out, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate listing rows", err)
	}
	return out, nil
}

func scanListing(row pgx.Row) (*shared.ListingSnapshot, error) {
	var (
		snap   shared.ListingSnapshot
		status string
	)

	err := row.Scan(
		&snap.ID, &snap.SellerID, &snap.SellerName, &snap.DiningHall,
		&snap.TimeStart, &snap.TimeEnd, &snap.TransactionDate,
		&snap.SellerRating, &snap.PaymentTypes, &snap.PriceCents, &status,
	)
	if err != nil {
		return nil, err
	}

	snap.Status = listing.Status(status)
	return &snap, nil
}

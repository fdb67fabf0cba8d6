package readstore

import (
	"context"
	"errors"
	"time"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `
	id, seller_id, seller_name, seller_stars, buyer_id, buyer_name, buyer_stars,
	dining_hall, transaction_date, price_cents, status,
	seller_has_notifs, buyer_has_notifs, buyer_has_rated, seller_has_rated,
	rating_by_buyer_stars, rating_by_buyer_note, rating_by_buyer_at,
	rating_by_seller_stars, rating_by_seller_note, rating_by_seller_at,
	created_at`

type OrderReadStore struct{}

func NewOrderReadStore() *OrderReadStore {
	return &OrderReadStore{}
}

func (r *OrderReadStore) FindByID(ctx context.Context, tx db.DBTX, id string) (*shared.OrderSnapshot, error) {
	row := tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	snap, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapDBErr("failed to find order by id", err)
	}
	return snap, nil
}

func (r *OrderReadStore) FindActiveBefore(ctx context.Context, tx db.DBTX, cutoff time.Time) ([]shared.OrderSnapshot, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 AND transaction_date < $2 ORDER BY transaction_date`,
		order.StatusActive.String(), cutoff,
	)
	if err != nil {
		return nil, infra.WrapDBErr("failed to query active orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderReadStore) FindByParticipant(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]shared.OrderSnapshot, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 OR buyer_id = $1 ORDER BY transaction_date DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapDBErr("failed to query orders by participant", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// CountUnread returns the badge value: active orders where the user's side
// of the notif flag is raised. Completed and cancelled orders never count.
func (r *OrderReadStore) CountUnread(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int, error) {
	const q = `
		SELECT count(*) FROM orders
		WHERE status = $2
		  AND ((buyer_id = $1 AND buyer_has_notifs) OR (seller_id = $1 AND seller_has_notifs))`

	var n int
	if err := tx.QueryRow(ctx, q, userID, order.StatusActive.String()).Scan(&n); err != nil {
		return 0, infra.WrapDBErr("failed to count unread orders", err)
	}
	return n, nil
}

func collectOrders(rows pgx.Rows) ([]shared.OrderSnapshot, error) {
	var out []shared.OrderSnapshot
	for rows.Next() {
		snap, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapDBErr("failed to scan order row", err)
		}
		out = append(out, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate order rows", err)
	}
	return out, nil
}

func scanOrder(row pgx.Row) (*shared.OrderSnapshot, error) {
	var (
		snap        shared.OrderSnapshot
		status      string
		buyerStars  *int
		buyerNote   *string
		buyerAt     *time.Time
		sellerStars *int
		sellerNote  *string
		sellerAt    *time.Time
	)

	err := row.Scan(
		&snap.ID, &snap.SellerID, &snap.SellerName, &snap.SellerStars,
		&snap.BuyerID, &snap.BuyerName, &snap.BuyerStars,
		&snap.DiningHall, &snap.TransactionDate, &snap.PriceCents, &status,
		&snap.SellerHasNotifs, &snap.BuyerHasNotifs, &snap.BuyerHasRated, &snap.SellerHasRated,
		&buyerStars, &buyerNote, &buyerAt,
		&sellerStars, &sellerNote, &sellerAt,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.Status = order.Status(status)
	if buyerStars != nil && buyerAt != nil {
		snap.RatingByBuyer = &order.Rating{Stars: *buyerStars, Note: buyerNote, RatedAt: *buyerAt}
	}
	if sellerStars != nil && sellerAt != nil {
		snap.RatingBySeller = &order.Rating{Stars: *sellerStars, Note: sellerNote, RatedAt: *sellerAt}
	}
	return &snap, nil
}

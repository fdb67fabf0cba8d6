package repository

import (
	"context"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	const q = `
		INSERT INTO orders (
			id, seller_id, seller_name, seller_stars, buyer_id, buyer_name, buyer_stars,
			dining_hall, transaction_date, price_cents, status,
			seller_has_notifs, buyer_has_notifs, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, q,
		o.ID(), o.SellerID(), o.SellerName(), o.SellerStars(), o.BuyerID(), o.BuyerName(), o.BuyerStars(),
		o.DiningHall(), o.TransactionDate(), o.PriceCents(), o.Status().String(),
		o.SellerHasNotifs(), o.BuyerHasNotifs(), o.CreatedAt(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) MarkCompleted(ctx context.Context, tx db.DBTX, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	const q = `UPDATE orders SET status = $1 WHERE id = ANY($2)`

	_, err := tx.Exec(ctx, q, order.StatusCompleted.String(), ids)
	if err != nil {
		return infra.WrapDBErr("failed to mark orders completed", err)
	}
	return nil
}

func (r *OrderRepository) SetRating(ctx context.Context, tx db.DBTX, orderID string, side order.Side, rating order.Rating) error {
	// The has-rated flag and the rating payload move together; the flag,
	// not the payload, is what duplicate detection keys on.
	var q string
	switch side {
	case order.SideBuyer:
		q = `
			UPDATE orders
			SET rating_by_buyer_stars = $2,
			    rating_by_buyer_note = $3,
			    rating_by_buyer_at = $4,
			    buyer_has_rated = TRUE
			WHERE id = $1`
	case order.SideSeller:
		q = `
			UPDATE orders
			SET rating_by_seller_stars = $2,
			    rating_by_seller_note = $3,
			    rating_by_seller_at = $4,
			    seller_has_rated = TRUE
			WHERE id = $1`
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, "unknown order side", nil)
	}

	tag, err := tx.Exec(ctx, q, orderID, rating.Stars, rating.Note, rating.RatedAt)
	if err != nil {
		return infra.WrapDBErr("failed to set order rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

func (r *OrderRepository) SetNotified(ctx context.Context, tx db.DBTX, orderID string, side order.Side) error {
	var q string
	switch side {
	case order.SideBuyer:
		q = `UPDATE orders SET buyer_has_notifs = TRUE WHERE id = $1`
	case order.SideSeller:
		q = `UPDATE orders SET seller_has_notifs = TRUE WHERE id = $1`
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, "unknown order side", nil)
	}

	tag, err := tx.Exec(ctx, q, orderID)
	if err != nil {
		return infra.WrapDBErr("failed to set order notified flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

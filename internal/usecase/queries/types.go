package queries

import (
	"context"
	"time"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read-store ports. Implemented by internal/infra/readstore.
type ListingReadStore interface {
	FindActive(ctx context.Context, tx db.DBTX) ([]shared.ListingSnapshot, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, tx db.DBTX, id string) (*shared.OrderSnapshot, error)
	FindByParticipant(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]shared.OrderSnapshot, error)
	CountUnread(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int, error)
}

type ListingView struct {
	ID              uuid.UUID
	SellerID        uuid.UUID
	SellerName      string
	DiningHall      string
	TimeStart       int
	TimeEnd         int
	TransactionDate time.Time
	SellerRating    float64
	PaymentTypes    []string
	PriceCents      *int64
	Status          string
}

type RatingView struct {
	Stars   int
	Note    *string
	RatedAt time.Time
}

type OrderView struct {
	ID              string
	SellerID        uuid.UUID
	SellerName      string
	SellerStars     float64
	BuyerID         uuid.UUID
	BuyerName       string
	BuyerStars      float64
	DiningHall      string
	TransactionDate time.Time
	PriceCents      int64
	Status          string
	BuyerHasRated   bool
	SellerHasRated  bool
	RatingByBuyer   *RatingView
	RatingBySeller  *RatingView
	CreatedAt       time.Time
}

func toListingView(s shared.ListingSnapshot) *ListingView {
	return &ListingView{
		ID:              s.ID,
		SellerID:        s.SellerID,
		SellerName:      s.SellerName,
		DiningHall:      s.DiningHall,
		TimeStart:       s.TimeStart,
		TimeEnd:         s.TimeEnd,
		TransactionDate: s.TransactionDate,
		SellerRating:    s.SellerRating,
		PaymentTypes:    s.PaymentTypes,
		PriceCents:      s.PriceCents,
		Status:          s.Status.String(),
	}
}

func toOrderView(s shared.OrderSnapshot) *OrderView {
	return &OrderView{
		ID:              s.ID,
		SellerID:        s.SellerID,
		SellerName:      s.SellerName,
		SellerStars:     s.SellerStars,
		BuyerID:         s.BuyerID,
		BuyerName:       s.BuyerName,
		BuyerStars:      s.BuyerStars,
		DiningHall:      s.DiningHall,
		TransactionDate: s.TransactionDate,
		PriceCents:      s.PriceCents,
		Status:          s.Status.String(),
		BuyerHasRated:   s.BuyerHasRated,
		SellerHasRated:  s.SellerHasRated,
		RatingByBuyer:   toRatingView(s.RatingByBuyer),
		RatingBySeller:  toRatingView(s.RatingBySeller),
		CreatedAt:       s.CreatedAt,
	}
}

func toRatingView(r *order.Rating) *RatingView {
	if r == nil {
		return nil
	}
	return &RatingView{Stars: r.Stars, Note: r.Note, RatedAt: r.RatedAt}
}

package response

import (
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/queries"
	"swipemarket/internal/usecase/shared"
)

type RatingResponse struct {
	Stars   int     `json:"stars"`
	Note    *string `json:"note,omitempty"`
	RatedAt int64   `json:"rated_at"`
}

type OrderResponse struct {
	ID              string          `json:"id"`
	SellerID        string          `json:"seller_id"`
	SellerName      string          `json:"seller_name"`
	SellerStars     float64         `json:"seller_stars"`
	BuyerID         string          `json:"buyer_id"`
	BuyerName       string          `json:"buyer_name"`
	BuyerStars      float64         `json:"buyer_stars"`
	DiningHall      string          `json:"dining_hall"`
	TransactionDate int64           `json:"transaction_date"`
	PriceCents      int64           `json:"price_cents"`
	Status          string          `json:"status"`
	BuyerHasRated   bool            `json:"buyer_has_rated"`
	SellerHasRated  bool            `json:"seller_has_rated"`
	RatingByBuyer   *RatingResponse `json:"rating_by_buyer,omitempty"`
	RatingBySeller  *RatingResponse `json:"rating_by_seller,omitempty"`
	CreatedAt       int64           `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:              v.ID,
		SellerID:        v.SellerID.String(),
		SellerName:      v.SellerName,
		SellerStars:     v.SellerStars,
		BuyerID:         v.BuyerID.String(),
		BuyerName:       v.BuyerName,
		BuyerStars:      v.BuyerStars,
		DiningHall:      v.DiningHall,
		TransactionDate: v.TransactionDate.UnixMilli(),
		PriceCents:      v.PriceCents,
		Status:          v.Status,
		BuyerHasRated:   v.BuyerHasRated,
		SellerHasRated:  v.SellerHasRated,
		RatingByBuyer:   fromRatingView(v.RatingByBuyer),
		RatingBySeller:  fromRatingView(v.RatingBySeller),
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

func FromOrderList(items []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderView(it)
	}
	return res
}

func FromOrderSnapshot(s *shared.OrderSnapshot) *OrderResponse {
	return &OrderResponse{
		ID:              s.ID,
		SellerID:        s.SellerID.String(),
		SellerName:      s.SellerName,
		SellerStars:     s.SellerStars,
		BuyerID:         s.BuyerID.String(),
		BuyerName:       s.BuyerName,
		BuyerStars:      s.BuyerStars,
		DiningHall:      s.DiningHall,
		TransactionDate: s.TransactionDate.UnixMilli(),
		PriceCents:      s.PriceCents,
		Status:          s.Status.String(),
		BuyerHasRated:   s.BuyerHasRated,
		SellerHasRated:  s.SellerHasRated,
		CreatedAt:       s.CreatedAt.Unix(),
	}
}

func fromRatingView(r *queries.RatingView) *RatingResponse {
	if r == nil {
		return nil
	}
	return &RatingResponse{Stars: r.Stars, Note: r.Note, RatedAt: r.RatedAt.Unix()}
}

type RateOrderResponse struct {
	RatedUserID string  `json:"rated_user_id"`
	NewStars    float64 `json:"new_stars"`
}

func FromRateResult(r *commands.RateResult) *RateOrderResponse {
	return &RateOrderResponse{
		RatedUserID: r.RatedUserID.String(),
		NewStars:    r.NewStars,
	}
}

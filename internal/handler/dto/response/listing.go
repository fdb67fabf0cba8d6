package response

import (
	"swipemarket/internal/usecase/queries"
	"swipemarket/internal/usecase/shared"
)

type ListingResponse struct {
	ID              string   `json:"id"`
	SellerID        string   `json:"seller_id"`
	SellerName      string   `json:"seller_name"`
	DiningHall      string   `json:"dining_hall"`
	TimeStart       int      `json:"time_start"`
	TimeEnd         int      `json:"time_end"`
	TransactionDate int64    `json:"transaction_date"`
	SellerRating    float64  `json:"seller_rating"`
	PaymentTypes    []string `json:"payment_types"`
	PriceCents      *int64   `json:"price_cents,omitempty"`
	Status          string   `json:"status"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:              v.ID.String(),
		SellerID:        v.SellerID.String(),
		SellerName:      v.SellerName,
		DiningHall:      v.DiningHall,
		TimeStart:       v.TimeStart,
		TimeEnd:         v.TimeEnd,
		TransactionDate: v.TransactionDate.UnixMilli(),
		SellerRating:    v.SellerRating,
		PaymentTypes:    v.PaymentTypes,
		PriceCents:      v.PriceCents,
		Status:          v.Status,
	}
}

func FromListingList(items []*queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(items))
	for i, it := range items {
		res[i] = FromListingView(it)
	}
	return res
}

func FromListingSnapshot(s *shared.ListingSnapshot) *ListingResponse {
	return &ListingResponse{
		ID:              s.ID.String(),
		SellerID:        s.SellerID.String(),
		SellerName:      s.SellerName,
		DiningHall:      s.DiningHall,
		TimeStart:       s.TimeStart,
		TimeEnd:         s.TimeEnd,
		TransactionDate: s.TransactionDate.UnixMilli(),
		SellerRating:    s.SellerRating,
		PaymentTypes:    s.PaymentTypes,
		PriceCents:      s.PriceCents,
		Status:          s.Status.String(),
	}
}

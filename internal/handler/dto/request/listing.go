package request

import (
	"time"

	"swipemarket/internal/usecase/commands"
)

type CreateListingRequest struct {
	DiningHall      string   `json:"dining_hall" binding:"required,max=100"`
	TimeStart       int      `json:"time_start" binding:"min=0,max=1440"`
	TimeEnd         int      `json:"time_end" binding:"required,min=1,max=1440"`
	TransactionDate int64    `json:"transaction_date" binding:"required"`
	PaymentTypes    []string `json:"payment_types" binding:"required,min=1"`
	PriceCents      *int64   `json:"price_cents" binding:"omitempty,min=0"`
}

func (r *CreateListingRequest) ToParams() commands.CreateListingParams {
	return commands.CreateListingParams{
		DiningHall:      r.DiningHall,
		TimeStart:       r.TimeStart,
		TimeEnd:         r.TimeEnd,
		TransactionDate: time.UnixMilli(r.TransactionDate).UTC(),
		PaymentTypes:    r.PaymentTypes,
		PriceCents:      r.PriceCents,
	}
}

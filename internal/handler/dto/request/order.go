package request

import (
	"github.com/google/uuid"
)

type ClaimListingRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}

type RateOrderRequest struct {
	Stars int     `json:"stars" binding:"required,min=1,max=5"`
	Note  *string `json:"note" binding:"omitempty,max=500"`
}

package order

import (
	"time"

	"swipemarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStars   = errs.New("stars must be an integer between 1 and 5")
	ErrNotParticipant = errs.New("user is not a participant of this order")
)

// Rating is a value object embedded in the order that carries it; it is
// never stored on its own.
type Rating struct {
	Stars   int
	Note    *string
	RatedAt time.Time
}

func NewRating(stars int, note *string, now time.Time) (Rating, error) {
	if stars < 1 || stars > 5 {
		return Rating{}, ErrInvalidStars
	}
	return Rating{Stars: stars, Note: note, RatedAt: now}, nil
}

// Order pairs a buyer with a seller once a listing is claimed. Seller and
// buyer names and star ratings are copied at claim time and deliberately
// never re-synced against the live user records.
type Order struct {
	id              string
	sellerID        uuid.UUID
	sellerName      string
	sellerStars     float64
	buyerID         uuid.UUID
	buyerName       string
	buyerStars      float64
	diningHall      string
	transactionDate time.Time
	priceCents      int64
	status          Status
	sellerHasNotifs bool
	buyerHasNotifs  bool
	createdAt       time.Time
}

// ClaimInput carries the point-in-time snapshot an order is built from.
type ClaimInput struct {
	SellerID        uuid.UUID
	SellerName      string
	SellerStars     float64
	BuyerID         uuid.UUID
	BuyerName       string
	BuyerStars      float64
	DiningHall      string
	TransactionDate time.Time
	PriceCents      int64
}

// NewFromClaim builds the order created by a listing claim. Both notif
// flags start true so the first client fetch surfaces the new order.
func NewFromClaim(in ClaimInput, now time.Time) *Order {
	return &Order{
		id:              DeriveID(in.SellerID, in.BuyerID, in.TransactionDate),
		sellerID:        in.SellerID,
		sellerName:      in.SellerName,
		sellerStars:     in.SellerStars,
		buyerID:         in.BuyerID,
		buyerName:       in.BuyerName,
		buyerStars:      in.BuyerStars,
		diningHall:      in.DiningHall,
		transactionDate: in.TransactionDate,
		priceCents:      in.PriceCents,
		status:          StatusActive,
		sellerHasNotifs: true,
		buyerHasNotifs:  true,
		createdAt:       now,
	}
}

func (o *Order) ID() string                 { return o.id }
func (o *Order) SellerID() uuid.UUID        { return o.sellerID }
func (o *Order) SellerName() string         { return o.sellerName }
func (o *Order) SellerStars() float64       { return o.sellerStars }
func (o *Order) BuyerID() uuid.UUID         { return o.buyerID }
func (o *Order) BuyerName() string          { return o.buyerName }
func (o *Order) BuyerStars() float64        { return o.buyerStars }
func (o *Order) DiningHall() string         { return o.diningHall }
func (o *Order) TransactionDate() time.Time { return o.transactionDate }
func (o *Order) PriceCents() int64          { return o.priceCents }
func (o *Order) Status() Status             { return o.status }
func (o *Order) SellerHasNotifs() bool      { return o.sellerHasNotifs }
func (o *Order) BuyerHasNotifs() bool       { return o.buyerHasNotifs }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }

// SideOf returns which side of the order userID is on.
func SideOf(sellerID, buyerID, userID uuid.UUID) (Side, bool) {
	switch userID {
	case sellerID:
		return SideSeller, true
	case buyerID:
		return SideBuyer, true
	default:
		return "", false
	}
}

// RatedParty resolves who receives a rating submitted by rater: the
// participant on the other side of the order.
func RatedParty(sellerID, buyerID, rater uuid.UUID) (uuid.UUID, Side, error) {
	side, ok := SideOf(sellerID, buyerID, rater)
	if !ok {
		return uuid.Nil, "", ErrNotParticipant
	}
	if side == SideBuyer {
		return sellerID, SideBuyer, nil
	}
	return buyerID, SideSeller, nil
}

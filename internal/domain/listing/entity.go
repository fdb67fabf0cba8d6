package listing

import (
	"strings"
	"time"

	"swipemarket/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyDiningHall    = errs.New("dining hall is required")
	ErrInvalidTimeWindow  = errs.New("time window is invalid")
	ErrNoPaymentTypes     = errs.New("at least one payment type is required")
	ErrNegativePrice      = errs.New("price cannot be negative")
	ErrZeroTransactionDate = errs.New("transaction date is required")
)

// Listing is a seller's advertised swipe. It is created in the active state
// and leaves it exactly once: claimed by a buyer, cancelled by the seller,
// or expired by the lifecycle job.
type Listing struct {
	id              uuid.UUID
	sellerID        uuid.UUID
	sellerName      string
	diningHall      string
	timeStart       int
	timeEnd         int
	transactionDate time.Time
	sellerRating    float64
	paymentTypes    []string
	priceCents      *int64
	status          Status
	createdAt       time.Time
}

func NewListing(
	sellerID uuid.UUID,
	sellerName string,
	diningHall string,
	timeStart, timeEnd int,
	transactionDate time.Time,
	sellerRating float64,
	paymentTypes []string,
	priceCents *int64,
	now time.Time,
) (*Listing, error) {
	if strings.TrimSpace(diningHall) == "" {
		return nil, ErrEmptyDiningHall
	}
	if timeStart < 0 || timeEnd > MinutesPerDay || timeStart >= timeEnd {
		return nil, ErrInvalidTimeWindow
	}
	if transactionDate.IsZero() {
		return nil, ErrZeroTransactionDate
	}
	if len(paymentTypes) == 0 {
		return nil, ErrNoPaymentTypes
	}
	if priceCents != nil && *priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Listing{
		id:              uuid.New(),
		sellerID:        sellerID,
		sellerName:      sellerName,
		diningHall:      strings.TrimSpace(diningHall),
		timeStart:       timeStart,
		timeEnd:         timeEnd,
		transactionDate: transactionDate,
		sellerRating:    sellerRating,
		paymentTypes:    paymentTypes,
		priceCents:      priceCents,
		status:          StatusActive,
		createdAt:       now,
	}, nil
}

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) SellerID() uuid.UUID        { return l.sellerID }
func (l *Listing) SellerName() string         { return l.sellerName }
func (l *Listing) DiningHall() string         { return l.diningHall }
func (l *Listing) TimeStart() int             { return l.timeStart }
func (l *Listing) TimeEnd() int               { return l.timeEnd }
func (l *Listing) TransactionDate() time.Time { return l.transactionDate }
func (l *Listing) SellerRating() float64      { return l.sellerRating }
func (l *Listing) PaymentTypes() []string     { return l.paymentTypes }
func (l *Listing) PriceCents() *int64         { return l.priceCents }
func (l *Listing) Status() Status             { return l.status }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }

// Claimable reports whether a listing in the given status may still be
// claimed. Once a listing leaves active it can never be claimed again.
func Claimable(s Status) bool {
	return s == StatusActive
}

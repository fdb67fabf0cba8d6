package shared

import (
	"context"
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/order"
	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the core's record-store contract. Within runs fn as one
// atomic transaction, transparently retried on optimistic-concurrency
// conflicts, so fn must be side-effect free outside its Tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// Reads: non-transactional snapshot reads for best-effort paths
	Reads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Orders() OrderRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads is the transactional read view commands validate against.
// When obtained from a Tx, every read joins the transaction's read set.
type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	OrderByID(ctx context.Context, id string) (*OrderSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ActiveOrdersBefore(ctx context.Context, cutoff time.Time) ([]OrderSnapshot, error)
}

type ListingSnapshot struct {
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
	Status          listing.Status
}

type OrderSnapshot struct {
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
	Status          order.Status
	SellerHasNotifs bool
	BuyerHasNotifs  bool
	BuyerHasRated   bool
	SellerHasRated  bool
	RatingByBuyer   *order.Rating
	RatingBySeller  *order.Rating
	CreatedAt       time.Time
}

type UserSnapshot struct {
	ID                    uuid.UUID
	Name                  string
	Email                 string
	IsEmailVerified       bool
	// Stars is nil until the user receives a first rating.
	Stars                 *float64
	TransactionsCompleted int64
	MoneySavedCents       int64
	MoneyEarnedCents      int64
	PushToken             *string
}

type ListingRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *listing.Listing) error
	MarkClaimed(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ExpireBefore flips every still-active listing dated strictly before
	// cutoff to expired and reports how many rows changed.
	ExpireBefore(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	MarkCompleted(ctx context.Context, tx db.DBTX, ids []string) error
	// SetRating embeds the rating on the given side and raises that side's
	// has-rated flag in the same statement.
	SetRating(ctx context.Context, tx db.DBTX, orderID string, side order.Side, r order.Rating) error
	SetNotified(ctx context.Context, tx db.DBTX, orderID string, side order.Side) error
}

type UserRepository interface {
	// ApplyStatsDelta increments the user's counters commutatively so
	// concurrent writers to the same row compose instead of overwriting.
	ApplyStatsDelta(ctx context.Context, tx db.DBTX, id uuid.UUID, delta user.StatsDelta) error
	SetStars(ctx context.Context, tx db.DBTX, id uuid.UUID, stars float64) error
}

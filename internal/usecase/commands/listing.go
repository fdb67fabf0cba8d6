package commands

import (
	"context"
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/pkg/errs"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotListingOwner = errs.New("listing is not owned by this user")

type CreateListingParams struct {
	DiningHall      string
	TimeStart       int
	TimeEnd         int
	TransactionDate time.Time
	PaymentTypes    []string
	PriceCents      *int64
}

type ListingCommands interface {
	// Create publishes a new active listing carrying a snapshot of the
	// seller's current name and rating.
	Create(ctx context.Context, sellerID uuid.UUID, params CreateListingParams) (*shared.ListingSnapshot, error)
	// Cancel withdraws a still-active listing; the seller only.
	Cancel(ctx context.Context, listingID, sellerID uuid.UUID) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk}
}

func (c *listingCommandsImpl) Create(ctx context.Context, sellerID uuid.UUID, params CreateListingParams) (*shared.ListingSnapshot, error) {
	var created *listing.Listing

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil

		seller, err := tx.Reads().UserByID(ctx, sellerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSellerNotFound
			}
			return err
		}
		if !seller.IsEmailVerified {
			return ErrEmailNotVerified
		}

		created, err = listing.NewListing(
			sellerID,
			seller.Name,
			params.DiningHall,
			params.TimeStart, params.TimeEnd,
			params.TransactionDate,
			user.StarsOrDefault(seller.Stars),
			params.PaymentTypes,
			params.PriceCents,
			c.clock.Now(),
		)
		if err != nil {
			return err
		}
		return tx.Listings().Create(ctx, tx.DB(), created)
	})
	if err != nil {
		return nil, err
	}

	return listingSnapshot(created), nil
}

func (c *listingCommandsImpl) Cancel(ctx context.Context, listingID, sellerID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, err := tx.Reads().ListingByID(ctx, listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		if lst.SellerID != sellerID {
			return ErrNotListingOwner
		}
		if !listing.Claimable(lst.Status) {
			return ErrListingNotActive
		}
		return tx.Listings().MarkCancelled(ctx, tx.DB(), listingID)
	})
}

func listingSnapshot(l *listing.Listing) *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:              l.ID(),
		SellerID:        l.SellerID(),
		SellerName:      l.SellerName(),
		DiningHall:      l.DiningHall(),
		TimeStart:       l.TimeStart(),
		TimeEnd:         l.TimeEnd(),
		TransactionDate: l.TransactionDate(),
		SellerRating:    l.SellerRating(),
		PaymentTypes:    l.PaymentTypes(),
		PriceCents:      l.PriceCents(),
		Status:          l.Status(),
	}
}

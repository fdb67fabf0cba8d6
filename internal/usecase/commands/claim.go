package commands

import (
	"context"
	"log/slog"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/order"
	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/pkg/errs"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBuyerNotFound      = errs.New("buyer not found")
	ErrSellerNotFound     = errs.New("seller not found")
	ErrListingNotFound    = errs.New("listing not found")
	ErrEmailNotVerified   = errs.New("email must be verified to claim a listing")
	ErrListingNotActive   = errs.New("listing is no longer active")
	ErrOrderAlreadyExists = errs.New("order already exists for this claim")
)

// Notifier is the post-commit push fan-out hook. Failures here never fail
// the claim; they are logged and dropped.
type Notifier interface {
	OrderClaimed(ctx context.Context, orderID string) error
}

type OrderCommands interface {
	// Claim converts an active listing into a new order, atomically:
	// exactly one order insert plus one listing update, or nothing.
	Claim(ctx context.Context, listingID, buyerID uuid.UUID) (*shared.OrderSnapshot, error)
	// Rate folds a star rating into the other participant's running
	// average, at most once per side per order.
	Rate(ctx context.Context, orderID string, raterID uuid.UUID, stars int, note *string) (*RateResult, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, notifier Notifier) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk, notifier: notifier}
}

func (c *orderCommandsImpl) Claim(ctx context.Context, listingID, buyerID uuid.UUID) (*shared.OrderSnapshot, error) {
	var created *order.Order

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The store may re-run this body on conflict; reset per attempt.
		created = nil

		buyer, err := tx.Reads().UserByID(ctx, buyerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBuyerNotFound
			}
			return err
		}
		if !buyer.IsEmailVerified {
			return ErrEmailNotVerified
		}

		lst, err := tx.Reads().ListingByID(ctx, listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		if !listing.Claimable(lst.Status) {
			return ErrListingNotActive
		}

		seller, err := tx.Reads().UserByID(ctx, lst.SellerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSellerNotFound
			}
			return err
		}

		// Deterministic identity makes the double-claim guard an existence
		// check inside the transaction's read set: a racing claim either
		// sees the order or conflicts at commit and retries into seeing it.
		orderID := order.DeriveID(lst.SellerID, buyerID, lst.TransactionDate)
		if _, err := tx.Reads().OrderByID(ctx, orderID); err == nil {
			return ErrOrderAlreadyExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		var price int64
		if lst.PriceCents != nil {
			price = *lst.PriceCents
		}

		created = order.NewFromClaim(order.ClaimInput{
			SellerID:        lst.SellerID,
			SellerName:      lst.SellerName,
			SellerStars:     user.StarsOrDefault(seller.Stars),
			BuyerID:         buyerID,
			BuyerName:       buyer.Name,
			BuyerStars:      user.StarsOrDefault(buyer.Stars),
			DiningHall:      lst.DiningHall,
			TransactionDate: lst.TransactionDate,
			PriceCents:      price,
		}, c.clock.Now())

		if err := tx.Orders().Create(ctx, tx.DB(), created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrOrderAlreadyExists
			}
			return err
		}
		return tx.Listings().MarkClaimed(ctx, tx.DB(), listingID)
	})
	if err != nil {
		return nil, err
	}

	if c.notifier != nil {
		if nerr := c.notifier.OrderClaimed(ctx, created.ID()); nerr != nil {
			slog.Warn("failed to enqueue claim notification",
				"order_id", created.ID(), "error", nerr.Error())
		}
	}

	return orderSnapshot(created), nil
}

func orderSnapshot(o *order.Order) *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:              o.ID(),
		SellerID:        o.SellerID(),
		SellerName:      o.SellerName(),
		SellerStars:     o.SellerStars(),
		BuyerID:         o.BuyerID(),
		BuyerName:       o.BuyerName(),
		BuyerStars:      o.BuyerStars(),
		DiningHall:      o.DiningHall(),
		TransactionDate: o.TransactionDate(),
		PriceCents:      o.PriceCents(),
		Status:          o.Status(),
		SellerHasNotifs: o.SellerHasNotifs(),
		BuyerHasNotifs:  o.BuyerHasNotifs(),
		CreatedAt:       o.CreatedAt(),
	}
}

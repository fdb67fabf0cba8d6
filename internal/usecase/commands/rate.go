package commands

import (
	"context"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra"
	"swipemarket/internal/pkg/errs"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrRatedUserNotFound = errs.New("rated user not found")
	ErrAlreadyRated      = errs.New("order already rated by this participant")
)

type RateResult struct {
	RatedUserID uuid.UUID
	NewStars    float64
}

func (c *orderCommandsImpl) Rate(ctx context.Context, orderID string, raterID uuid.UUID, stars int, note *string) (*RateResult, error) {
	rating, err := order.NewRating(stars, note, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var result *RateResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		snap, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		ratedID, raterSide, err := order.RatedParty(snap.SellerID, snap.BuyerID, raterID)
		if err != nil {
			return err
		}

		// The has_rated flag, not the rating payload, is the duplicate guard.
		hasRated := snap.SellerHasRated
		if raterSide == order.SideBuyer {
			hasRated = snap.BuyerHasRated
		}
		if hasRated {
			return ErrAlreadyRated
		}

		rated, err := tx.Reads().UserByID(ctx, ratedID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRatedUserNotFound
			}
			return err
		}

		// The completed-transaction count is the weight; it is owned by the
		// lifecycle job and never bumped here.
		newStars := user.NextStars(user.StarsOrDefault(rated.Stars), rated.TransactionsCompleted, stars)

		if err := tx.Users().SetStars(ctx, tx.DB(), ratedID, newStars); err != nil {
			return err
		}
		if err := tx.Orders().SetRating(ctx, tx.DB(), orderID, raterSide, rating); err != nil {
			return err
		}

		result = &RateResult{RatedUserID: ratedID, NewStars: newStars}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package auction

import (
	"fmt"
	"time"

	"auction-portal/internal/auctionerrors"
	model "auction-portal/internal/models"
	"auction-portal/internal/repository"
	"auction-portal/utils"

	"github.com/shopspring/decimal"
)

// Admission validates and admits a single bid against the auction state.
// Preconditions are checked fail-fast; the first failing check is the
// reported error. The compare-then-write against the tracked highest amount
// is not safe to run concurrently for one auction, so callers must hold the
// coordinator's per-auction lock.
type Admission struct {
	store repository.EntityStore
}

// NewAdmission creates an Admission controller over the given store
func NewAdmission(store repository.EntityStore) *Admission {
	return &Admission{store: store}
}

// Admit runs the precondition chain and, on success, persists the bid with a
// pending status and bumps the auction's tracked highest amount.
func (a *Admission) Admit(auctionID, teamID, userID, playerID string, amount decimal.Decimal) (model.Bid, error) {
	auction, err := a.store.GetAuction(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("admit bid: %w", err)
	}
	if auction.Status != model.StatusPending {
		return model.Bid{}, fmt.Errorf("admit bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	if amount.Sign() <= 0 {
		return model.Bid{}, fmt.Errorf("admit bid: %w", auctionerrors.ErrInvalidAmount)
	}

	if _, err := a.store.GetTeam(teamID); err != nil {
		return model.Bid{}, fmt.Errorf("admit bid: %w", err)
	}
	if _, err := a.store.GetUser(userID); err != nil {
		return model.Bid{}, fmt.Errorf("admit bid: %w", err)
	}

	// Strict increase over the tracked highest (the reserve until a first
	// bid is admitted).
	if amount.Cmp(auction.BidAmount) <= 0 {
		return model.Bid{}, fmt.Errorf("admit bid: current highest is %s: %w", auction.BidAmount, auctionerrors.ErrBidTooLow)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		TeamID:    teamID,
		UserID:    userID,
		PlayerID:  playerID,
		BidAmount: amount,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.CreateBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("admit bid: failed to persist: %w", err)
	}

	auction.BidAmount = amount
	if err := a.store.UpdateAuction(auction); err != nil {
		return model.Bid{}, fmt.Errorf("admit bid: failed to track highest amount: %w", err)
	}

	return bid, nil
}

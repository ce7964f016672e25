package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-portal/internal/auctionerrors"
	model "auction-portal/internal/models"
	"auction-portal/internal/repository"
	"auction-portal/utils"

	"github.com/shopspring/decimal"
)

// StateMachine owns the lifecycle of one auction: pending at creation,
// exactly one transition to a terminal accepted or rejected state.
type StateMachine struct {
	store repository.EntityStore
}

// NewStateMachine creates a StateMachine over the given store
func NewStateMachine(store repository.EntityStore) *StateMachine {
	return &StateMachine{store: store}
}

// Open creates a pending auction for a player within a tournament. The
// reserve price seeds the tracked highest amount. Fails if the tournament or
// player is unknown, or if the player already has a pending auction.
func (m *StateMachine) Open(tournamentID, playerID string, reserve decimal.Decimal, startTime, endTime time.Time) (model.Auction, error) {
	if _, err := m.store.GetTournament(tournamentID); err != nil {
		return model.Auction{}, fmt.Errorf("open auction: %w", err)
	}
	if _, err := m.store.GetPlayer(playerID); err != nil {
		return model.Auction{}, fmt.Errorf("open auction: %w", err)
	}

	// Unique-pending-per-player invariant, answered by a store query rather
	// than any in-process cache.
	_, err := m.store.FindPendingAuctionByPlayer(playerID)
	if err == nil {
		return model.Auction{}, fmt.Errorf("open auction for player %s: %w", playerID, auctionerrors.ErrDuplicateAuction)
	}
	if !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return model.Auction{}, fmt.Errorf("open auction: pending check failed: %w", err)
	}

	auction := model.Auction{
		AuctionID:    utils.GenerateID(),
		TournamentID: tournamentID,
		PlayerID:     playerID,
		BidAmount:    reserve,
		Status:       model.StatusPending,
		StartTime:    startTime,
		EndTime:      endTime,
	}
	if err := m.store.CreateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("open auction: failed to persist: %w", err)
	}
	return auction, nil
}

// Close transitions a pending auction to the terminal status to. Re-closing
// an already-terminal auction is a conflict, never a silent success.
func (m *StateMachine) Close(auctionID string, to model.Status) (model.Auction, error) {
	if !to.Terminal() {
		return model.Auction{}, fmt.Errorf("close auction %s to %q: %w", auctionID, to, auctionerrors.ErrInvalidStatus)
	}

	auction, err := m.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("close auction: %w", err)
	}
	if auction.Status != model.StatusPending {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	auction.Status = to
	if err := m.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("close auction: failed to persist: %w", err)
	}
	return auction, nil
}

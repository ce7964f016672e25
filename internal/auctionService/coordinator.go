package auction

import (
	"fmt"
	"time"

	"auction-portal/internal/auctionerrors"
	"auction-portal/internal/events"
	model "auction-portal/internal/models"
	"auction-portal/internal/repository"
	"auction-portal/utils"

	"github.com/shopspring/decimal"
)

// StartAuctionRequest opens bidding for one player within a tournament.
// ConnID identifies the initiating connection for per-connection replies.
type StartAuctionRequest struct {
	ConnID       string
	TournamentID string
	PlayerID     string
	Reserve      decimal.Decimal
	StartTime    time.Time
	EndTime      time.Time
}

// PlaceBidRequest submits one offer toward an open auction.
type PlaceBidRequest struct {
	ConnID    string
	AuctionID string
	TeamID    string
	UserID    string
	PlayerID  string
	Amount    decimal.Decimal
}

// LiveAuctionDetails is the snapshot served for the currently open auction.
type LiveAuctionDetails struct {
	Auction    model.Auction `json:"auction"`
	Player     model.Player  `json:"player"`
	HighestBid *model.Bid    `json:"highest_bid,omitempty"`
}

// Coordinator sequences open, admission, winner resolution and close as one
// logical unit per auction, and fans events out through the broadcaster.
// All operations against the same auction ID are serialized by a keyed
// mutex; different auctions proceed fully in parallel.
type Coordinator struct {
	store       repository.EntityStore
	state       *StateMachine
	admission   *Admission
	broadcaster events.Broadcaster
	locks       *keyedMutex
}

// NewCoordinator creates a Coordinator over the store and broadcaster
func NewCoordinator(store repository.EntityStore, broadcaster events.Broadcaster) *Coordinator {
	return &Coordinator{
		store:       store,
		state:       NewStateMachine(store),
		admission:   NewAdmission(store),
		broadcaster: broadcaster,
		locks:       newKeyedMutex(),
	}
}

// fail emits exactly one error event to the initiator and returns err.
func (c *Coordinator) fail(connID string, err error) error {
	if connID != "" {
		c.broadcaster.Reply(connID, events.NewErrorEvent(err.Error()))
	}
	return err
}

// StartAuction opens an auction and announces it. The duplicate-pending
// check and the auction creation are serialized per player so two
// simultaneous starts cannot both pass the check.
func (c *Coordinator) StartAuction(req StartAuctionRequest) (model.Auction, error) {
	unlock := c.locks.lock("player:" + req.PlayerID)
	defer unlock()

	auction, err := c.state.Open(req.TournamentID, req.PlayerID, req.Reserve, req.StartTime, req.EndTime)
	if err != nil {
		return model.Auction{}, c.fail(req.ConnID, err)
	}

	if req.ConnID != "" {
		c.broadcaster.Reply(req.ConnID, events.NewAuctionEvent(events.AuctionStarted, "auction started successfully", auction))
	}
	c.broadcaster.Broadcast(events.NewAuctionEvent(events.AuctionUpdate, "auction opened", auction))
	return auction, nil
}

// PlaceBid admits a bid and announces it. Admission failures are per-bid:
// they produce one error event for the initiator and never disturb other
// in-flight bids or the auction itself.
func (c *Coordinator) PlaceBid(req PlaceBidRequest) (model.Bid, error) {
	unlock := c.locks.lock(req.AuctionID)
	defer unlock()

	if req.PlayerID != "" {
		if _, err := c.store.GetPlayer(req.PlayerID); err != nil {
			return model.Bid{}, c.fail(req.ConnID, fmt.Errorf("place bid: %w", err))
		}
	}

	bid, err := c.admission.Admit(req.AuctionID, req.TeamID, req.UserID, req.PlayerID, req.Amount)
	if err != nil {
		return model.Bid{}, c.fail(req.ConnID, err)
	}

	c.recordBidHistory(bid)

	auction, err := c.store.GetAuction(req.AuctionID)
	if err != nil {
		// The bid is already admitted; serve the event from the bid alone.
		auction = model.Auction{AuctionID: req.AuctionID, PlayerID: req.PlayerID, BidAmount: req.Amount, Status: model.StatusPending}
	}

	if req.ConnID != "" {
		c.broadcaster.Reply(req.ConnID, events.NewBidEvent(events.BidPlaced, "bid placed successfully", bid, auction))
	}
	c.broadcaster.Broadcast(events.NewAuctionEvent(events.AuctionUpdate, "new highest bid", auction))
	return bid, nil
}

// recordBidHistory appends the audit entry for an admitted bid. History is
// best-effort: a failure is logged and the admitted bid stands.
func (c *Coordinator) recordBidHistory(bid model.Bid) {
	entry := model.BidHistory{
		HistoryID: utils.GenerateID(),
		AuctionID: bid.AuctionID,
		TeamID:    bid.TeamID,
		PlayerID:  bid.PlayerID,
		BidAmount: bid.BidAmount,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.store.CreateBidHistory(entry); err != nil {
		utils.Error("coordinator: failed to record bid history", map[string]any{
			"bid_id":     bid.BidID,
			"auction_id": bid.AuctionID,
			"error":      err.Error(),
		})
	}
}

// EndAuctionForPlayer resolves the winner and closes the auction. The
// winning bid is the highest amount, earliest-created on ties; it becomes
// accepted while every other bid is rejected. With no bids the auction stays
// pending and ErrNoBidFound is reported.
func (c *Coordinator) EndAuctionForPlayer(connID, auctionID string) (model.Auction, model.Bid, error) {
	unlock := c.locks.lock(auctionID)
	defer unlock()

	auction, err := c.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, model.Bid{}, c.fail(connID, fmt.Errorf("end auction: %w", err))
	}
	if auction.Status != model.StatusPending {
		return model.Auction{}, model.Bid{}, c.fail(connID, fmt.Errorf("end auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed))
	}

	bids, err := c.store.ListBidsByAuction(auctionID)
	if err != nil {
		return model.Auction{}, model.Bid{}, c.fail(connID, fmt.Errorf("end auction: failed to list bids: %w", err))
	}
	winner, ok := winningBid(bids)
	if !ok {
		return model.Auction{}, model.Bid{}, c.fail(connID, fmt.Errorf("end auction %s: %w", auctionID, auctionerrors.ErrNoBidFound))
	}

	winner.Status = model.StatusAccepted
	if err := c.store.UpdateBid(winner); err != nil {
		return model.Auction{}, model.Bid{}, c.fail(connID, fmt.Errorf("end auction: failed to accept winning bid: %w", err))
	}
	for _, b := range bids {
		if b.BidID == winner.BidID {
			continue
		}
		b.Status = model.StatusRejected
		if err := c.store.UpdateBid(b); err != nil {
			utils.Warn("coordinator: failed to reject losing bid", map[string]any{
				"bid_id":     b.BidID,
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	}

	closed, err := c.state.Close(auctionID, model.StatusAccepted)
	if err != nil {
		return model.Auction{}, model.Bid{}, c.fail(connID, err)
	}

	if connID != "" {
		c.broadcaster.Reply(connID, events.NewBidEvent(events.AuctionEndedForPlayer, "auction ended for player", winner, closed))
	}
	c.broadcaster.Broadcast(events.NewAuctionEvent(events.AuctionUpdate, "auction closed", closed))
	return closed, winner, nil
}

// winningBid returns the bid with the maximum amount, earliest-created on
// ties, and false when there are no bids.
func winningBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}
	winner := bids[0]
	for _, b := range bids[1:] {
		if b.BidAmount.Cmp(winner.BidAmount) > 0 ||
			(b.BidAmount.Cmp(winner.BidAmount) == 0 && b.CreatedAt.Before(winner.CreatedAt)) {
			winner = b
		}
	}
	return winner, true
}

// EndAuction completes the whole auction for a tournament. It refuses while
// any player auction is still pending.
func (c *Coordinator) EndAuction(connID, tournamentID string) (model.Tournament, error) {
	tournament, err := c.store.GetTournament(tournamentID)
	if err != nil {
		return model.Tournament{}, c.fail(connID, fmt.Errorf("end tournament auction: %w", err))
	}

	pending, err := c.store.ListPendingAuctionsByTournament(tournamentID)
	if err != nil {
		return model.Tournament{}, c.fail(connID, fmt.Errorf("end tournament auction: failed to list pending: %w", err))
	}
	if len(pending) > 0 {
		return model.Tournament{}, c.fail(connID, fmt.Errorf("end tournament auction: %d player(s) still pending: %w", len(pending), auctionerrors.ErrPendingPlayersLeft))
	}

	tournament.Completed = true
	if err := c.store.UpdateTournament(tournament); err != nil {
		return model.Tournament{}, c.fail(connID, fmt.Errorf("end tournament auction: failed to persist: %w", err))
	}

	event := events.Event{Name: events.AuctionEnded, Message: "auction ended for tournament " + tournamentID}
	if connID != "" {
		c.broadcaster.Reply(connID, event)
	}
	c.broadcaster.Broadcast(event)
	return tournament, nil
}

// LiveAuction returns the currently open auction with its player and the
// highest bid so far.
func (c *Coordinator) LiveAuction() (LiveAuctionDetails, error) {
	auction, err := c.store.FindLiveAuction()
	if err != nil {
		return LiveAuctionDetails{}, fmt.Errorf("live auction: %w", err)
	}
	player, err := c.store.GetPlayer(auction.PlayerID)
	if err != nil {
		return LiveAuctionDetails{}, fmt.Errorf("live auction: %w", err)
	}

	details := LiveAuctionDetails{Auction: auction, Player: player}
	bids, err := c.store.ListBidsByAuction(auction.AuctionID)
	if err != nil {
		return LiveAuctionDetails{}, fmt.Errorf("live auction: failed to list bids: %w", err)
	}
	if highest, ok := winningBid(bids); ok {
		details.HighestBid = &highest
	}
	return details, nil
}

// GetAuction returns one auction by ID.
func (c *Coordinator) GetAuction(auctionID string) (model.Auction, error) {
	auction, err := c.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction: %w", err)
	}
	return auction, nil
}

// ListBids returns all bids for an auction in admission order.
func (c *Coordinator) ListBids(auctionID string) ([]model.Bid, error) {
	if _, err := c.store.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	bids, err := c.store.ListBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

// GetBid returns one bid by ID.
func (c *Coordinator) GetBid(bidID string) (model.Bid, error) {
	bid, err := c.store.GetBid(bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid: %w", err)
	}
	return bid, nil
}

// UpdateBidStatus sets a bid's status directly. Operator tooling only; the
// change is serialized with close so it cannot race winner resolution.
func (c *Coordinator) UpdateBidStatus(bidID string, status model.Status) (model.Bid, error) {
	if !status.Valid() {
		return model.Bid{}, fmt.Errorf("update bid status to %q: %w", status, auctionerrors.ErrInvalidStatus)
	}

	bid, err := c.store.GetBid(bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("update bid status: %w", err)
	}

	unlock := c.locks.lock(bid.AuctionID)
	defer unlock()

	// Re-read under the lock; close may have run in between.
	bid, err = c.store.GetBid(bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("update bid status: %w", err)
	}
	bid.Status = status
	if err := c.store.UpdateBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("update bid status: failed to persist: %w", err)
	}
	return bid, nil
}

// MaterializeBidHistory bulk-appends history rows for every bid a player
// received in an auction.
func (c *Coordinator) MaterializeBidHistory(playerID, auctionID string) ([]model.BidHistory, error) {
	bids, err := c.store.ListBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("materialize bid history: %w", err)
	}

	var entries []model.BidHistory
	for _, b := range bids {
		if b.PlayerID != playerID {
			continue
		}
		entry := model.BidHistory{
			HistoryID: utils.GenerateID(),
			AuctionID: b.AuctionID,
			TeamID:    b.TeamID,
			PlayerID:  b.PlayerID,
			BidAmount: b.BidAmount,
			CreatedAt: time.Now().UTC(),
		}
		if err := c.store.CreateBidHistory(entry); err != nil {
			return nil, fmt.Errorf("materialize bid history: failed to persist: %w", err)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("materialize bid history for player %s: %w", playerID, auctionerrors.ErrNoBidFound)
	}
	return entries, nil
}

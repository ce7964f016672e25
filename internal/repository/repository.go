package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-portal/internal/auctionerrors"
	model "auction-portal/internal/models"
)

// EntityStore defines the persistence operations the auction engine consumes.
// Implementations must provide read-committed visibility and atomic
// single-entity updates.
type EntityStore interface {
	GetTournament(tournamentID string) (model.Tournament, error)
	UpdateTournament(tournament model.Tournament) error
	GetPlayer(playerID string) (model.Player, error)
	GetTeam(teamID string) (model.Team, error)
	GetUser(userID string) (model.User, error)

	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(auction model.Auction) error
	FindPendingAuctionByPlayer(playerID string) (model.Auction, error)
	FindLiveAuction() (model.Auction, error)
	ListPendingAuctionsByTournament(tournamentID string) ([]model.Auction, error)

	CreateBid(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	UpdateBid(bid model.Bid) error
	ListBidsByAuction(auctionID string) ([]model.Bid, error)

	CreateBidHistory(entry model.BidHistory) error
	ListBidHistoryByAuction(auctionID string) ([]model.BidHistory, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of EntityStore
// plus the registry CRUD used by the HTTP glue.
type MemoryRepo struct {
	mu          sync.RWMutex
	users       map[string]model.User
	players     map[string]model.Player
	teams       map[string]model.Team
	owners      map[string]model.TeamOwner
	tournaments map[string]model.Tournament
	auctions    map[string]model.Auction
	auctionIDs  []string // creation order, for deterministic scans
	bids        map[string][]model.Bid // key: auctionID -> bids in admission order
	bidIndex    map[string]string      // key: bidID -> auctionID
	histories   []model.BidHistory     // append-only
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:       make(map[string]model.User),
		players:     make(map[string]model.Player),
		teams:       make(map[string]model.Team),
		owners:      make(map[string]model.TeamOwner),
		tournaments: make(map[string]model.Tournament),
		auctions:    make(map[string]model.Auction),
		bids:        make(map[string][]model.Bid),
		bidIndex:    make(map[string]string),
	}
}

// --- Tournaments ---

func (r *MemoryRepo) CreateTournament(tournament model.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tournaments[tournament.TournamentID] = tournament
	return nil
}

func (r *MemoryRepo) GetTournament(tournamentID string) (model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[tournamentID]
	if !ok {
		return model.Tournament{}, fmt.Errorf("get tournament %s: %w", tournamentID, auctionerrors.ErrTournamentNotFound)
	}
	return t, nil
}

func (r *MemoryRepo) UpdateTournament(tournament model.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[tournament.TournamentID]; !ok {
		return fmt.Errorf("update tournament %s: %w", tournament.TournamentID, auctionerrors.ErrTournamentNotFound)
	}
	r.tournaments[tournament.TournamentID] = tournament
	return nil
}

func (r *MemoryRepo) ListTournaments() ([]model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TournamentID < out[j].TournamentID })
	return out, nil
}

// --- Players ---

func (r *MemoryRepo) CreatePlayer(player model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[player.PlayerID] = player
	return nil
}

func (r *MemoryRepo) GetPlayer(playerID string) (model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	if !ok {
		return model.Player{}, fmt.Errorf("get player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) UpdatePlayer(player model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[player.PlayerID]; !ok {
		return fmt.Errorf("update player %s: %w", player.PlayerID, auctionerrors.ErrPlayerNotFound)
	}
	r.players[player.PlayerID] = player
	return nil
}

func (r *MemoryRepo) DeletePlayer(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("delete player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	delete(r.players, playerID)
	return nil
}

func (r *MemoryRepo) ListPlayers() ([]model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

// --- Teams ---

func (r *MemoryRepo) CreateTeam(team model.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.TeamID] = team
	return nil
}

func (r *MemoryRepo) GetTeam(teamID string) (model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return t, nil
}

func (r *MemoryRepo) UpdateTeam(team model.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[team.TeamID]; !ok {
		return fmt.Errorf("update team %s: %w", team.TeamID, auctionerrors.ErrTeamNotFound)
	}
	r.teams[team.TeamID] = team
	return nil
}

func (r *MemoryRepo) DeleteTeam(teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[teamID]; !ok {
		return fmt.Errorf("delete team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	delete(r.teams, teamID)
	return nil
}

func (r *MemoryRepo) ListTeams() ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// --- Team owners ---

func (r *MemoryRepo) CreateOwner(owner model.TeamOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[owner.OwnerID] = owner
	return nil
}

func (r *MemoryRepo) GetOwner(ownerID string) (model.TeamOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.owners[ownerID]
	if !ok {
		return model.TeamOwner{}, fmt.Errorf("get owner %s: %w", ownerID, auctionerrors.ErrOwnerNotFound)
	}
	return o, nil
}

func (r *MemoryRepo) UpdateOwner(owner model.TeamOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.owners[owner.OwnerID]; !ok {
		return fmt.Errorf("update owner %s: %w", owner.OwnerID, auctionerrors.ErrOwnerNotFound)
	}
	r.owners[owner.OwnerID] = owner
	return nil
}

func (r *MemoryRepo) ListOwners() ([]model.TeamOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.TeamOwner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID < out[j].OwnerID })
	return out, nil
}

// --- Users ---

func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
}

// --- Auctions ---

func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		r.auctionIDs = append(r.auctionIDs, auction.AuctionID)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// FindPendingAuctionByPlayer returns the pending auction for a player, if any.
// The unique-pending invariant is enforced at the coordinator, so the first
// match in creation order is the only match.
func (r *MemoryRepo) FindPendingAuctionByPlayer(playerID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.auctionIDs {
		a := r.auctions[id]
		if a.PlayerID == playerID && a.Status == model.StatusPending {
			return a, nil
		}
	}
	return model.Auction{}, fmt.Errorf("find pending auction for player %s: %w", playerID, auctionerrors.ErrAuctionNotFound)
}

// FindLiveAuction returns the earliest-created pending auction.
func (r *MemoryRepo) FindLiveAuction() (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.auctionIDs {
		if a := r.auctions[id]; a.Status == model.StatusPending {
			return a, nil
		}
	}
	return model.Auction{}, fmt.Errorf("find live auction: %w", auctionerrors.ErrNoLiveAuction)
}

func (r *MemoryRepo) ListPendingAuctionsByTournament(tournamentID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, id := range r.auctionIDs {
		a := r.auctions[id]
		if a.TournamentID == tournamentID && a.Status == model.StatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- Bids ---

func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	r.bidIndex[bid.BidID] = bid.AuctionID
	return nil
}

func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionID, ok := r.bidIndex[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	for _, b := range r.bids[auctionID] {
		if b.BidID == bidID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
}

// UpdateBid replaces the stored bid with the same BidID. Only the status is
// expected to change; the amount is immutable by contract.
func (r *MemoryRepo) UpdateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auctionID, ok := r.bidIndex[bid.BidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
	}
	for i, b := range r.bids[auctionID] {
		if b.BidID == bid.BidID {
			r.bids[auctionID][i] = bid
			return nil
		}
	}
	return fmt.Errorf("update bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
}

// ListBidsByAuction returns all bids for an auction in admission order.
func (r *MemoryRepo) ListBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids[auctionID]...), nil
}

// --- Bid history ---

func (r *MemoryRepo) CreateBidHistory(entry model.BidHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histories = append(r.histories, entry)
	return nil
}

func (r *MemoryRepo) ListBidHistoryByAuction(auctionID string) ([]model.BidHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.BidHistory
	for _, h := range r.histories {
		if h.AuctionID == auctionID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListBidHistoryByTeam(teamID string) ([]model.BidHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.BidHistory
	for _, h := range r.histories {
		if h.TeamID == teamID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListBidHistoryByPlayer(playerID string) ([]model.BidHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.BidHistory
	for _, h := range r.histories {
		if h.PlayerID == playerID {
			out = append(out, h)
		}
	}
	return out, nil
}

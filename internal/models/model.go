package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state shared by auctions and bids.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transition.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// User represents a registered portal user
type User struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Player represents a player put up for auction
type Player struct {
	PlayerID     string          `json:"player_id"`
	Name         string          `json:"name"`
	Age          int             `json:"age"`
	Gender       string          `json:"gender"`
	Role         string          `json:"role"` // Batsman, Bowler, All-Rounder, Wicket-Keeper
	BattingOrder string          `json:"batting_order,omitempty"`
	BattingHand  string          `json:"batting_hand,omitempty"`
	BowlingHand  string          `json:"bowling_hand,omitempty"`
	SkillRating  int             `json:"skill_rating"`
	TeamID       string          `json:"team_id,omitempty"`
	BasePrice    decimal.Decimal `json:"base_price"`
}

// Team represents a franchise bidding for players
type Team struct {
	TeamID  string          `json:"team_id"`
	Name    string          `json:"name"`
	OwnerID string          `json:"owner_id"`
	Logo    string          `json:"logo,omitempty"`
	Budget  decimal.Decimal `json:"budget"`
}

// TeamOwner represents the owner backing a team
type TeamOwner struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Points  int    `json:"points"`
}

// Tournament represents the competition an auction belongs to
type Tournament struct {
	TournamentID string    `json:"tournament_id"`
	Name         string    `json:"name"`
	Location     string    `json:"location,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Completed    bool      `json:"completed"`
}

// Auction represents the bidding process for one player in one tournament.
// BidAmount holds the reserve price at creation and tracks the current
// highest admitted bid while the auction is pending.
type Auction struct {
	AuctionID    string          `json:"auction_id"`
	TournamentID string          `json:"tournament_id"`
	PlayerID     string          `json:"player_id"`
	BidAmount    decimal.Decimal `json:"bid_amount"`
	Status       Status          `json:"status"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
}

// Bid represents a single offer by a team toward an open auction.
// The amount is immutable once created; only the status changes, at most
// once, when the auction closes.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	TeamID    string          `json:"team_id"`
	UserID    string          `json:"user_id"`
	PlayerID  string          `json:"player_id"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// BidHistory is an append-only audit entry for an admitted bid
type BidHistory struct {
	HistoryID string          `json:"history_id"`
	AuctionID string          `json:"auction_id"`
	TeamID    string          `json:"team_id"`
	PlayerID  string          `json:"player_id"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	CreatedAt time.Time       `json:"created_at"`
}

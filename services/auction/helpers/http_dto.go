package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs for the auction surface

type StartAuctionRequest struct {
	TournamentID string          `json:"tournament_id" binding:"required"`
	PlayerID     string          `json:"player_id" binding:"required"`
	BidAmount    decimal.Decimal `json:"bid_amount" binding:"required"`
	StartTime    time.Time       `json:"start_time" binding:"required"`
	EndTime      time.Time       `json:"end_time" binding:"required"`
}

type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	TeamID    string          `json:"team_id" binding:"required"`
	PlayerID  string          `json:"player_id"`
	BidAmount decimal.Decimal `json:"bid_amount" binding:"required"`
}

type EndPlayerAuctionRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
}

type EndAuctionRequest struct {
	TournamentID string `json:"tournament_id" binding:"required"`
}

type UpdateBidStatusRequest struct {
	BidID  string `json:"bid_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type CreateBidHistoryRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	TeamID    string          `json:"team_id" binding:"required"`
	PlayerID  string          `json:"player_id" binding:"required"`
	BidAmount decimal.Decimal `json:"bid_amount" binding:"required"`
}

type MaterializeHistoryRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	AuctionID string `json:"auction_id" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	TeamID    string          `json:"team_id"`
	UserID    string          `json:"user_id"`
	PlayerID  string          `json:"player_id,omitempty"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type Pagination struct {
	TotalBids   int `json:"total_bids"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

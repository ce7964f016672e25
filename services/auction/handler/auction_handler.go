package handler

import (
	"net/http"
	"strconv"
	"time"

	"auction-portal/internal/auctionerrors"
	auction "auction-portal/internal/auctionService"
	"auction-portal/internal/identity"
	model "auction-portal/internal/models"
	"auction-portal/services/auction/helpers"
	"auction-portal/utils"

	"github.com/gin-gonic/gin"
)

// Coordinator is the slice of the auction engine the HTTP surface consumes.
type Coordinator interface {
	StartAuction(req auction.StartAuctionRequest) (model.Auction, error)
	PlaceBid(req auction.PlaceBidRequest) (model.Bid, error)
	EndAuctionForPlayer(connID, auctionID string) (model.Auction, model.Bid, error)
	EndAuction(connID, tournamentID string) (model.Tournament, error)
	LiveAuction() (auction.LiveAuctionDetails, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListBids(auctionID string) ([]model.Bid, error)
	GetBid(bidID string) (model.Bid, error)
	UpdateBidStatus(bidID string, status model.Status) (model.Bid, error)
	MaterializeBidHistory(playerID, auctionID string) ([]model.BidHistory, error)
}

// HistoryStore is the audit-ledger access the history endpoints use.
type HistoryStore interface {
	CreateBidHistory(entry model.BidHistory) error
	ListBidHistoryByAuction(auctionID string) ([]model.BidHistory, error)
	ListBidHistoryByTeam(teamID string) ([]model.BidHistory, error)
	ListBidHistoryByPlayer(playerID string) ([]model.BidHistory, error)
}

type AuctionHandler struct {
	coordinator Coordinator
	history     HistoryStore
}

func NewAuctionHandler(coordinator Coordinator, history HistoryStore) *AuctionHandler {
	return &AuctionHandler{coordinator: coordinator, history: history}
}

// connID identifies the requesting connection for per-connection events.
// Clients holding an event subscription pass the ID they subscribed with.
func connID(c *gin.Context) string {
	return c.GetHeader("X-Connection-ID")
}

// claimsFromContext returns the authenticated claims the auth middleware set.
func claimsFromContext(c *gin.Context) (*identity.Claims, bool) {
	v, ok := c.Get(identity.ContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*identity.Claims)
	return claims, ok
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		TeamID:    bid.TeamID,
		UserID:    bid.UserID,
		PlayerID:  bid.PlayerID,
		BidAmount: bid.BidAmount,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// StartAuctionHandler handles POST /auctions/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	opened, err := h.coordinator.StartAuction(auction.StartAuctionRequest{
		ConnID:       connID(c),
		TournamentID: req.TournamentID,
		PlayerID:     req.PlayerID,
		Reserve:      req.BidAmount,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})
	if err != nil {
		helpers.RespondError(c, "StartAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, opened, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id":    opened.AuctionID,
		"tournament_id": opened.TournamentID,
		"player_id":     opened.PlayerID,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		helpers.RespondError(c, "PlaceBidHandler", auctionerrors.ErrUnauthorized)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.coordinator.PlaceBid(auction.PlaceBidRequest{
		ConnID:    connID(c),
		AuctionID: req.AuctionID,
		TeamID:    req.TeamID,
		UserID:    claims.Subject,
		PlayerID:  req.PlayerID,
		Amount:    req.BidAmount,
	})
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"team_id":    bid.TeamID,
		"amount":     bid.BidAmount.String(),
	})
}

// LiveAuctionHandler handles GET /auctions/live
func (h *AuctionHandler) LiveAuctionHandler(c *gin.Context) {
	details, err := h.coordinator.LiveAuction()
	if err != nil {
		helpers.RespondError(c, "LiveAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, details, "live auction details fetched successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	found, err := h.coordinator.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err)
		return
	}

	bids, err := h.coordinator.ListBids(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction": found, "bids": bids}, "auction details fetched successfully")
}

// EndPlayerAuctionHandler handles POST /auctions/end-player
func (h *AuctionHandler) EndPlayerAuctionHandler(c *gin.Context) {
	var req helpers.EndPlayerAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EndPlayerAuctionHandler", err)
		return
	}

	closed, winner, err := h.coordinator.EndAuctionForPlayer(connID(c), req.AuctionID)
	if err != nil {
		helpers.RespondError(c, "EndPlayerAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"auction":     closed,
		"winning_bid": toBidResponse(winner),
	}, "auction ended successfully")
	helpers.LogSuccess("EndPlayerAuctionHandler", "auction ended successfully", map[string]any{
		"auction_id":     closed.AuctionID,
		"winning_bid_id": winner.BidID,
		"winning_team":   winner.TeamID,
		"amount":         winner.BidAmount.String(),
	})
}

// EndAuctionHandler handles POST /auctions/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	var req helpers.EndAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EndAuctionHandler", err)
		return
	}

	tournament, err := h.coordinator.EndAuction(connID(c), req.TournamentID)
	if err != nil {
		helpers.RespondError(c, "EndAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, tournament, "tournament auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "tournament auction ended successfully", map[string]any{
		"tournament_id": tournament.TournamentID,
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids with
// page/limit pagination.
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.coordinator.ListBids(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByAuctionHandler", err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(bids)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	paged := make([]helpers.BidResponse, 0, end-start)
	for _, b := range bids[start:end] {
		paged = append(paged, toBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"bids": paged,
		"pagination": helpers.Pagination{
			TotalBids:   total,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}, "bids fetched successfully")
}

// GetBidHandler handles GET /bids/:bid_id
func (h *AuctionHandler) GetBidHandler(c *gin.Context) {
	bid, err := h.coordinator.GetBid(c.Param("bid_id"))
	if err != nil {
		helpers.RespondError(c, "GetBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "bid fetched successfully")
}

// UpdateBidStatusHandler handles PATCH /bids/status
func (h *AuctionHandler) UpdateBidStatusHandler(c *gin.Context) {
	var req helpers.UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidStatusHandler", err)
		return
	}

	bid, err := h.coordinator.UpdateBidStatus(req.BidID, model.Status(req.Status))
	if err != nil {
		helpers.RespondError(c, "UpdateBidStatusHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "bid status updated successfully")
	helpers.LogSuccess("UpdateBidStatusHandler", "bid status updated successfully", map[string]any{
		"bid_id": bid.BidID,
		"status": string(bid.Status),
	})
}

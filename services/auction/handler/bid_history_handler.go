package handler

import (
	"net/http"
	"time"

	model "auction-portal/internal/models"
	"auction-portal/services/auction/helpers"
	"auction-portal/utils"

	"github.com/gin-gonic/gin"
)

// CreateBidHistoryHandler handles POST /bid-history
func (h *AuctionHandler) CreateBidHistoryHandler(c *gin.Context) {
	var req helpers.CreateBidHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHistoryHandler", err)
		return
	}

	entry := model.BidHistory{
		HistoryID: utils.GenerateID(),
		AuctionID: req.AuctionID,
		TeamID:    req.TeamID,
		PlayerID:  req.PlayerID,
		BidAmount: req.BidAmount,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.history.CreateBidHistory(entry); err != nil {
		helpers.RespondError(c, "CreateBidHistoryHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, entry, "bid history created successfully")
	helpers.LogSuccess("CreateBidHistoryHandler", "bid history created successfully", map[string]any{
		"history_id": entry.HistoryID,
		"auction_id": entry.AuctionID,
	})
}

// MaterializeBidHistoryHandler handles POST /bid-history/materialize:
// bulk-appends history rows from every bid a player received in an auction.
func (h *AuctionHandler) MaterializeBidHistoryHandler(c *gin.Context) {
	var req helpers.MaterializeHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MaterializeBidHistoryHandler", err)
		return
	}

	entries, err := h.coordinator.MaterializeBidHistory(req.PlayerID, req.AuctionID)
	if err != nil {
		helpers.RespondError(c, "MaterializeBidHistoryHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, entries, "bid history created successfully")
	helpers.LogSuccess("MaterializeBidHistoryHandler", "bid history created successfully", map[string]any{
		"player_id":  req.PlayerID,
		"auction_id": req.AuctionID,
		"count":      len(entries),
	})
}

// GetBidHistoryByTeamHandler handles GET /bid-history/team/:team_id
func (h *AuctionHandler) GetBidHistoryByTeamHandler(c *gin.Context) {
	entries, err := h.history.ListBidHistoryByTeam(c.Param("team_id"))
	if err != nil {
		helpers.RespondError(c, "GetBidHistoryByTeamHandler", err)
		return
	}
	if entries == nil {
		entries = []model.BidHistory{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
}

// GetBidHistoryByAuctionHandler handles GET /bid-history/auction/:auction_id
func (h *AuctionHandler) GetBidHistoryByAuctionHandler(c *gin.Context) {
	entries, err := h.history.ListBidHistoryByAuction(c.Param("auction_id"))
	if err != nil {
		helpers.RespondError(c, "GetBidHistoryByAuctionHandler", err)
		return
	}
	if entries == nil {
		entries = []model.BidHistory{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
}

// GetBidHistoryByPlayerHandler handles GET /bid-history/player/:player_id
func (h *AuctionHandler) GetBidHistoryByPlayerHandler(c *gin.Context) {
	entries, err := h.history.ListBidHistoryByPlayer(c.Param("player_id"))
	if err != nil {
		helpers.RespondError(c, "GetBidHistoryByPlayerHandler", err)
		return
	}
	if entries == nil {
		entries = []model.BidHistory{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
}

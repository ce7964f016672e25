package server

import (
	"auction-portal/internal/identity"
	auctionhandler "auction-portal/services/auction/handler"
	registryhandler "auction-portal/services/registry/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. Registration
// and login are public; everything else requires an authenticated identity.
func SetupRouter(
	coordinator auctionhandler.Coordinator,
	history auctionhandler.HistoryStore,
	registry registryhandler.RegistryStore,
	tokens identity.Service,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(coordinator, history)
	registryHandler := registryhandler.NewRegistryHandler(registry, tokens)

	users := router.Group("/users")
	{
		users.POST("/register", registryHandler.RegisterUserHandler)
		users.POST("/login", registryHandler.LoginUserHandler)
	}

	authed := router.Group("/", AuthMiddleware(tokens))

	auctions := authed.Group("/auctions")
	{
		auctions.POST("/start", auctionHandler.StartAuctionHandler)
		auctions.GET("/live", auctionHandler.LiveAuctionHandler)
		auctions.POST("/end-player", auctionHandler.EndPlayerAuctionHandler)
		auctions.POST("/end", auctionHandler.EndAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
	}

	bids := authed.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
		bids.PATCH("/status", auctionHandler.UpdateBidStatusHandler)
		bids.GET("/:bid_id", auctionHandler.GetBidHandler)
	}

	bidHistory := authed.Group("/bid-history")
	{
		bidHistory.POST("", auctionHandler.CreateBidHistoryHandler)
		bidHistory.POST("/materialize", auctionHandler.MaterializeBidHistoryHandler)
		bidHistory.GET("/team/:team_id", auctionHandler.GetBidHistoryByTeamHandler)
		bidHistory.GET("/auction/:auction_id", auctionHandler.GetBidHistoryByAuctionHandler)
		bidHistory.GET("/player/:player_id", auctionHandler.GetBidHistoryByPlayerHandler)
	}

	players := authed.Group("/players")
	{
		players.POST("", registryHandler.CreatePlayerHandler)
		players.GET("", registryHandler.ListPlayersHandler)
		players.GET("/:player_id", registryHandler.GetPlayerHandler)
		players.PUT("/:player_id", registryHandler.UpdatePlayerHandler)
		players.DELETE("/:player_id", registryHandler.DeletePlayerHandler)
	}

	teams := authed.Group("/teams")
	{
		teams.POST("", registryHandler.CreateTeamHandler)
		teams.GET("", registryHandler.ListTeamsHandler)
		teams.GET("/:team_id", registryHandler.GetTeamHandler)
		teams.PUT("/:team_id", registryHandler.UpdateTeamHandler)
		teams.DELETE("/:team_id", registryHandler.DeleteTeamHandler)
	}

	tournaments := authed.Group("/tournaments")
	{
		tournaments.POST("", registryHandler.CreateTournamentHandler)
		tournaments.GET("", registryHandler.ListTournamentsHandler)
		tournaments.GET("/:tournament_id", registryHandler.GetTournamentHandler)
	}

	owners := authed.Group("/owners")
	{
		owners.POST("", registryHandler.CreateOwnerHandler)
		owners.GET("", registryHandler.ListOwnersHandler)
		owners.GET("/:owner_id", registryHandler.GetOwnerHandler)
		owners.PUT("/:owner_id", registryHandler.UpdateOwnerHandler)
	}

	return router
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	auction "auction-portal/internal/auctionService"
	"auction-portal/internal/events"
	"auction-portal/internal/identity"
	model "auction-portal/internal/models"
	"auction-portal/internal/repository"
	"auction-portal/internal/server"
	"auction-portal/utils"

	"github.com/shopspring/decimal"
)

func main() {
	repo := repository.NewMemoryRepo()

	prepopulate(repo)

	bus := events.NewBus()
	defer bus.Close()

	coordinator := auction.NewCoordinator(repo, bus)
	tokens := identity.NewService(getSecret(), 24*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go logAuctionUpdates(ctx, bus)

	router := server.SetupRouter(coordinator, repo, repo, tokens)

	port := getPort()
	fmt.Printf("Starting auction portal on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// logAuctionUpdates mirrors the global fan-out into the server log
func logAuctionUpdates(ctx context.Context, bus *events.Bus) {
	messages, err := bus.Subscribe(ctx, events.GlobalTopic)
	if err != nil {
		utils.Error("failed to subscribe to auction updates", map[string]any{"error": err.Error()})
		return
	}
	for msg := range messages {
		event, err := events.Decode(msg)
		if err != nil {
			utils.Warn("dropping undecodable auction update", map[string]any{"error": err.Error()})
			msg.Ack()
			continue
		}
		fields := map[string]any{"event": event.Name, "message": event.Message}
		if event.Auction != nil {
			fields["auction_id"] = event.Auction.AuctionID
			fields["status"] = string(event.Auction.Status)
		}
		utils.Info("auction update", fields)
		msg.Ack()
	}
}

// prepopulate seeds sample entities so the portal is usable out of the box
func prepopulate(repo *repository.MemoryRepo) {
	owner := model.TeamOwner{OwnerID: "owner1", Name: "Asha Rao", Email: "asha@example.com", Points: 100}
	repo.CreateOwner(owner)

	teams := []model.Team{
		{TeamID: "team1", Name: "Northern Strikers", OwnerID: owner.OwnerID, Budget: decimal.NewFromInt(100000)},
		{TeamID: "team2", Name: "Harbour Kings", OwnerID: owner.OwnerID, Budget: decimal.NewFromInt(120000)},
	}
	for _, t := range teams {
		repo.CreateTeam(t)
	}

	players := []model.Player{
		{PlayerID: "player1", Name: "R. Sharma", Age: 29, Gender: "Male", Role: "Batsman", BasePrice: decimal.NewFromInt(1000)},
		{PlayerID: "player2", Name: "J. Fernandes", Age: 24, Gender: "Female", Role: "Bowler", BasePrice: decimal.NewFromInt(800)},
		{PlayerID: "player3", Name: "K. Li", Age: 31, Gender: "Male", Role: "All-Rounder", BasePrice: decimal.NewFromInt(1500)},
	}
	for _, p := range players {
		repo.CreatePlayer(p)
	}

	repo.CreateTournament(model.Tournament{
		TournamentID: "tournament1",
		Name:         "Premier Season",
		Location:     "Mumbai",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 1, 0),
	})

	repo.CreateUser(model.User{
		UserID:   "admin1",
		UserName: "admin",
		Email:    "admin@example.com",
		Password: "admin",
		Role:     string(identity.RoleAdmin),
	})
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getSecret returns the JWT signing secret from env or a dev default
func getSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev-secret-change-me"
}

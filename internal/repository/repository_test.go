package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-portal/internal/auctionerrors"
	model "auction-portal/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a pending auction
func newAuction(auctionID, tournamentID, playerID string, reserve int64) model.Auction {
	return model.Auction{
		AuctionID:    auctionID,
		TournamentID: tournamentID,
		PlayerID:     playerID,
		BidAmount:    decimal.NewFromInt(reserve),
		Status:       model.StatusPending,
		StartTime:    time.Now(),
		EndTime:      time.Now().Add(time.Hour),
	}
}

// Helper to create a pending bid
func newBid(bidID, auctionID, teamID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		TeamID:    teamID,
		UserID:    "user1",
		PlayerID:  "player1",
		BidAmount: decimal.NewFromInt(amount),
		Status:    model.StatusPending,
		CreatedAt: createdAt,
	}
}

func TestMemoryRepo_AuctionLifecycle(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.GetAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	a := newAuction("auction1", "tournament1", "player1", 1000)
	require.NoError(t, repo.CreateAuction(a))

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, got.Status)
	require.True(t, got.BidAmount.Equal(decimal.NewFromInt(1000)))

	got.Status = model.StatusAccepted
	require.NoError(t, repo.UpdateAuction(got))

	reread, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, model.StatusAccepted, reread.Status)

	err = repo.UpdateAuction(newAuction("missing", "tournament1", "player1", 1))
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

func TestMemoryRepo_FindPendingAuctionByPlayer(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "tournament1", "player1", 100)))

	closed := newAuction("auction2", "tournament1", "player2", 100)
	closed.Status = model.StatusAccepted
	require.NoError(t, repo.CreateAuction(closed))

	found, err := repo.FindPendingAuctionByPlayer("player1")
	require.NoError(t, err)
	require.Equal(t, "auction1", found.AuctionID)

	// A terminal auction must not count as pending.
	_, err = repo.FindPendingAuctionByPlayer("player2")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	_, err = repo.FindPendingAuctionByPlayer("playerX")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

func TestMemoryRepo_FindLiveAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.FindLiveAuction()
	require.ErrorIs(t, err, auctionerrors.ErrNoLiveAuction)

	first := newAuction("auction1", "tournament1", "player1", 100)
	first.Status = model.StatusRejected
	require.NoError(t, repo.CreateAuction(first))
	require.NoError(t, repo.CreateAuction(newAuction("auction2", "tournament1", "player2", 100)))
	require.NoError(t, repo.CreateAuction(newAuction("auction3", "tournament1", "player3", 100)))

	// Earliest-created pending auction wins.
	live, err := repo.FindLiveAuction()
	require.NoError(t, err)
	require.Equal(t, "auction2", live.AuctionID)
}

func TestMemoryRepo_ListPendingAuctionsByTournament(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "tournament1", "player1", 100)))
	require.NoError(t, repo.CreateAuction(newAuction("auction2", "tournament2", "player2", 100)))
	done := newAuction("auction3", "tournament1", "player3", 100)
	done.Status = model.StatusAccepted
	require.NoError(t, repo.CreateAuction(done))

	pending, err := repo.ListPendingAuctionsByTournament("tournament1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "auction1", pending[0].AuctionID)
}

func TestMemoryRepo_Bids(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "tournament1", "player1", 100)))

	// Bids for an unknown auction are refused.
	err := repo.CreateBid(newBid("bidX", "missing", "team1", 150, time.Now()))
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	now := time.Now()
	require.NoError(t, repo.CreateBid(newBid("bid1", "auction1", "team1", 150, now)))
	require.NoError(t, repo.CreateBid(newBid("bid2", "auction1", "team2", 200, now.Add(time.Second))))

	// Admission order is preserved.
	bids, err := repo.ListBidsByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bid1", bids[0].BidID)
	require.Equal(t, "bid2", bids[1].BidID)

	got, err := repo.GetBid("bid2")
	require.NoError(t, err)
	require.True(t, got.BidAmount.Equal(decimal.NewFromInt(200)))

	got.Status = model.StatusAccepted
	require.NoError(t, repo.UpdateBid(got))
	reread, err := repo.GetBid("bid2")
	require.NoError(t, err)
	require.Equal(t, model.StatusAccepted, reread.Status)

	_, err = repo.GetBid("missing")
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)

	err = repo.UpdateBid(newBid("missing", "auction1", "team1", 1, now))
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
}

func TestMemoryRepo_ConcurrentBids(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", "tournament1", "player1", 100)))

	var wg sync.WaitGroup
	concurrentCount := 50

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			b := newBid(fmt.Sprintf("bid-%d", i), "auction1", fmt.Sprintf("team-%d", i), int64(100+i), time.Now())
			require.NoError(t, repo.CreateBid(b))
		}()
	}

	wg.Wait()

	bids, err := repo.ListBidsByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, bids, concurrentCount)
}

func TestMemoryRepo_BidHistory(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	entries := []model.BidHistory{
		{HistoryID: "h1", AuctionID: "auction1", TeamID: "team1", PlayerID: "player1", BidAmount: decimal.NewFromInt(100)},
		{HistoryID: "h2", AuctionID: "auction1", TeamID: "team2", PlayerID: "player1", BidAmount: decimal.NewFromInt(200)},
		{HistoryID: "h3", AuctionID: "auction2", TeamID: "team1", PlayerID: "player2", BidAmount: decimal.NewFromInt(300)},
	}
	for _, e := range entries {
		require.NoError(t, repo.CreateBidHistory(e))
	}

	byAuction, err := repo.ListBidHistoryByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, byAuction, 2)

	byTeam, err := repo.ListBidHistoryByTeam("team1")
	require.NoError(t, err)
	require.Len(t, byTeam, 2)

	byPlayer, err := repo.ListBidHistoryByPlayer("player2")
	require.NoError(t, err)
	require.Len(t, byPlayer, 1)
	require.Equal(t, "h3", byPlayer[0].HistoryID)
}

func TestMemoryRepo_RegistryCRUD(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	require.NoError(t, repo.CreatePlayer(model.Player{PlayerID: "player1", Name: "R. Sharma", Role: "Batsman"}))
	player, err := repo.GetPlayer("player1")
	require.NoError(t, err)
	require.Equal(t, "R. Sharma", player.Name)

	player.Name = "R. G. Sharma"
	require.NoError(t, repo.UpdatePlayer(player))

	players, err := repo.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)

	require.NoError(t, repo.DeletePlayer("player1"))
	_, err = repo.GetPlayer("player1")
	require.ErrorIs(t, err, auctionerrors.ErrPlayerNotFound)

	require.NoError(t, repo.CreateTeam(model.Team{TeamID: "team1", Name: "Strikers"}))
	_, err = repo.GetTeam("team1")
	require.NoError(t, err)
	require.ErrorIs(t, repo.DeleteTeam("missing"), auctionerrors.ErrTeamNotFound)

	require.NoError(t, repo.CreateUser(model.User{UserID: "user1", Email: "u@example.com"}))
	byEmail, err := repo.GetUserByEmail("u@example.com")
	require.NoError(t, err)
	require.Equal(t, "user1", byEmail.UserID)
	_, err = repo.GetUserByEmail("missing@example.com")
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
}

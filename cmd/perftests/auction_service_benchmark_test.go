package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-portal/internal/auctionService"
	"auction-portal/internal/events"
	model "auction-portal/internal/models"
	repository "auction-portal/internal/repository"

	"github.com/shopspring/decimal"
)

// noopBroadcaster drops all events so benchmarks measure the engine alone.
type noopBroadcaster struct{}

func (noopBroadcaster) Reply(connID string, event events.Event) {}
func (noopBroadcaster) Broadcast(event events.Event)            {}

// setupCoordinator creates the engine with numAuctions open auctions, one
// bidding team and one user.
func setupCoordinator(numAuctions int) (*repository.MemoryRepo, *auction.Coordinator) {
	repo := repository.NewMemoryRepo()
	repo.CreateTeam(model.Team{TeamID: "team1", Name: "Bench Team", OwnerID: "owner1", Budget: decimal.NewFromInt(1 << 30)})
	repo.CreateUser(model.User{UserID: "user1", UserName: "bench", Email: "bench@example.com"})

	for i := 0; i < numAuctions; i++ {
		repo.CreateAuction(model.Auction{
			AuctionID:    fmt.Sprintf("auction_%d", i),
			TournamentID: "tournament1",
			PlayerID:     fmt.Sprintf("player_%d", i),
			BidAmount:    decimal.NewFromInt(100),
			Status:       model.StatusPending,
			StartTime:    time.Now(),
			EndTime:      time.Now().Add(time.Hour),
		})
	}

	return repo, auction.NewCoordinator(repo, noopBroadcaster{})
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	_, svc := setupCoordinator(b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := svc.PlaceBid(auction.PlaceBidRequest{
			AuctionID: fmt.Sprintf("auction_%d", i),
			TeamID:    "team1",
			UserID:    "user1",
			Amount:    decimal.NewFromInt(int64(101 + rand.Intn(100))),
		})
		if err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	_, svc := setupCoordinator(1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			svc.PlaceBid(auction.PlaceBidRequest{
				AuctionID: "auction_0",
				TeamID:    "team1",
				UserID:    "user1",
				Amount:    decimal.NewFromInt(nextBid),
			})
		}
	})
}

// Benchmark 3: GetAuction - Single-Threaded (Low Contention)
func Benchmark_GetAuction_SingleThreaded(b *testing.B) {
	_, svc := setupCoordinator(b.N)

	for i := 0; i < b.N; i++ {
		svc.PlaceBid(auction.PlaceBidRequest{
			AuctionID: fmt.Sprintf("auction_%d", i),
			TeamID:    "team1",
			UserID:    "user1",
			Amount:    decimal.NewFromInt(int64(110 + i%50)),
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetAuction(fmt.Sprintf("auction_%d", i)); err != nil {
			b.Fatalf("failed to get auction: %v", err)
		}
	}
}

// Benchmark 4: ListBids - Concurrent (High Contention)
func Benchmark_ListBids_ConcurrentSharedAuction(b *testing.B) {
	_, svc := setupCoordinator(1)

	for j := 0; j < 100; j++ {
		svc.PlaceBid(auction.PlaceBidRequest{
			AuctionID: "auction_0",
			TeamID:    "team1",
			UserID:    "user1",
			Amount:    decimal.NewFromInt(int64(101 + j)),
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.ListBids("auction_0"); err != nil {
				b.Fatalf("failed to list bids: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	_, svc := setupCoordinator(1)

	for j := 0; j < 50; j++ {
		svc.PlaceBid(auction.PlaceBidRequest{
			AuctionID: "auction_0",
			TeamID:    "team1",
			UserID:    "user1",
			Amount:    decimal.NewFromInt(int64(101 + j*2)),
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 300

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				svc.PlaceBid(auction.PlaceBidRequest{
					AuctionID: "auction_0",
					TeamID:    "team1",
					UserID:    "user1",
					Amount:    decimal.NewFromInt(nextBid),
				})
			default:
				if _, err := svc.GetAuction("auction_0"); err != nil {
					b.Fatalf("failed to get auction: %v", err)
				}
			}
		}
	})
}

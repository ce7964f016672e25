package events

import (
	"context"
	"testing"
	"time"

	model "auction-portal/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, bus *Bus, ctx context.Context, topic string) <-chan Event {
	t.Helper()

	messages, err := bus.Subscribe(ctx, topic)
	require.NoError(t, err)

	out := make(chan Event, 1)
	go func() {
		for msg := range messages {
			event, err := Decode(msg)
			msg.Ack()
			if err != nil {
				continue
			}
			out <- event
		}
	}()
	return out
}

func expectEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func expectNoEvent(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case event := <-ch:
		t.Fatalf("unexpected event %q", event.Name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_BroadcastReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := waitForEvent(t, bus, ctx, GlobalTopic)
	second := waitForEvent(t, bus, ctx, GlobalTopic)

	auction := model.Auction{AuctionID: "auction1", PlayerID: "player1", BidAmount: decimal.NewFromInt(500), Status: model.StatusPending}
	bus.Broadcast(NewAuctionEvent(AuctionUpdate, "new highest bid", auction))

	for _, ch := range []<-chan Event{first, second} {
		event := expectEvent(t, ch)
		require.Equal(t, AuctionUpdate, event.Name)
		require.NotNil(t, event.Auction)
		require.Equal(t, "auction1", event.Auction.AuctionID)
		require.True(t, event.Auction.BidAmount.Equal(decimal.NewFromInt(500)))
	}
}

func TestBus_ReplyIsScopedToConnection(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mine := waitForEvent(t, bus, ctx, ConnTopic("conn1"))
	theirs := waitForEvent(t, bus, ctx, ConnTopic("conn2"))
	global := waitForEvent(t, bus, ctx, GlobalTopic)

	bus.Reply("conn1", NewErrorEvent("bid amount too low"))

	event := expectEvent(t, mine)
	require.Equal(t, ErrorMessage, event.Name)
	require.Equal(t, "bid amount too low", event.Message)

	expectNoEvent(t, theirs)
	expectNoEvent(t, global)
}

func TestBus_SubscribeClosedBus(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.Close())

	_, err := bus.Subscribe(context.Background(), GlobalTopic)
	require.Error(t, err)
}

package events

import model "auction-portal/internal/models"

// Event names form the stable contract with observers.
const (
	AuctionStarted        = "auctionStarted"
	AuctionUpdate         = "auctionUpdate"
	BidPlaced             = "bidPlaced"
	AuctionEndedForPlayer = "auctionEndedForPlayer"
	AuctionEnded          = "auctionEnded"
	ErrorMessage          = "errorMessage"
)

// Event is the payload fanned out to connected clients. Auction and Bid are
// snapshots taken after the state change committed.
type Event struct {
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Auction *model.Auction `json:"auction,omitempty"`
	Bid     *model.Bid     `json:"bid,omitempty"`
}

// Broadcaster is the notification collaborator the coordinator emits to.
// Both calls are fire-and-forget relative to the admission decision.
type Broadcaster interface {
	// Reply delivers an event to a single connection.
	Reply(connID string, event Event)
	// Broadcast fans an event out to every observer.
	Broadcast(event Event)
}

// NewAuctionEvent builds an event carrying an auction snapshot
func NewAuctionEvent(name, message string, auction model.Auction) Event {
	return Event{Name: name, Message: message, Auction: &auction}
}

// NewBidEvent builds an event carrying both bid and auction snapshots
func NewBidEvent(name, message string, bid model.Bid, auction model.Auction) Event {
	return Event{Name: name, Message: message, Bid: &bid, Auction: &auction}
}

// NewErrorEvent builds an error event with a human-readable reason
func NewErrorEvent(reason string) Event {
	return Event{Name: ErrorMessage, Message: reason}
}

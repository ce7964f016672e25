package auctionerrors

import "errors"

// Not-found errors for referenced entities
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrOwnerNotFound      = errors.New("team owner not found")
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrBidNotFound        = errors.New("bid not found")
	ErrNoBidFound         = errors.New("no bid found for auction")
	ErrNoBidHistory       = errors.New("no bid history found")
	ErrNoLiveAuction      = errors.New("no live auction found")
)

// Conflict errors from the auction lifecycle
var (
	ErrDuplicateAuction   = errors.New("a pending auction already exists for player")
	ErrAuctionClosed      = errors.New("auction already ended")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrPendingPlayersLeft = errors.New("pending player auctions remain")
)

// Validation and authorization errors
var (
	ErrValidation    = errors.New("invalid request")
	ErrInvalidAmount = errors.New("bid amount must be positive")
	ErrInvalidStatus = errors.New("invalid status")
	ErrUnauthorized  = errors.New("unauthorized")
)

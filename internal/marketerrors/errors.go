package marketerrors

import "errors"

// Backend-level errors
var (
	ErrUpstream = errors.New("upstream service failure")
	ErrNotFound = errors.New("resource not found")
)

// Auction lifecycle errors
var (
	ErrInvalidSchedule   = errors.New("invalid auction schedule")
	ErrAuctionActive     = errors.New("auction is currently active")
	ErrInvalidTransition = errors.New("auction status change not allowed")
)

// Request and session errors
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidAuction = errors.New("invalid auction details")
	ErrUnauthorized   = errors.New("missing or invalid session")
	ErrForbidden      = errors.New("user type not allowed")
)

// Dashboard errors
var (
	ErrSnapshotUnavailable = errors.New("dashboard snapshot not available")
)

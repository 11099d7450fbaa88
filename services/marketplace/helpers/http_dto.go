package helpers

import (
	"time"

	"spicegate/internal/auctions"
	"spicegate/internal/lifecycle"
	model "spicegate/internal/models"
)

// Request/Response DTOs
type AuctionRequest struct {
	Title          string  `json:"title" binding:"required"`
	SpiceType      string  `json:"spiceType" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	IncrementValue float64 `json:"incrementValue" binding:"required"`
	CurrentBid     float64 `json:"currentBid"`
	Description    string  `json:"description"`
}

// Draft converts the request body into the editable auction fields.
func (r AuctionRequest) Draft() auctions.Draft {
	return auctions.Draft{
		Title:          r.Title,
		SpiceType:      r.SpiceType,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		IncrementValue: r.IncrementValue,
		CurrentBid:     r.CurrentBid,
		Description:    r.Description,
	}
}

type AuctionView struct {
	model.Auction
	Phase      string    `json:"phase"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Intervened bool      `json:"intervened"`
	BidsOpen   bool      `json:"bidsOpen"`
	CanRestart bool      `json:"canRestart"`
	CanDelete  bool      `json:"canDelete"`
}

type MalformedView struct {
	model.Auction
	Reason string `json:"reason"`
}

type PartitionResponse struct {
	Now       time.Time        `json:"now"`
	Counts    lifecycle.Counts `json:"counts"`
	Upcoming  []AuctionView    `json:"upcoming"`
	Active    []AuctionView    `json:"active"`
	Completed []AuctionView    `json:"completed"`
	Malformed []MalformedView  `json:"malformed"`
	// Stale is set when the list could not be reloaded after a committed
	// mutation; the sections are then empty and Warnings says why.
	Stale     bool             `json:"stale,omitempty"`
	Warnings  []string         `json:"warnings,omitempty"`
}

type AuctionMutationResponse struct {
	Auction  model.Auction     `json:"auction"`
	Auctions PartitionResponse `json:"auctions"`
}

// NewAuctionView flattens a classified auction for the screens.
func NewAuctionView(e lifecycle.Entry) AuctionView {
	cl := e.Classification
	return AuctionView{
		Auction:    e.Auction,
		Phase:      cl.Phase.String(),
		StartsAt:   cl.Window.Start,
		EndsAt:     cl.Window.End,
		Intervened: cl.Intervened,
		BidsOpen:   cl.BidsOpen,
		CanRestart: cl.CanRestart,
		CanDelete:  cl.CanDelete,
	}
}

// NewPartitionResponse converts a partition, using empty lists rather than null.
func NewPartitionResponse(p lifecycle.Partition) PartitionResponse {
	views := func(entries []lifecycle.Entry) []AuctionView {
		out := make([]AuctionView, 0, len(entries))
		for _, e := range entries {
			out = append(out, NewAuctionView(e))
		}
		return out
	}

	malformed := make([]MalformedView, 0, len(p.Malformed))
	for _, m := range p.Malformed {
		malformed = append(malformed, MalformedView{Auction: m.Auction, Reason: m.Reason})
	}

	return PartitionResponse{
		Now:       p.Now,
		Counts:    p.Counts(),
		Upcoming:  views(p.Upcoming),
		Active:    views(p.Active),
		Completed: views(p.Completed),
		Malformed: malformed,
	}
}

// NewRefreshResponse converts the list reloaded after a mutation.
func NewRefreshResponse(r auctions.Refresh) PartitionResponse {
	resp := NewPartitionResponse(r.Partition)
	if r.Stale() {
		resp.Stale = true
		resp.Warnings = []string{r.Warning}
	}
	return resp
}

// Package participants assembles the farmers, lots and bids of one auction.
package participants

import (
	"context"
	"fmt"
	"sync"

	"spicegate/internal/backend"
	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
	"spicegate/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("spicegate/internal/participants")

// BidView is a bid with its bidder resolved to a buyer profile
type BidView struct {
	model.Bid
	Buyer *model.Account `json:"buyer,omitempty"`
}

// Participant is one join record with everything the auction screen shows for it.
// Missing pieces are left nil and explained in Warnings.
type Participant struct {
	Join      model.JoinRecord     `json:"join"`
	Farmer    *model.Account       `json:"farmer,omitempty"`
	Inventory *model.InventoryItem `json:"inventory,omitempty"`
	Bids      []BidView            `json:"bids"`
	Winner    *BidView             `json:"winner,omitempty"`
	Warnings  []string             `json:"warnings,omitempty"`
}

// Result is the aggregation for one auction
type Result struct {
	AuctionID    string        `json:"auctionId"`
	Participants []Participant `json:"participants"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// Degraded reports whether any part of the result could not be loaded.
func (r Result) Degraded() bool {
	if len(r.Warnings) > 0 {
		return true
	}
	for _, p := range r.Participants {
		if len(p.Warnings) > 0 {
			return true
		}
	}
	return false
}

// Aggregator fans out to the backend to build participant records
type Aggregator struct {
	api backend.MarketplaceAPI
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(api backend.MarketplaceAPI) *Aggregator {
	return &Aggregator{api: api}
}

// Aggregate builds the participant list of an auction.
//
// Only the join-record fetch is fatal. Profile lists, inventory items and bids
// that fail to load leave the affected fields empty and add a warning.
func (a *Aggregator) Aggregate(ctx context.Context, auctionID string) (Result, error) {
	if auctionID == "" {
		return Result{}, fmt.Errorf("participants: %w - empty auction ID", marketerrors.ErrInvalidRequest)
	}

	ctx, span := tracer.Start(ctx, "Aggregator.Aggregate",
		trace.WithAttributes(attribute.String("auction.id", auctionID)))
	defer span.End()

	joins, err := a.api.ListJoinRecords(ctx, auctionID)
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("participants: failed to list joins for auction %s: %w", auctionID, err)
	}

	res := Result{AuctionID: auctionID, Participants: make([]Participant, len(joins))}

	var farmers, buyers []model.Account
	var farmerErr, buyerErr error
	// each fetch records its own error; one failure must not cancel the others
	var pre sync.WaitGroup
	pre.Go(func() {
		farmers, farmerErr = a.api.ListFarmers(ctx)
	})
	pre.Go(func() {
		buyers, buyerErr = a.api.ListBuyers(ctx)
	})
	pre.Wait()

	if farmerErr != nil {
		res.Warnings = append(res.Warnings, "farmer profiles unavailable: "+farmerErr.Error())
	}
	if buyerErr != nil {
		res.Warnings = append(res.Warnings, "buyer profiles unavailable: "+buyerErr.Error())
	}

	dir := directory{
		farmers:      indexAccounts(farmers),
		buyers:       indexAccounts(buyers),
		farmersKnown: farmerErr == nil,
		buyersKnown:  buyerErr == nil,
	}

	var wg sync.WaitGroup
	for i, j := range joins {
		wg.Go(func() {
			res.Participants[i] = a.participant(ctx, j, dir)
		})
	}
	wg.Wait()

	degraded := 0
	for _, p := range res.Participants {
		if len(p.Warnings) > 0 {
			degraded++
		}
	}
	span.SetAttributes(
		attribute.Int("participants.count", len(joins)),
		attribute.Int("participants.degraded", degraded),
	)
	if degraded > 0 || len(res.Warnings) > 0 {
		utils.Warn("participants: partial aggregation", map[string]any{
			"auction_id": auctionID,
			"degraded":   degraded,
			"warnings":   len(res.Warnings),
		})
	}

	return res, nil
}

// directory holds the pre-fetched profiles. A list that failed to load is not
// known, so ids missing from it are not reported individually.
type directory struct {
	farmers, buyers           map[string]model.Account
	farmersKnown, buyersKnown bool
}

func (a *Aggregator) participant(ctx context.Context, j model.JoinRecord, dir directory) Participant {
	p := Participant{Join: j, Bids: []BidView{}}

	if f, ok := dir.farmers[j.FarmerID]; ok {
		p.Farmer = &f
	} else if dir.farmersKnown {
		p.Warnings = append(p.Warnings, fmt.Sprintf("farmer %s not found", j.FarmerID))
	}

	var (
		item             model.InventoryItem
		bids             []model.Bid
		itemErr, bidsErr error
	)
	var wg sync.WaitGroup
	wg.Go(func() {
		item, itemErr = a.api.GetInventoryItem(ctx, j.InventoryID)
	})
	wg.Go(func() {
		bids, bidsErr = a.api.ListBidsForInventory(ctx, j.InventoryID)
	})
	wg.Wait()

	if itemErr != nil {
		p.Warnings = append(p.Warnings, fmt.Sprintf("inventory %s unavailable: %v", j.InventoryID, itemErr))
	} else {
		p.Inventory = &item
	}

	if bidsErr != nil {
		p.Warnings = append(p.Warnings, fmt.Sprintf("bids for inventory %s unavailable: %v", j.InventoryID, bidsErr))
		return p
	}

	unknown := map[string]bool{}
	for _, b := range bids {
		v := BidView{Bid: b}
		if buyer, ok := dir.buyers[b.BuyerID]; ok {
			v.Buyer = &buyer
		} else if dir.buyersKnown && !unknown[b.BuyerID] {
			unknown[b.BuyerID] = true
			p.Warnings = append(p.Warnings, fmt.Sprintf("buyer %s not found", b.BuyerID))
		}
		p.Bids = append(p.Bids, v)
	}
	if idx, ok := WinnerIndex(bids); ok {
		w := p.Bids[idx]
		p.Winner = &w
	}
	return p
}

// WinnerIndex returns the position of the highest bid. Equal top bids resolve
// to the first one received. It reports false for an empty slice.
func WinnerIndex(bids []model.Bid) (int, bool) {
	if len(bids) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(bids); i++ {
		if bids[i].CurrentBidPrice > bids[best].CurrentBidPrice {
			best = i
		}
	}
	return best, true
}

func indexAccounts(accounts []model.Account) map[string]model.Account {
	m := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := m[a.ID]; !dup {
			m[a.ID] = a
		}
	}
	return m
}

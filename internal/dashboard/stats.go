// Package dashboard derives the admin dashboard statistics from the account,
// auction, inventory and payment lists.
package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"spicegate/internal/backend"
	"spicegate/internal/clock"
	"spicegate/internal/lifecycle"
	model "spicegate/internal/models"
	"spicegate/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("spicegate/internal/dashboard")

const (
	recentRegistrations  = 5
	pendingVerifications = 4
)

// AccountStats counts one account list
type AccountStats struct {
	Total      int `json:"total"`
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
}

// InventoryStats counts inventory items by status
type InventoryStats struct {
	Total           int     `json:"total"`
	Available       int     `json:"available"`
	PendingAuction  int     `json:"pendingAuction"`
	Sold            int     `json:"sold"`
	AvailableWeight float64 `json:"availableWeight"`
}

// PaymentStats sums settled payments
type PaymentStats struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// Snapshot is the complete dashboard at one instant
type Snapshot struct {
	GeneratedAt          time.Time        `json:"generatedAt"`
	Farmers              AccountStats     `json:"farmers"`
	Buyers               AccountStats     `json:"buyers"`
	Auctions             lifecycle.Counts `json:"auctions"`
	Inventory            InventoryStats   `json:"inventory"`
	Payments             PaymentStats     `json:"payments"`
	RecentRegistrations  []model.Account  `json:"recentRegistrations"`
	PendingVerifications []model.Account  `json:"pendingVerifications"`
	Warnings             []string         `json:"warnings,omitempty"`
}

// Inputs are the lists a snapshot is computed from
type Inputs struct {
	Farmers   []model.Account
	Buyers    []model.Account
	Auctions  []model.Auction
	Inventory []model.InventoryItem
	Payments  []model.Payment
}

// Compute derives a snapshot from already-fetched lists. It has no side effects.
func Compute(now time.Time, in Inputs, classifier *lifecycle.Classifier) Snapshot {
	s := Snapshot{
		GeneratedAt: now,
		Farmers:     countAccounts(in.Farmers),
		Buyers:      countAccounts(in.Buyers),
		Auctions:    classifier.Partition(now, in.Auctions).Counts(),
	}

	for _, item := range in.Inventory {
		s.Inventory.Total++
		switch item.Status {
		case model.InventoryAvailable:
			s.Inventory.Available++
			s.Inventory.AvailableWeight += item.Weight
		case model.InventoryPendingAuction:
			s.Inventory.PendingAuction++
		case model.InventorySold:
			s.Inventory.Sold++
		}
	}

	for _, p := range in.Payments {
		s.Payments.Count++
		s.Payments.TotalAmount += p.Amount
	}

	all := make([]model.Account, 0, len(in.Farmers)+len(in.Buyers))
	all = append(all, in.Farmers...)
	all = append(all, in.Buyers...)

	recent := slices.Clone(all)
	slices.SortStableFunc(recent, func(a, b model.Account) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	s.RecentRegistrations = head(recent, recentRegistrations)

	var pending []model.Account
	for _, a := range all {
		if !a.IsVerified {
			pending = append(pending, a)
		}
	}
	slices.SortStableFunc(pending, func(a, b model.Account) int {
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})
	s.PendingVerifications = head(pending, pendingVerifications)

	return s
}

func countAccounts(accounts []model.Account) AccountStats {
	st := AccountStats{Total: len(accounts)}
	for _, a := range accounts {
		if a.IsVerified {
			st.Verified++
		}
	}
	st.Unverified = st.Total - st.Verified
	return st
}

func head(accounts []model.Account, n int) []model.Account {
	if len(accounts) > n {
		accounts = accounts[:n]
	}
	if accounts == nil {
		return []model.Account{}
	}
	return accounts
}

// Aggregator fetches the dashboard lists and computes snapshots
type Aggregator struct {
	api        backend.MarketplaceAPI
	classifier *lifecycle.Classifier
	clock      clock.Clock
}

// NewAggregator creates a new dashboard Aggregator
func NewAggregator(api backend.MarketplaceAPI, classifier *lifecycle.Classifier, clk clock.Clock) *Aggregator {
	return &Aggregator{api: api, classifier: classifier, clock: clk}
}

// Snapshot fetches every list concurrently and computes the dashboard.
//
// Farmers, buyers and auctions are required: if any of them fails the whole
// snapshot fails. Inventory and payments are optional sections.
func (a *Aggregator) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Aggregator.Snapshot")
	defer span.End()

	var (
		in                   Inputs
		inventoryErr, payErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if in.Farmers, err = a.api.ListFarmers(gctx); err != nil {
			return fmt.Errorf("list farmers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Buyers, err = a.api.ListBuyers(gctx); err != nil {
			return fmt.Errorf("list buyers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Auctions, err = a.api.ListAuctions(gctx); err != nil {
			return fmt.Errorf("list auctions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		in.Inventory, inventoryErr = a.api.ListInventory(gctx)
		return nil
	})
	g.Go(func() error {
		in.Payments, payErr = a.api.ListPayments(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return Snapshot{}, fmt.Errorf("dashboard: %w", err)
	}

	snap := Compute(a.clock.Now(), in, a.classifier)
	if inventoryErr != nil {
		snap.Warnings = append(snap.Warnings, "inventory unavailable: "+inventoryErr.Error())
	}
	if payErr != nil {
		snap.Warnings = append(snap.Warnings, "payments unavailable: "+payErr.Error())
	}
	if len(snap.Warnings) > 0 {
		utils.Warn("dashboard: optional sections missing", map[string]any{"warnings": snap.Warnings})
	}

	span.SetAttributes(
		attribute.Int("farmers.total", snap.Farmers.Total),
		attribute.Int("buyers.total", snap.Buyers.Total),
		attribute.Int("auctions.total", snap.Auctions.Total),
	)
	return snap, nil
}

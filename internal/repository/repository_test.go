package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new inventory item
func newItem(id, farmerID string, weight float64) model.InventoryItem {
	return model.InventoryItem{
		ID:        id,
		SpiceName: fmt.Sprintf("spice %s", id),
		Weight:    weight,
		Grade:     "A",
		Status:    model.InventoryPendingAuction,
		FarmerID:  farmerID,
	}
}

// Helper to create a new auction
func newAuction(id string) model.Auction {
	return model.Auction{
		ID:             id,
		Title:          "Auction " + id,
		SpiceType:      "pepper",
		StartDate:      "2025-01-01",
		EndDate:        "2025-01-03",
		IncrementValue: 10,
	}
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	repo.AddInventoryItem(newItem("inv1", "f1", 50))

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: model.Bid{ID: "b1", InventoryID: "inv1", BuyerID: "u1", CurrentBidPrice: 100}},
		{name: "generated_id", bid: model.Bid{InventoryID: "inv1", BuyerID: "u2", CurrentBidPrice: 110}},
		{name: "inventory_not_found", bid: model.Bid{ID: "b3", InventoryID: "invX", BuyerID: "u1"}, wantError: true},
	}

	for _, tc := range tests {
		err := repo.RecordBid(tc.bid)
		if tc.wantError {
			require.Error(t, err, tc.name)
			require.True(t, errors.Is(err, marketerrors.ErrNotFound), tc.name)
		} else {
			require.NoError(t, err, tc.name)
		}
	}

	bids, err := repo.ListBidsForInventory(context.Background(), "inv1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "b1", bids[0].ID)
	require.NotEmpty(t, bids[1].ID)

	_, err = repo.ListBidsForInventory(context.Background(), "invX")
	require.True(t, errors.Is(err, marketerrors.ErrNotFound))
}

// Test auction create/update/status/delete
func TestMemoryRepo_AuctionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	created, err := repo.CreateAuction(ctx, newAuction(""))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetAuction(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	upd := newAuction("ignored")
	upd.Title = "Renamed"
	updated, err := repo.UpdateAuction(ctx, created.ID, upd)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Renamed", updated.Title)

	status := model.StatusIntervene
	require.NoError(t, repo.SetAuctionStatus(ctx, created.ID, &status))
	status = model.StatusEnded // the stored status must not alias the caller's variable
	got, _ = repo.GetAuction(ctx, created.ID)
	require.True(t, got.HasStatus(model.StatusIntervene))

	require.NoError(t, repo.SetAuctionStatus(ctx, created.ID, nil))
	got, _ = repo.GetAuction(ctx, created.ID)
	require.Nil(t, got.Status)

	require.NoError(t, repo.AddJoinRecord(model.JoinRecord{AuctionID: created.ID, FarmerID: "f1", InventoryID: "inv1"}))
	require.NoError(t, repo.DeleteAuction(ctx, created.ID))

	_, err = repo.GetAuction(ctx, created.ID)
	require.True(t, errors.Is(err, marketerrors.ErrNotFound))
	_, err = repo.ListJoinRecords(ctx, created.ID)
	require.True(t, errors.Is(err, marketerrors.ErrNotFound))

	all, err := repo.ListAuctions(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	require.True(t, errors.Is(repo.DeleteAuction(ctx, created.ID), marketerrors.ErrNotFound))
	_, err = repo.UpdateAuction(ctx, "nope", upd)
	require.True(t, errors.Is(err, marketerrors.ErrNotFound))
	require.True(t, errors.Is(repo.SetAuctionStatus(ctx, "nope", nil), marketerrors.ErrNotFound))
	require.True(t, errors.Is(repo.AddJoinRecord(model.JoinRecord{AuctionID: "nope"}), marketerrors.ErrNotFound))
}

// Test ordering and roles of seeded data
func TestMemoryRepo_SeedOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	repo.AddFarmer(model.Account{ID: "f1", CreatedAt: now})
	repo.AddBuyer(model.Account{ID: "b1", CreatedAt: now})
	repo.AddInventoryItem(newItem("inv2", "f1", 20))
	repo.AddInventoryItem(newItem("inv1", "f1", 10))
	repo.AddInventoryItem(newItem("inv2", "f1", 25)) // replace keeps position
	repo.AddAuction(newAuction("a2"))
	repo.AddAuction(newAuction("a1"))
	repo.AddPayment(model.Payment{ID: "p1", Amount: 500})

	farmers, _ := repo.ListFarmers(ctx)
	require.Equal(t, model.RoleFarmer, farmers[0].Role)
	buyers, _ := repo.ListBuyers(ctx)
	require.Equal(t, model.RoleBuyer, buyers[0].Role)

	items, _ := repo.ListInventory(ctx)
	require.Len(t, items, 2)
	require.Equal(t, "inv2", items[0].ID)
	require.Equal(t, 25.0, items[0].Weight)

	auctions, _ := repo.ListAuctions(ctx)
	require.Equal(t, "a2", auctions[0].ID)
	require.Equal(t, "a1", auctions[1].ID)

	payments, _ := repo.ListPayments(ctx)
	require.Len(t, payments, 1)

	_, err := repo.GetInventoryItem(ctx, "missing")
	require.True(t, errors.Is(err, marketerrors.ErrNotFound))
}

// Test concurrent bids on one item are all recorded
func TestMemoryRepo_ConcurrentBids(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	repo.AddInventoryItem(newItem("inv1", "f1", 50))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.RecordBid(model.Bid{InventoryID: "inv1", BuyerID: fmt.Sprintf("u%d", i), CurrentBidPrice: float64(100 + i)})
		}(i)
	}
	wg.Wait()

	bids, err := repo.ListBidsForInventory(context.Background(), "inv1")
	require.NoError(t, err)
	require.Len(t, bids, workers)
}

package repository

import (
	"context"
	"fmt"
	"sync"

	"spicegate/internal/backend"
	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
	"spicegate/utils"
)

// MemoryRepo is a concurrency-safe in-memory implementation of backend.MarketplaceAPI.
// It stands in for the remote services in demo mode and in integration tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	farmers   []model.Account
	buyers    []model.Account
	inventory map[string]model.InventoryItem
	invOrder  []string
	auctions  map[string]model.Auction
	aucOrder  []string
	joins     map[string][]model.JoinRecord // key: auctionID -> value: join records in registration order
	bids      map[string][]model.Bid        // key: inventoryID -> value: bids in receipt order
	payments  []model.Payment
}

var _ backend.MarketplaceAPI = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		inventory: make(map[string]model.InventoryItem),
		auctions:  make(map[string]model.Auction),
		joins:     make(map[string][]model.JoinRecord),
		bids:      make(map[string][]model.Bid),
	}
}

// ListFarmers returns all farmer accounts
func (r *MemoryRepo) ListFarmers(ctx context.Context) ([]model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Account(nil), r.farmers...), nil
}

// ListBuyers returns all buyer accounts
func (r *MemoryRepo) ListBuyers(ctx context.Context) ([]model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Account(nil), r.buyers...), nil
}

// ListInventory returns all inventory items in insertion order
func (r *MemoryRepo) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.InventoryItem, 0, len(r.invOrder))
	for _, id := range r.invOrder {
		items = append(items, r.inventory[id])
	}
	return items, nil
}

// GetInventoryItem returns one inventory item
func (r *MemoryRepo) GetInventoryItem(ctx context.Context, inventoryID string) (model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.inventory[inventoryID]
	if !ok {
		return model.InventoryItem{}, fmt.Errorf("get inventory item %s: %w", inventoryID, marketerrors.ErrNotFound)
	}
	return item, nil
}

// ListBidsForInventory returns the bids for an item in receipt order
func (r *MemoryRepo) ListBidsForInventory(ctx context.Context, inventoryID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.inventory[inventoryID]; !ok {
		return nil, fmt.Errorf("list bids for inventory %s: %w", inventoryID, marketerrors.ErrNotFound)
	}
	return append([]model.Bid(nil), r.bids[inventoryID]...), nil
}

// ListAuctions returns all auctions in insertion order
func (r *MemoryRepo) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.aucOrder))
	for _, id := range r.aucOrder {
		auctions = append(auctions, r.auctions[id])
	}
	return auctions, nil
}

// GetAuction returns one auction
func (r *MemoryRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	return a, nil
}

// CreateAuction stores a new auction under a generated id
func (r *MemoryRepo) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	auction.ID = utils.GenerateID()
	r.AddAuction(auction)
	return auction, nil
}

// UpdateAuction replaces an existing auction, keeping its id
func (r *MemoryRepo) UpdateAuction(ctx context.Context, auctionID string, auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	auction.ID = auctionID
	r.auctions[auctionID] = auction
	return auction, nil
}

// DeleteAuction removes an auction and its join records
func (r *MemoryRepo) DeleteAuction(ctx context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	delete(r.auctions, auctionID)
	delete(r.joins, auctionID)
	for i, id := range r.aucOrder {
		if id == auctionID {
			r.aucOrder = append(r.aucOrder[:i], r.aucOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SetAuctionStatus sets or clears the manual status of an auction
func (r *MemoryRepo) SetAuctionStatus(ctx context.Context, auctionID string, status *model.AuctionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("set status of auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	if status != nil {
		s := *status
		status = &s
	}
	a.Status = status
	r.auctions[auctionID] = a
	return nil
}

// ListJoinRecords returns the join records of an auction
func (r *MemoryRepo) ListJoinRecords(ctx context.Context, auctionID string) ([]model.JoinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list joins for auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	return append([]model.JoinRecord(nil), r.joins[auctionID]...), nil
}

// ListPayments returns all payments
func (r *MemoryRepo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Payment(nil), r.payments...), nil
}

// AddFarmer seeds a farmer account.
func (r *MemoryRepo) AddFarmer(a model.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Role = model.RoleFarmer
	r.farmers = append(r.farmers, a)
}

// AddBuyer seeds a buyer account.
func (r *MemoryRepo) AddBuyer(a model.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Role = model.RoleBuyer
	r.buyers = append(r.buyers, a)
}

// AddInventoryItem seeds or replaces an inventory item.
func (r *MemoryRepo) AddInventoryItem(item model.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.inventory[item.ID]; !exists {
		r.invOrder = append(r.invOrder, item.ID)
	}
	r.inventory[item.ID] = item
}

// AddAuction seeds or replaces an auction.
func (r *MemoryRepo) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.auctions[a.ID]; !exists {
		r.aucOrder = append(r.aucOrder, a.ID)
	}
	r.auctions[a.ID] = a
}

// AddJoinRecord registers an inventory item into an auction.
func (r *MemoryRepo) AddJoinRecord(j model.JoinRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[j.AuctionID]; !ok {
		return fmt.Errorf("join auction %s: %w", j.AuctionID, marketerrors.ErrNotFound)
	}
	if j.ID == "" {
		j.ID = utils.GenerateID()
	}
	r.joins[j.AuctionID] = append(r.joins[j.AuctionID], j)
	return nil
}

// RecordBid appends a bid for an inventory item in receipt order.
func (r *MemoryRepo) RecordBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inventory[b.InventoryID]; !ok {
		return fmt.Errorf("record bid for inventory %s: %w", b.InventoryID, marketerrors.ErrNotFound)
	}
	if b.ID == "" {
		b.ID = utils.GenerateID()
	}
	r.bids[b.InventoryID] = append(r.bids[b.InventoryID], b)
	return nil
}

// AddPayment seeds a settled payment.
func (r *MemoryRepo) AddPayment(p model.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
}

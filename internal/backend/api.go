package backend

import (
	"context"

	model "spicegate/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_marketplace_api.go -package=backend

// MarketplaceAPI is the set of remote calls the gateway makes against the
// accounts and marketplace services
type MarketplaceAPI interface {
	ListFarmers(ctx context.Context) ([]model.Account, error)
	ListBuyers(ctx context.Context) ([]model.Account, error)

	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	GetInventoryItem(ctx context.Context, inventoryID string) (model.InventoryItem, error)
	ListBidsForInventory(ctx context.Context, inventoryID string) ([]model.Bid, error)

	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	UpdateAuction(ctx context.Context, auctionID string, auction model.Auction) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error
	SetAuctionStatus(ctx context.Context, auctionID string, status *model.AuctionStatus) error
	ListJoinRecords(ctx context.Context, auctionID string) ([]model.JoinRecord, error)

	ListPayments(ctx context.Context) ([]model.Payment, error)
}

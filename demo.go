package main

import (
	"fmt"
	"time"

	"spicegate/internal/lifecycle"
	model "spicegate/internal/models"
	"spicegate/internal/repository"
)

// prepopulateMarketplace adds sample accounts, lots, auctions and bids to the
// in-memory repo. Schedules are relative to now so every phase is represented.
func prepopulateMarketplace(repo *repository.MemoryRepo, now time.Time) error {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(lifecycle.DateLayout)
	}

	farmers := []model.Account{
		{ID: "farmer-1", Name: "Ravi Menon", Email: "ravi@example.com", IsVerified: true, CreatedAt: now.AddDate(0, -3, 0)},
		{ID: "farmer-2", Name: "Lakshmi Nair", Email: "lakshmi@example.com", IsVerified: true, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "farmer-3", Name: "Joseph Kurian", Email: "joseph@example.com", IsVerified: false, CreatedAt: now.AddDate(0, 0, -2)},
	}
	buyers := []model.Account{
		{ID: "buyer-1", Name: "Malabar Exports", Email: "buy@malabar.example.com", IsVerified: true, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: "buyer-2", Name: "Spice Route Traders", Email: "ops@spiceroute.example.com", IsVerified: true, CreatedAt: now.AddDate(0, 0, -20)},
		{ID: "buyer-3", Name: "Green Pod Foods", Email: "hello@greenpod.example.com", IsVerified: false, CreatedAt: now.AddDate(0, 0, -1)},
	}
	for _, f := range farmers {
		repo.AddFarmer(f)
	}
	for _, b := range buyers {
		repo.AddBuyer(b)
	}

	items := []model.InventoryItem{
		{ID: "inv-1", SpiceName: "Cardamom", Weight: 120, Grade: "AGEB", Status: model.InventoryPendingAuction, FarmerID: "farmer-1"},
		{ID: "inv-2", SpiceName: "Cardamom", Weight: 80, Grade: "AGB", Status: model.InventoryPendingAuction, FarmerID: "farmer-2"},
		{ID: "inv-3", SpiceName: "Black Pepper", Weight: 200, Grade: "TGSEB", Status: model.InventoryAvailable, FarmerID: "farmer-2"},
		{ID: "inv-4", SpiceName: "Saffron", Weight: 2.5, Grade: "Mongra", Status: model.InventorySold, FarmerID: "farmer-1"},
	}
	for _, item := range items {
		repo.AddInventoryItem(item)
	}

	auctions := []model.Auction{
		{ID: "auction-cardamom", Title: "Idukki Cardamom Lots", SpiceType: "cardamom", StartDate: day(-1), EndDate: day(1), StartTime: "09:00", EndTime: "18:00", IncrementValue: 10, CurrentBid: 1800},
		{ID: "auction-pepper", Title: "Wayanad Black Pepper", SpiceType: "pepper", StartDate: day(3), EndDate: day(5), IncrementValue: 5, CurrentBid: 550},
		{ID: "auction-saffron", Title: "Kashmir Saffron Harvest", SpiceType: "saffron", StartDate: day(-10), EndDate: day(-8), IncrementValue: 50, CurrentBid: 250000},
		{ID: "auction-turmeric", Title: "Erode Turmeric Fingers", SpiceType: "turmeric", StartDate: day(-2), EndDate: day(2), IncrementValue: 2, CurrentBid: 140, Status: model.StatusPtr(model.StatusIntervene)},
		{ID: "auction-clove", Title: "Kanyakumari Cloves", SpiceType: "clove", StartDate: day(1), EndDate: day(4), IncrementValue: 20, CurrentBid: 900, Status: model.StatusPtr(model.StatusEnded)},
	}
	for _, a := range auctions {
		repo.AddAuction(a)
	}

	joins := []model.JoinRecord{
		{ID: "join-1", AuctionID: "auction-cardamom", FarmerID: "farmer-1", InventoryID: "inv-1"},
		{ID: "join-2", AuctionID: "auction-cardamom", FarmerID: "farmer-2", InventoryID: "inv-2"},
		{ID: "join-3", AuctionID: "auction-saffron", FarmerID: "farmer-1", InventoryID: "inv-4"},
	}
	for _, j := range joins {
		if err := repo.AddJoinRecord(j); err != nil {
			return fmt.Errorf("join %s: %w", j.ID, err)
		}
	}

	bids := []model.Bid{
		{AuctionID: "auction-cardamom", InventoryID: "inv-1", BuyerID: "buyer-1", CurrentBidPrice: 1750, CreatedAt: now.Add(-3 * time.Hour)},
		{AuctionID: "auction-cardamom", InventoryID: "inv-1", BuyerID: "buyer-2", CurrentBidPrice: 1800, CreatedAt: now.Add(-2 * time.Hour)},
		{AuctionID: "auction-cardamom", InventoryID: "inv-2", BuyerID: "buyer-2", CurrentBidPrice: 1600, CreatedAt: now.Add(-90 * time.Minute)},
		{AuctionID: "auction-saffron", InventoryID: "inv-4", BuyerID: "buyer-1", CurrentBidPrice: 250000, CreatedAt: now.AddDate(0, 0, -9)},
	}
	for _, b := range bids {
		if err := repo.RecordBid(b); err != nil {
			return fmt.Errorf("bid on %s: %w", b.InventoryID, err)
		}
	}

	repo.AddPayment(model.Payment{
		ID: "payment-1", FarmerID: "farmer-1", BuyerID: "buyer-1", AuctionID: "auction-saffron",
		InventoryID: "inv-4", Amount: 625000, CreatedAt: now.AddDate(0, 0, -7),
	})
	return nil
}

package models

import "time"

// Role tells which account list a profile was fetched from
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

// Account represents a farmer or buyer profile owned by the accounts service
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	Role       Role      `json:"role,omitempty"`
}

// Inventory statuses reported by the marketplace service
const (
	InventoryAvailable      = "available"
	InventoryPendingAuction = "pending-auction"
	InventorySold           = "sold"
)

// InventoryItem represents a spice lot listed by a farmer
type InventoryItem struct {
	ID        string  `json:"id"`
	SpiceName string  `json:"spiceName"`
	Weight    float64 `json:"weight"`
	Grade     string  `json:"grade"`
	Status    string  `json:"status"`
	FarmerID  string  `json:"farmerId"`
}

// AuctionStatus is the manual status an admin sets on an auction.
// A nil status means the auction runs on its schedule alone.
type AuctionStatus string

const (
	StatusIntervene AuctionStatus = "Intervene"
	StatusEnded     AuctionStatus = "End Auction"
)

// StatusPtr returns a pointer to s, for building auctions and status patches.
func StatusPtr(s AuctionStatus) *AuctionStatus {
	return &s
}

// Auction represents a timed bidding event for a spice lot
type Auction struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	SpiceType      string         `json:"spiceType"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	StartTime      string         `json:"startTime,omitempty"`
	EndTime        string         `json:"endTime,omitempty"`
	IncrementValue float64        `json:"incrementValue"`
	CurrentBid     float64        `json:"currentBid"`
	Status         *AuctionStatus `json:"status"`
	Description    string         `json:"description,omitempty"`
}

// HasStatus reports whether the auction carries the given manual status
func (a Auction) HasStatus(s AuctionStatus) bool {
	return a.Status != nil && *a.Status == s
}

// JoinRecord is a farmer's registration of an inventory item into an auction
type JoinRecord struct {
	ID          string `json:"id"`
	AuctionID   string `json:"auctionId"`
	FarmerID    string `json:"farmerId"`
	InventoryID string `json:"inventoryId"`
}

// Bid represents a buyer's bid on an inventory item
type Bid struct {
	ID              string    `json:"id"`
	AuctionID       string    `json:"auctionId,omitempty"`
	InventoryID     string    `json:"inventoryId"`
	BuyerID         string    `json:"buyerId"`
	CurrentBidPrice float64   `json:"currentBidPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Payment links the parties of a settled auction lot to the amount paid
type Payment struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmerId"`
	BuyerID     string    `json:"buyerId"`
	AuctionID   string    `json:"auctionId"`
	InventoryID string    `json:"inventoryId"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"spicegate/internal/auctions"
	"spicegate/internal/backend"
	"spicegate/internal/clock"
	"spicegate/internal/dashboard"
	"spicegate/internal/health"
	"spicegate/internal/lifecycle"
	model "spicegate/internal/models"
	"spicegate/internal/participants"
	"spicegate/internal/repository"
	"spicegate/internal/server"
	"spicegate/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// refNow is the fixed instant every integration test runs at.
var refNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// testEnv is a router wired to real services over an in-memory marketplace.
type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	poller *dashboard.Poller
}

// SetupTestEnv initializes the router with in-memory repository for integration testing.
func SetupTestEnv(t *testing.T, seed func(t *testing.T, repo *repository.MemoryRepo)) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	if seed != nil {
		seed(t, repo)
	}

	router, poller := newRouter(repo)
	return &testEnv{router: router, repo: repo, poller: poller}
}

// newRouter wires the real services over api at refNow.
func newRouter(api backend.MarketplaceAPI) (*gin.Engine, *dashboard.Poller) {
	clk := clock.Mock{T: refNow}
	classifier := lifecycle.NewClassifier(time.UTC)
	dash := dashboard.NewAggregator(api, classifier, clk)
	poller := dashboard.NewPoller(dash, time.Minute)

	h := health.NewHandler(clk)
	h.SetReady(true)

	router := server.SetupRouter(server.Dependencies{
		Auctions:      auctions.NewService(api, classifier, clk),
		Participants:  participants.NewAggregator(api),
		Dashboard:     dash,
		LiveDashboard: poller,
		Health:        h,
	})
	return router, poller
}

// ExecuteRequestAndParse executes an HTTP request as the given user type and parses the envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, userType session.UserType, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userType != "" {
		req.Header.Set("Authorization", "Bearer it-"+string(userType))
		req.Header.Set(session.HeaderUserType, string(userType))
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// seedMarketplace adds one auction per phase plus participants around refNow.
func seedMarketplace(t *testing.T, repo *repository.MemoryRepo) {
	t.Helper()

	repo.AddFarmer(model.Account{ID: "f1", Name: "Ravi", IsVerified: true, CreatedAt: refNow.AddDate(0, -2, 0)})
	repo.AddFarmer(model.Account{ID: "f2", Name: "Lakshmi", IsVerified: false, CreatedAt: refNow.AddDate(0, 0, -3)})
	repo.AddBuyer(model.Account{ID: "b1", Name: "Malabar Exports", IsVerified: true, CreatedAt: refNow.AddDate(0, -1, 0)})
	repo.AddBuyer(model.Account{ID: "b2", Name: "Spice Route", IsVerified: false, CreatedAt: refNow.AddDate(0, 0, -1)})

	repo.AddInventoryItem(model.InventoryItem{ID: "inv1", SpiceName: "Cardamom", Weight: 100, Grade: "A", Status: model.InventoryPendingAuction, FarmerID: "f1"})
	repo.AddInventoryItem(model.InventoryItem{ID: "inv2", SpiceName: "Pepper", Weight: 40, Grade: "B", Status: model.InventoryAvailable, FarmerID: "f2"})

	repo.AddAuction(model.Auction{ID: "active", Title: "Cardamom Lots", SpiceType: "cardamom", StartDate: "2025-06-14", EndDate: "2025-06-16", IncrementValue: 10})
	repo.AddAuction(model.Auction{ID: "upcoming", Title: "Pepper Lots", SpiceType: "pepper", StartDate: "2025-06-20", EndDate: "2025-06-22", IncrementValue: 5})
	repo.AddAuction(model.Auction{ID: "completed", Title: "Saffron Lots", SpiceType: "saffron", StartDate: "2025-06-01", EndDate: "2025-06-02", IncrementValue: 50})
	repo.AddAuction(model.Auction{ID: "ended", Title: "Clove Lots", SpiceType: "clove", StartDate: "2025-06-20", EndDate: "2025-06-21", IncrementValue: 5, Status: model.StatusPtr(model.StatusEnded)})
	repo.AddAuction(model.Auction{ID: "broken", Title: "Broken Lots", SpiceType: "nutmeg", StartDate: "2025-06-30", EndDate: "2025-06-01", IncrementValue: 5})

	require.NoError(t, repo.AddJoinRecord(model.JoinRecord{ID: "j1", AuctionID: "active", FarmerID: "f1", InventoryID: "inv1"}))
	require.NoError(t, repo.AddJoinRecord(model.JoinRecord{ID: "j2", AuctionID: "active", FarmerID: "f2", InventoryID: "missing-lot"}))

	require.NoError(t, repo.RecordBid(model.Bid{ID: "bid1", InventoryID: "inv1", BuyerID: "b1", CurrentBidPrice: 1500, CreatedAt: refNow.Add(-2 * time.Hour)}))
	require.NoError(t, repo.RecordBid(model.Bid{ID: "bid2", InventoryID: "inv1", BuyerID: "b2", CurrentBidPrice: 1700, CreatedAt: refNow.Add(-time.Hour)}))
	require.NoError(t, repo.RecordBid(model.Bid{ID: "bid3", InventoryID: "inv1", BuyerID: "b1", CurrentBidPrice: 1700, CreatedAt: refNow.Add(-30 * time.Minute)}))

	repo.AddPayment(model.Payment{ID: "p1", FarmerID: "f1", BuyerID: "b1", AuctionID: "completed", InventoryID: "inv1", Amount: 2500, CreatedAt: refNow.AddDate(0, 0, -10)})
}

// ids returns the auction ids of one phase group in a list response.
func ids(t *testing.T, data map[string]any, group string) []string {
	t.Helper()
	var out []string
	for _, v := range data[group].([]any) {
		out = append(out, v.(map[string]any)["id"].(string))
	}
	return out
}

package integrationtests

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
	"spicegate/internal/repository"
	"spicegate/internal/session"
	"spicegate/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ListAuctions Tests
func TestListAuctions(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	for _, userType := range []session.UserType{session.Admin, session.Farmer, session.Buyer} {
		t.Run(string(userType), func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.router, userType, http.MethodGet, "/auctions", nil)
			require.Equal(t, http.StatusOK, w.Code)

			data := resp["data"].(map[string]any)
			require.Equal(t, []string{"active"}, ids(t, data, "active"))
			require.Equal(t, []string{"upcoming"}, ids(t, data, "upcoming"))
			require.Equal(t, []string{"completed", "ended"}, ids(t, data, "completed"))
			require.Equal(t, []string{"broken"}, ids(t, data, "malformed"))

			counts := data["counts"].(map[string]any)
			require.Equal(t, 5.0, counts["total"])
		})
	}

	t.Run("no_session", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, "", http.MethodGet, "/auctions", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// GetAuction Tests
func TestGetAuction(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	tests := []struct {
		name       string
		auctionID  string
		wantStatus int
		wantPhase  string
	}{
		{name: "Active", auctionID: "active", wantStatus: http.StatusOK, wantPhase: "active"},
		{name: "Upcoming", auctionID: "upcoming", wantStatus: http.StatusOK, wantPhase: "upcoming"},
		{name: "Ended_By_Status", auctionID: "ended", wantStatus: http.StatusOK, wantPhase: "completed"},
		{name: "Malformed_Schedule", auctionID: "broken", wantStatus: http.StatusUnprocessableEntity},
		{name: "Not_Found", auctionID: "nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.router, session.Farmer, http.MethodGet, "/auctions/"+tt.auctionID, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.Equal(t, tt.wantPhase, resp["data"].(map[string]any)["phase"])
			}
		})
	}
}

// CreateAuction and UpdateAuction Tests
func TestCreateAndUpdateAuction(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	req := helpers.AuctionRequest{
		Title:          "Nutmeg Lots",
		SpiceType:      "nutmeg",
		StartDate:      "2025-06-18",
		EndDate:        "2025-06-19",
		StartTime:      "10:00",
		EndTime:        "16:30",
		IncrementValue: 5,
		CurrentBid:     300,
	}

	resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodPost, "/auctions", req)
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	createdID := data["auction"].(map[string]any)["id"].(string)
	require.NotEmpty(t, createdID)
	require.Contains(t, ids(t, data["auctions"].(map[string]any), "upcoming"), createdID)

	t.Run("Buyer_Forbidden", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, session.Buyer, http.MethodPost, "/auctions", req)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("End_Before_Start", func(t *testing.T) {
		bad := req
		bad.EndDate = "2025-06-17"
		resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodPost, "/auctions", bad)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "end must be after start", resp["fields"].(map[string]any)["endDate"])
	})

	t.Run("Update_Keeps_Status", func(t *testing.T) {
		upd := req
		upd.Title = "Clove Lots (relisted)"
		upd.StartDate = "2025-06-20"
		upd.EndDate = "2025-06-21"
		resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodPut, "/auctions/ended", upd)
		require.Equal(t, http.StatusOK, w.Code)
		auction := resp["data"].(map[string]any)["auction"].(map[string]any)
		require.Equal(t, "Clove Lots (relisted)", auction["title"])
		require.Equal(t, "End Auction", auction["status"])
	})

	t.Run("Update_Missing", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodPut, "/auctions/nope", req)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// listFailingRepo commits every write but cannot list auctions.
type listFailingRepo struct {
	*repository.MemoryRepo
}

func (listFailingRepo) ListAuctions(context.Context) ([]model.Auction, error) {
	return nil, fmt.Errorf("backend marketplace: %w", marketerrors.ErrUpstream)
}

// A committed create is reported as created even when the list reload fails
func TestCreateAuction_ListRefreshFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	router, _ := newRouter(listFailingRepo{repo})

	req := helpers.AuctionRequest{
		Title:          "Nutmeg Lots",
		SpiceType:      "nutmeg",
		StartDate:      "2025-06-18",
		EndDate:        "2025-06-19",
		IncrementValue: 5,
	}

	resp, w := ExecuteRequestAndParse(t, router, session.Admin, http.MethodPost, "/auctions", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotContains(t, resp, "retryable")

	data := resp["data"].(map[string]any)
	require.NotEmpty(t, data["auction"].(map[string]any)["id"])
	list := data["auctions"].(map[string]any)
	require.Equal(t, true, list["stale"])
	require.NotEmpty(t, list["warnings"])

	stored, err := repo.ListAuctions(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

// Status transitions and guarded actions
func TestAuctionActions(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	steps := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Delete_Active_Rejected", method: http.MethodDelete, path: "/auctions/active", wantStatus: http.StatusConflict},
		{name: "End_Active_Rejected", method: http.MethodPost, path: "/auctions/active/end", wantStatus: http.StatusConflict},
		{name: "Intervene_Upcoming_Rejected", method: http.MethodPost, path: "/auctions/upcoming/intervene", wantStatus: http.StatusConflict},
		{name: "Restart_Not_Intervened", method: http.MethodPost, path: "/auctions/active/restart", wantStatus: http.StatusConflict},
		{name: "Intervene_Active", method: http.MethodPost, path: "/auctions/active/intervene", wantStatus: http.StatusOK},
		{name: "Intervene_Twice_Rejected", method: http.MethodPost, path: "/auctions/active/intervene", wantStatus: http.StatusConflict},
		{name: "Delete_Intervened_Still_Active", method: http.MethodDelete, path: "/auctions/active", wantStatus: http.StatusConflict},
		{name: "Restart_Intervened", method: http.MethodPost, path: "/auctions/active/restart", wantStatus: http.StatusOK},
		{name: "End_Upcoming", method: http.MethodPost, path: "/auctions/upcoming/end", wantStatus: http.StatusOK},
		{name: "Delete_Completed", method: http.MethodDelete, path: "/auctions/completed", wantStatus: http.StatusOK},
		{name: "Delete_Malformed", method: http.MethodDelete, path: "/auctions/broken", wantStatus: http.StatusOK},
		{name: "Delete_Missing", method: http.MethodDelete, path: "/auctions/completed", wantStatus: http.StatusNotFound},
	}

	// Steps share state and must run in order.
	for _, s := range steps {
		_, w := ExecuteRequestAndParse(t, env.router, session.Admin, s.method, s.path, nil)
		require.Equal(t, s.wantStatus, w.Code, s.name+": "+w.Body.String())
	}

	resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, []string{"active"}, ids(t, data, "active"))
	require.Empty(t, ids(t, data, "upcoming"))
	require.Equal(t, []string{"upcoming", "ended"}, ids(t, data, "completed"))
	require.Empty(t, ids(t, data, "malformed"))

	active := data["active"].([]any)[0].(map[string]any)
	require.Nil(t, active["status"])
	require.Equal(t, true, active["bidsOpen"])
}

// Participants Tests
func TestAuctionParticipants(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	t.Run("Farmer_Sees_Winner", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.router, session.Farmer, http.MethodGet, "/auctions/active/participants", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "participants retrieved with warnings", resp["message"])

		parts := resp["data"].(map[string]any)["participants"].([]any)
		require.Len(t, parts, 2)

		first := parts[0].(map[string]any)
		require.Equal(t, "Ravi", first["farmer"].(map[string]any)["name"])
		require.Equal(t, "Cardamom", first["inventory"].(map[string]any)["spiceName"])
		require.Len(t, first["bids"], 3)
		winner := first["winner"].(map[string]any)
		require.Equal(t, "bid2", winner["id"])
		require.Equal(t, 1700.0, winner["currentBidPrice"])
		require.Equal(t, "Spice Route", winner["buyer"].(map[string]any)["name"])

		second := parts[1].(map[string]any)
		require.Nil(t, second["inventory"])
		require.Nil(t, second["winner"])
		require.NotEmpty(t, second["warnings"])
	})

	t.Run("Buyer_Forbidden", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, session.Buyer, http.MethodGet, "/auctions/active/participants", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No_Joins", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/auctions/upcoming/participants", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["data"].(map[string]any)["participants"])
	})

	t.Run("Unknown_Auction", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/auctions/nope/participants", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Dashboard Tests
func TestDashboard(t *testing.T) {
	env := SetupTestEnv(t, seedMarketplace)

	resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, map[string]any{"total": 2.0, "verified": 1.0, "unverified": 1.0}, data["farmers"])
	require.Equal(t, map[string]any{"total": 2.0, "verified": 1.0, "unverified": 1.0}, data["buyers"])

	auctions := data["auctions"].(map[string]any)
	require.Equal(t, 1.0, auctions["active"])
	require.Equal(t, 1.0, auctions["upcoming"])
	require.Equal(t, 2.0, auctions["completed"])
	require.Equal(t, 1.0, auctions["malformed"])

	inventory := data["inventory"].(map[string]any)
	require.Equal(t, 2.0, inventory["total"])
	require.Equal(t, 40.0, inventory["availableWeight"])
	require.Equal(t, 2500.0, data["payments"].(map[string]any)["totalAmount"])

	recent := data["recentRegistrations"].([]any)
	require.Equal(t, "b2", recent[0].(map[string]any)["id"])
	pending := data["pendingVerifications"].([]any)
	require.Len(t, pending, 2)
	require.Equal(t, "f2", pending[0].(map[string]any)["id"])
	require.Equal(t, "b2", pending[1].(map[string]any)["id"])

	t.Run("Farmer_Forbidden", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, session.Farmer, http.MethodGet, "/dashboard", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Live_Before_And_After_Refresh", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/dashboard/live", nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, true, resp["retryable"])

		env.poller.Refresh(context.Background())

		resp, w = ExecuteRequestAndParse(t, env.router, session.Admin, http.MethodGet, "/dashboard/live", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "2025-06-15T12:00:00Z", resp["data"].(map[string]any)["generatedAt"])
	})
}

// Health Tests
func TestHealth(t *testing.T) {
	env := SetupTestEnv(t, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, w := ExecuteRequestAndParse(t, env.router, "", http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, []string{"ok", "ready"}, resp["status"])
	}
}

package lifecycle

import (
	"errors"
	"testing"
	"time"

	"spicegate/internal/marketerrors"
	"spicegate/internal/models"

	"github.com/stretchr/testify/require"
)

func newAuction(id, startDate, endDate string, status *models.AuctionStatus) models.Auction {
	return models.Auction{
		ID:        id,
		Title:     "Cardamom lot " + id,
		SpiceType: "cardamom",
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := NewClassifier(time.UTC)

	tests := []struct {
		name       string
		auction    models.Auction
		now        time.Time
		wantPhase  Phase
		intervened bool
		canDelete  bool
	}{
		{
			name:      "inside_window_is_active",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", nil),
			now:       at("2025-01-02 00:00"),
			wantPhase: PhaseActive,
		},
		{
			name:      "after_window_is_completed",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", nil),
			now:       at("2025-01-10 00:00"),
			wantPhase: PhaseCompleted,
			canDelete: true,
		},
		{
			name:      "before_window_is_upcoming",
			auction:   newAuction("a1", "2025-01-05", "2025-01-07", nil),
			now:       at("2025-01-02 00:00"),
			wantPhase: PhaseUpcoming,
			canDelete: true,
		},
		{
			name:      "ended_status_inside_window_is_completed",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", models.StatusPtr(models.StatusEnded)),
			now:       at("2025-01-02 00:00"),
			wantPhase: PhaseCompleted,
		},
		{
			name:      "ended_status_before_window_is_completed",
			auction:   newAuction("a1", "2025-02-01", "2025-02-03", models.StatusPtr(models.StatusEnded)),
			now:       at("2025-01-02 00:00"),
			wantPhase: PhaseCompleted,
			canDelete: true,
		},
		{
			name:       "intervened_inside_window_stays_active",
			auction:    newAuction("a1", "2025-01-01", "2025-01-03", models.StatusPtr(models.StatusIntervene)),
			now:        at("2025-01-02 12:00"),
			wantPhase:  PhaseActive,
			intervened: true,
		},
		{
			name:      "start_boundary_is_active",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", nil),
			now:       at("2025-01-01 00:00"),
			wantPhase: PhaseActive,
		},
		{
			name:      "end_boundary_is_active",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", nil),
			now:       at("2025-01-03 00:00"),
			wantPhase: PhaseActive,
		},
		{
			name:      "missing_end_time_defaults_to_midnight",
			auction:   newAuction("a1", "2025-01-01", "2025-01-03", nil),
			now:       at("2025-01-03 00:01"),
			wantPhase: PhaseCompleted,
			canDelete: true,
		},
		{
			name: "explicit_times_are_honoured",
			auction: models.Auction{
				ID: "a2", StartDate: "2025-01-03", StartTime: "09:30",
				EndDate: "2025-01-03", EndTime: "17:00",
			},
			now:       at("2025-01-03 09:00"),
			wantPhase: PhaseUpcoming,
			canDelete: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cl, err := c.Classify(tc.auction, tc.now)
			require.NoError(t, err)
			require.Equal(t, tc.wantPhase, cl.Phase)
			require.Equal(t, tc.intervened, cl.Intervened)
			require.Equal(t, tc.intervened, cl.CanRestart)
			require.Equal(t, tc.wantPhase == PhaseActive && !tc.intervened, cl.BidsOpen)
			require.Equal(t, tc.canDelete, cl.CanDelete)
		})
	}
}

func TestClassifier_ClassifyMalformed(t *testing.T) {
	t.Parallel()

	c := NewClassifier(nil)
	now := at("2025-01-02 00:00")

	tests := []struct {
		name    string
		auction models.Auction
	}{
		{name: "bad_start_date", auction: newAuction("a1", "01/01/2025", "2025-01-03", nil)},
		{name: "empty_end_date", auction: newAuction("a1", "2025-01-01", "", nil)},
		{name: "bad_time", auction: models.Auction{ID: "a1", StartDate: "2025-01-01", StartTime: "9am", EndDate: "2025-01-02"}},
		{name: "end_before_start", auction: newAuction("a1", "2025-01-05", "2025-01-03", nil)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.Classify(tc.auction, now)
			require.Error(t, err)
			require.True(t, errors.Is(err, marketerrors.ErrInvalidSchedule), "got %v", err)
		})
	}
}

// Every well-formed auction lands in exactly one phase for a fixed instant.
func TestClassifier_PhasesAreExclusive(t *testing.T) {
	t.Parallel()

	c := NewClassifier(time.UTC)
	statuses := []*models.AuctionStatus{nil, models.StatusPtr(models.StatusIntervene), models.StatusPtr(models.StatusEnded)}
	dates := []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"}

	var auctions []models.Auction
	for i, start := range dates {
		for _, end := range dates[i:] {
			for _, st := range statuses {
				auctions = append(auctions, newAuction(start+"/"+end, start, end, st))
			}
		}
	}

	for h := 0; h < 5*24; h += 6 {
		now := at("2024-12-31 00:00").Add(time.Duration(h) * time.Hour)
		p := c.Partition(now, auctions)

		require.Empty(t, p.Malformed)
		require.Equal(t, len(auctions), p.Counts().Total)

		ids := map[string]int{}
		for _, group := range [][]Entry{p.Upcoming, p.Active, p.Completed} {
			for _, e := range group {
				key := e.Auction.ID
				if e.Auction.Status != nil {
					key += string(*e.Auction.Status)
				}
				ids[key]++
			}
		}
		for key, n := range ids {
			require.Equal(t, 1, n, "auction %s classified %d times at %s", key, n, now)
		}
		for _, e := range p.Completed {
			require.False(t, e.Classification.BidsOpen)
		}
		for _, e := range p.Active {
			require.False(t, e.Auction.HasStatus(models.StatusEnded))
			require.True(t, e.Classification.Window.Contains(now))
		}
	}
}

func TestClassifier_Partition(t *testing.T) {
	t.Parallel()

	c := NewClassifier(time.UTC)
	now := at("2025-01-02 10:00")

	auctions := []models.Auction{
		newAuction("up", "2025-01-05", "2025-01-06", nil),
		newAuction("act", "2025-01-01", "2025-01-03", nil),
		newAuction("done", "2024-12-01", "2024-12-02", nil),
		newAuction("ended", "2025-01-01", "2025-01-03", models.StatusPtr(models.StatusEnded)),
		newAuction("bad", "2025-13-01", "2025-01-03", nil),
		newAuction("act2", "2025-01-02", "2025-01-02", nil),
	}
	auctions[5].EndTime = "23:59"

	p := c.Partition(now, auctions)

	require.Equal(t, Counts{Upcoming: 1, Active: 2, Completed: 2, Malformed: 1, Total: 6}, p.Counts())
	require.Equal(t, "act", p.Active[0].Auction.ID)
	require.Equal(t, "act2", p.Active[1].Auction.ID)
	require.Equal(t, "done", p.Completed[0].Auction.ID)
	require.Equal(t, "ended", p.Completed[1].Auction.ID)
	require.Equal(t, "bad", p.Malformed[0].Auction.ID)
	require.NotEmpty(t, p.Malformed[0].Reason)

	e, ok := p.Find("up")
	require.True(t, ok)
	require.Equal(t, PhaseUpcoming, e.Classification.Phase)

	_, ok = p.Find("bad")
	require.False(t, ok)
}

func TestClassifier_Location(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	c := NewClassifier(ist)

	a := models.Auction{ID: "a1", StartDate: "2025-01-02", StartTime: "10:00", EndDate: "2025-01-02", EndTime: "12:00"}

	// 05:00 UTC is 10:30 IST
	cl, err := c.Classify(a, time.Date(2025, 1, 2, 5, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, PhaseActive, cl.Phase)

	cl, err = NewClassifier(time.UTC).Classify(a, time.Date(2025, 1, 2, 5, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, PhaseUpcoming, cl.Phase)
}

func TestPhase_MarshalText(t *testing.T) {
	t.Parallel()

	for p, want := range map[Phase]string{
		PhaseUpcoming:  "upcoming",
		PhaseActive:    "active",
		PhaseCompleted: "completed",
		PhaseUnknown:   "unknown",
	} {
		got, err := p.MarshalText()
		require.NoError(t, err)
		require.Equal(t, want, string(got))
	}
}

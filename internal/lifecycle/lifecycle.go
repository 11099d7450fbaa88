// Package lifecycle classifies auctions into upcoming, active and completed
// phases by comparing a reference time with each auction's schedule.
//
// The classification is computed once per fetch and never persisted: the
// backend stores only the schedule and the manual status.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"spicegate/internal/marketerrors"
	"spicegate/internal/models"
)

// Layouts of the schedule fields stored by the marketplace service.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	defaultClockTime = "00:00"
)

// Phase is the derived lifecycle state of an auction.
type Phase int

const (
	PhaseUnknown Phase = iota
	PhaseUpcoming
	PhaseActive
	PhaseCompleted
)

// String returns the lowercase phase name used in API responses.
func (p Phase) String() string {
	switch p {
	case PhaseUpcoming:
		return "upcoming"
	case PhaseActive:
		return "active"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Window is the closed interval during which an auction is time-active.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Classification is the derived view of one auction at one instant.
type Classification struct {
	Phase  Phase
	Window Window

	// Intervened marks the "Intervene" sub-state of an active auction.
	Intervened bool
	// BidsOpen is true for an active auction that is not intervened.
	BidsOpen bool
	// CanRestart is true when clearing the status would resume the auction.
	CanRestart bool
	// CanDelete is false while the window contains the reference time.
	// The same guard applies to ending an auction.
	CanDelete bool
}

// Classifier interprets schedules in a fixed location.
type Classifier struct {
	loc *time.Location
}

// NewClassifier returns a classifier for schedules written in loc.
// A nil loc means UTC.
func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Classifier{loc: loc}
}

// Location returns the location schedules are interpreted in.
func (c *Classifier) Location() *time.Location {
	return c.loc
}

// Window parses the schedule of a. Missing times default to midnight.
func (c *Classifier) Window(a models.Auction) (Window, error) {
	start, err := c.parse(a.StartDate, a.StartTime)
	if err != nil {
		return Window{}, fmt.Errorf("auction %s start: %w", a.ID, err)
	}
	end, err := c.parse(a.EndDate, a.EndTime)
	if err != nil {
		return Window{}, fmt.Errorf("auction %s end: %w", a.ID, err)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("auction %s: %w - end %s before start %s",
			a.ID, marketerrors.ErrInvalidSchedule, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Window{Start: start, End: end}, nil
}

func (c *Classifier) parse(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = defaultClockTime
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w - %q %q", marketerrors.ErrInvalidSchedule, date, clock)
	}
	return t, nil
}

// Classify assigns exactly one phase to a at instant now.
//
// An "End Auction" status always yields PhaseCompleted. Otherwise the phase
// follows the window: before it upcoming, inside it active, after it completed.
func (c *Classifier) Classify(a models.Auction, now time.Time) (Classification, error) {
	w, err := c.Window(a)
	if err != nil {
		return Classification{}, err
	}

	cl := Classification{
		Window:    w,
		CanDelete: !w.Contains(now),
	}

	switch {
	case a.HasStatus(models.StatusEnded):
		cl.Phase = PhaseCompleted
	case now.After(w.End):
		cl.Phase = PhaseCompleted
	case now.Before(w.Start):
		cl.Phase = PhaseUpcoming
	default:
		cl.Phase = PhaseActive
		cl.Intervened = a.HasStatus(models.StatusIntervene)
		cl.BidsOpen = !cl.Intervened
		cl.CanRestart = cl.Intervened
	}
	return cl, nil
}

// Entry pairs an auction with its classification.
type Entry struct {
	Auction        models.Auction
	Classification Classification
}

// Malformed is an auction whose schedule could not be classified.
type Malformed struct {
	Auction models.Auction
	Reason  string
}

// Counts summarises a partition.
type Counts struct {
	Upcoming  int `json:"upcoming"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Malformed int `json:"malformed"`
	Total     int `json:"total"`
}

// Partition holds auctions split into disjoint phases, input order preserved.
type Partition struct {
	Now       time.Time
	Upcoming  []Entry
	Active    []Entry
	Completed []Entry
	Malformed []Malformed
}

// Counts returns the size of each phase.
func (p Partition) Counts() Counts {
	c := Counts{
		Upcoming:  len(p.Upcoming),
		Active:    len(p.Active),
		Completed: len(p.Completed),
		Malformed: len(p.Malformed),
	}
	c.Total = c.Upcoming + c.Active + c.Completed + c.Malformed
	return c
}

// Find returns the entry for the auction with the given id.
func (p Partition) Find(id string) (Entry, bool) {
	for _, group := range [][]Entry{p.Active, p.Upcoming, p.Completed} {
		for _, e := range group {
			if e.Auction.ID == id {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Partition classifies every auction at instant now.
func (c *Classifier) Partition(now time.Time, auctions []models.Auction) Partition {
	p := Partition{Now: now}
	for _, a := range auctions {
		cl, err := c.Classify(a, now)
		if err != nil {
			p.Malformed = append(p.Malformed, Malformed{Auction: a, Reason: err.Error()})
			continue
		}
		e := Entry{Auction: a, Classification: cl}
		switch cl.Phase {
		case PhaseUpcoming:
			p.Upcoming = append(p.Upcoming, e)
		case PhaseActive:
			p.Active = append(p.Active, e)
		default:
			p.Completed = append(p.Completed, e)
		}
	}
	return p
}

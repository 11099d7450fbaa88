package auctions

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"spicegate/internal/lifecycle"
	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
)

// Form limits for the auction editor
const (
	minTitleLen       = 3
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

// Draft is the editable part of an auction
type Draft struct {
	Title          string
	SpiceType      string
	StartDate      string
	EndDate        string
	StartTime      string
	EndTime        string
	IncrementValue float64
	CurrentBid     float64
	Description    string
}

// ValidationError carries one message per invalid form field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalidAuction
func (e *ValidationError) Unwrap() error {
	return marketerrors.ErrInvalidAuction
}

// auction converts the draft into the backend representation, keeping an existing status.
func (d Draft) auction(id string, status *model.AuctionStatus) model.Auction {
	return model.Auction{
		ID:             id,
		Title:          strings.TrimSpace(d.Title),
		SpiceType:      strings.TrimSpace(d.SpiceType),
		StartDate:      strings.TrimSpace(d.StartDate),
		EndDate:        strings.TrimSpace(d.EndDate),
		StartTime:      strings.TrimSpace(d.StartTime),
		EndTime:        strings.TrimSpace(d.EndTime),
		IncrementValue: d.IncrementValue,
		CurrentBid:     d.CurrentBid,
		Status:         status,
		Description:    strings.TrimSpace(d.Description),
	}
}

// validate returns a *ValidationError listing every invalid field, or nil.
func validate(d Draft, classifier *lifecycle.Classifier) error {
	fields := map[string]string{}

	title := strings.TrimSpace(d.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		fields["title"] = "title is required"
	case n < minTitleLen || n > maxTitleLen:
		fields["title"] = fmt.Sprintf("title must be %d to %d characters", minTitleLen, maxTitleLen)
	}

	if strings.TrimSpace(d.SpiceType) == "" {
		fields["spiceType"] = "spice type is required"
	}

	checkDate := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			fields[field] = "date is required"
			return
		}
		if _, err := time.Parse(lifecycle.DateLayout, strings.TrimSpace(v)); err != nil {
			fields[field] = "date must be YYYY-MM-DD"
		}
	}
	checkTime := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			return
		}
		if _, err := time.Parse(lifecycle.TimeLayout, strings.TrimSpace(v)); err != nil {
			fields[field] = "time must be HH:MM"
		}
	}
	checkDate("startDate", d.StartDate)
	checkDate("endDate", d.EndDate)
	checkTime("startTime", d.StartTime)
	checkTime("endTime", d.EndTime)

	scheduleOK := true
	for _, f := range []string{"startDate", "endDate", "startTime", "endTime"} {
		if _, bad := fields[f]; bad {
			scheduleOK = false
		}
	}
	if scheduleOK {
		w, err := classifier.Window(d.auction("", nil))
		if err != nil || !w.End.After(w.Start) {
			fields["endDate"] = "end must be after start"
		}
	}

	if d.IncrementValue <= 0 {
		fields["incrementValue"] = "increment value must be greater than zero"
	}
	if d.CurrentBid < 0 {
		fields["currentBid"] = "current bid cannot be negative"
	}
	if utf8.RuneCountInString(d.Description) > maxDescriptionLen {
		fields["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

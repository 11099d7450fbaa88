// Package auctions implements the admin auction screens: listing by phase,
// editing, and the guarded destructive and status actions.
package auctions

import (
	"context"
	"fmt"

	"spicegate/internal/backend"
	"spicegate/internal/clock"
	"spicegate/internal/lifecycle"
	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
	"spicegate/utils"
)

// Service defines the business logic for auction management.
// Every mutation is a single backend call followed by a full refetch.
type Service struct {
	api        backend.MarketplaceAPI
	classifier *lifecycle.Classifier
	clock      clock.Clock
}

// Refresh is the auction list reloaded after a committed mutation. When the
// reload fails the partition is empty and Warning says why. The mutation has
// already been applied by the backend and must not be repeated.
type Refresh struct {
	Partition lifecycle.Partition
	Warning   string
}

// Stale reports whether the reload after the mutation failed.
func (r Refresh) Stale() bool {
	return r.Warning != ""
}

// NewService creates a new Service instance
func NewService(api backend.MarketplaceAPI, classifier *lifecycle.Classifier, clk clock.Clock) *Service {
	return &Service{
		api:        api,
		classifier: classifier,
		clock:      clk,
	}
}

// List fetches all auctions and partitions them by phase
func (s *Service) List(ctx context.Context) (lifecycle.Partition, error) {
	auctions, err := s.api.ListAuctions(ctx)
	if err != nil {
		return lifecycle.Partition{}, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return s.classifier.Partition(s.clock.Now(), auctions), nil
}

// Get fetches one auction and classifies it
func (s *Service) Get(ctx context.Context, auctionID string) (lifecycle.Entry, error) {
	if auctionID == "" {
		return lifecycle.Entry{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidRequest)
	}
	a, err := s.api.GetAuction(ctx, auctionID)
	if err != nil {
		return lifecycle.Entry{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	cl, err := s.classifier.Classify(a, s.clock.Now())
	if err != nil {
		return lifecycle.Entry{}, fmt.Errorf("service: %w", err)
	}
	return lifecycle.Entry{Auction: a, Classification: cl}, nil
}

// Create validates the draft, stores it and returns the refreshed list
func (s *Service) Create(ctx context.Context, d Draft) (model.Auction, Refresh, error) {
	if err := validate(d, s.classifier); err != nil {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: %w", err)
	}

	created, err := s.api.CreateAuction(ctx, d.auction("", nil))
	if err != nil {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	utils.Info("auction created", map[string]any{"auction_id": created.ID, "title": created.Title})

	return created, s.refresh(ctx, "create", created.ID), nil
}

// Update validates the draft and replaces the auction, keeping its status
func (s *Service) Update(ctx context.Context, auctionID string, d Draft) (model.Auction, Refresh, error) {
	if auctionID == "" {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidRequest)
	}
	if err := validate(d, s.classifier); err != nil {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: %w", err)
	}

	current, err := s.api.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	updated, err := s.api.UpdateAuction(ctx, auctionID, d.auction(auctionID, current.Status))
	if err != nil {
		return model.Auction{}, Refresh{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	utils.Info("auction updated", map[string]any{"auction_id": auctionID})

	return updated, s.refresh(ctx, "update", auctionID), nil
}

// Delete removes an auction unless it is currently time-active
func (s *Service) Delete(ctx context.Context, auctionID string) (Refresh, error) {
	if err := s.guardInactive(ctx, auctionID, "delete"); err != nil {
		return Refresh{}, err
	}
	if err := s.api.DeleteAuction(ctx, auctionID); err != nil {
		return Refresh{}, fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}
	utils.Info("auction deleted", map[string]any{"auction_id": auctionID})
	return s.refresh(ctx, "delete", auctionID), nil
}

// End marks an auction "End Auction" unless it is currently time-active
func (s *Service) End(ctx context.Context, auctionID string) (Refresh, error) {
	if err := s.guardInactive(ctx, auctionID, "end"); err != nil {
		return Refresh{}, err
	}
	return s.setStatus(ctx, auctionID, model.StatusPtr(model.StatusEnded))
}

// Intervene pauses bid controls of an active auction
func (s *Service) Intervene(ctx context.Context, auctionID string) (Refresh, error) {
	_, cl, err := s.load(ctx, auctionID)
	if err != nil {
		return Refresh{}, err
	}
	if cl == nil || cl.Phase != lifecycle.PhaseActive || cl.Intervened {
		return Refresh{}, fmt.Errorf("service: %w - only a running active auction can be intervened", marketerrors.ErrInvalidTransition)
	}
	return s.setStatus(ctx, auctionID, model.StatusPtr(model.StatusIntervene))
}

// Restart clears the status of an intervened auction
func (s *Service) Restart(ctx context.Context, auctionID string) (Refresh, error) {
	a, _, err := s.load(ctx, auctionID)
	if err != nil {
		return Refresh{}, err
	}
	if !a.HasStatus(model.StatusIntervene) {
		return Refresh{}, fmt.Errorf("service: %w - auction %s is not intervened", marketerrors.ErrInvalidTransition, auctionID)
	}
	return s.setStatus(ctx, auctionID, nil)
}

func (s *Service) setStatus(ctx context.Context, auctionID string, status *model.AuctionStatus) (Refresh, error) {
	if err := s.api.SetAuctionStatus(ctx, auctionID, status); err != nil {
		return Refresh{}, fmt.Errorf("service: failed to set status of auction %s: %w", auctionID, err)
	}
	label := "none"
	if status != nil {
		label = string(*status)
	}
	utils.Info("auction status changed", map[string]any{"auction_id": auctionID, "status": label})
	return s.refresh(ctx, "status change", auctionID), nil
}

// refresh reloads the list once a mutation is committed. Its failure is only
// a warning: the caller must not see the mutation as failed and retry it.
func (s *Service) refresh(ctx context.Context, action, auctionID string) Refresh {
	p, err := s.List(ctx)
	if err != nil {
		utils.Warn("auction list refresh failed after "+action, map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return Refresh{
			Partition: lifecycle.Partition{Now: s.clock.Now()},
			Warning:   "auction list refresh failed: " + err.Error(),
		}
	}
	return Refresh{Partition: p}
}

// guardInactive refuses destructive actions while the auction window contains now.
// A malformed schedule has no window and is never active.
func (s *Service) guardInactive(ctx context.Context, auctionID, action string) error {
	_, cl, err := s.load(ctx, auctionID)
	if err != nil {
		return err
	}
	if cl != nil && !cl.CanDelete {
		return fmt.Errorf("service: cannot %s auction %s: %w", action, auctionID, marketerrors.ErrAuctionActive)
	}
	return nil
}

// load fetches and classifies an auction. The classification is nil when the
// schedule is malformed.
func (s *Service) load(ctx context.Context, auctionID string) (model.Auction, *lifecycle.Classification, error) {
	if auctionID == "" {
		return model.Auction{}, nil, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidRequest)
	}
	a, err := s.api.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	cl, err := s.classifier.Classify(a, s.clock.Now())
	if err != nil {
		return a, nil, nil
	}
	return a, &cl, nil
}

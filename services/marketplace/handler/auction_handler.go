package handler

import (
	"context"
	"net/http"

	"spicegate/internal/auctions"
	"spicegate/internal/lifecycle"
	model "spicegate/internal/models"
	"spicegate/services/marketplace/helpers"
	"spicegate/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	List(ctx context.Context) (lifecycle.Partition, error)
	Get(ctx context.Context, auctionID string) (lifecycle.Entry, error)
	Create(ctx context.Context, d auctions.Draft) (model.Auction, auctions.Refresh, error)
	Update(ctx context.Context, auctionID string, d auctions.Draft) (model.Auction, auctions.Refresh, error)
	Delete(ctx context.Context, auctionID string) (auctions.Refresh, error)
	End(ctx context.Context, auctionID string) (auctions.Refresh, error)
	Intervene(ctx context.Context, auctionID string) (auctions.Refresh, error)
	Restart(ctx context.Context, auctionID string) (auctions.Refresh, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	p, err := h.service.List(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", "failed to list auctions", err, nil)
		return
	}

	resp := helpers.NewPartitionResponse(p)
	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"upcoming":  resp.Counts.Upcoming,
		"active":    resp.Counts.Active,
		"completed": resp.Counts.Completed,
		"malformed": resp.Counts.Malformed,
	})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")
	entry, err := h.service.Get(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", "failed to get auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionView(entry), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"phase":      entry.Classification.Phase.String(),
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, refreshed, err := h.service.Create(c.Request.Context(), req.Draft())
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{"title": req.Title})
		return
	}

	resp := helpers.AuctionMutationResponse{Auction: created, Auctions: helpers.NewRefreshResponse(refreshed)}
	utils.JSONResponse(c, http.StatusCreated, resp, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"title":      created.Title,
		"stale_list": refreshed.Stale(),
	})
}

// UpdateAuctionHandler handles PUT /auctions/:id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")

	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	updated, refreshed, err := h.service.Update(c.Request.Context(), auctionID, req.Draft())
	if err != nil {
		helpers.RespondError(c, "UpdateAuctionHandler", "failed to update auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.AuctionMutationResponse{Auction: updated, Auctions: helpers.NewRefreshResponse(refreshed)}
	utils.JSONResponse(c, http.StatusOK, resp, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auctionID,
		"stale_list": refreshed.Stale(),
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	h.transition(c, "DeleteAuctionHandler", "auction deleted successfully", h.service.Delete)
}

// EndAuctionHandler handles POST /auctions/:id/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	h.transition(c, "EndAuctionHandler", "auction ended successfully", h.service.End)
}

// InterveneAuctionHandler handles POST /auctions/:id/intervene
func (h *AuctionHandler) InterveneAuctionHandler(c *gin.Context) {
	h.transition(c, "InterveneAuctionHandler", "auction intervened successfully", h.service.Intervene)
}

// RestartAuctionHandler handles POST /auctions/:id/restart
func (h *AuctionHandler) RestartAuctionHandler(c *gin.Context) {
	h.transition(c, "RestartAuctionHandler", "auction restarted successfully", h.service.Restart)
}

// transition runs an id-only action and answers with the refreshed list.
func (h *AuctionHandler) transition(c *gin.Context, handlerName, message string,
	action func(ctx context.Context, auctionID string) (auctions.Refresh, error)) {
	auctionID := c.Param("id")

	refreshed, err := action(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, handlerName, "action rejected", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRefreshResponse(refreshed), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"auction_id": auctionID,
		"stale_list": refreshed.Stale(),
	})
}

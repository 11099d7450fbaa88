package handler

import (
	"context"
	"net/http"

	"spicegate/internal/participants"
	"spicegate/services/marketplace/helpers"
	"spicegate/utils"

	"github.com/gin-gonic/gin"
)

type ParticipantServiceInterface interface {
	Aggregate(ctx context.Context, auctionID string) (participants.Result, error)
}

type ParticipantsHandler struct {
	service ParticipantServiceInterface
}

func NewParticipantsHandler(service ParticipantServiceInterface) *ParticipantsHandler {
	return &ParticipantsHandler{service: service}
}

// GetParticipantsHandler handles GET /auctions/:id/participants
func (h *ParticipantsHandler) GetParticipantsHandler(c *gin.Context) {
	auctionID := c.Param("id")
	res, err := h.service.Aggregate(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetParticipantsHandler", "failed to aggregate participants", err, map[string]any{"auction_id": auctionID})
		return
	}

	if res.Participants == nil {
		res.Participants = []participants.Participant{}
	}

	message := "participants retrieved successfully"
	if res.Degraded() {
		message = "participants retrieved with warnings"
	}
	utils.JSONResponse(c, http.StatusOK, res, message)
	helpers.LogSuccess("GetParticipantsHandler", message, map[string]any{
		"auction_id":   auctionID,
		"participants": len(res.Participants),
		"warnings":     len(res.Warnings),
	})
}

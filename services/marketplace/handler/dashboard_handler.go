package handler

import (
	"context"
	"net/http"

	"spicegate/internal/dashboard"
	"spicegate/services/marketplace/helpers"
	"spicegate/utils"

	"github.com/gin-gonic/gin"
)

type DashboardServiceInterface interface {
	Snapshot(ctx context.Context) (dashboard.Snapshot, error)
}

// LiveDashboardInterface serves the snapshot kept by the background poller.
type LiveDashboardInterface interface {
	Latest() (dashboard.Snapshot, error)
}

type DashboardHandler struct {
	service DashboardServiceInterface
	live    LiveDashboardInterface
}

func NewDashboardHandler(service DashboardServiceInterface, live LiveDashboardInterface) *DashboardHandler {
	return &DashboardHandler{service: service, live: live}
}

// GetDashboardHandler handles GET /dashboard
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "GetDashboardHandler", "failed to build dashboard", err, nil)
		return
	}
	h.respond(c, "GetDashboardHandler", snap)
}

// GetLiveDashboardHandler handles GET /dashboard/live
func (h *DashboardHandler) GetLiveDashboardHandler(c *gin.Context) {
	snap, err := h.live.Latest()
	if err != nil {
		helpers.RespondError(c, "GetLiveDashboardHandler", "no dashboard snapshot", err, nil)
		return
	}
	h.respond(c, "GetLiveDashboardHandler", snap)
}

func (h *DashboardHandler) respond(c *gin.Context, handlerName string, snap dashboard.Snapshot) {
	message := "dashboard retrieved successfully"
	if len(snap.Warnings) > 0 {
		message = "dashboard retrieved with warnings"
	}
	utils.JSONResponse(c, http.StatusOK, snap, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"generated_at": snap.GeneratedAt,
		"warnings":     len(snap.Warnings),
	})
}

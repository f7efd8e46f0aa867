// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorbridge/advisorbridge-backend/internal/services"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService  *services.DashboardService
	connectionService *services.ConnectionService
}

func NewDashboardHandler(
	dashboardService *services.DashboardService,
	connectionService *services.ConnectionService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:  dashboardService,
		connectionService: connectionService,
	}
}

// GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dash, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dash)
}

// GET /connections
func (h *DashboardHandler) ListConnections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conns, err := h.connectionService.ListForActor(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, conns)
}

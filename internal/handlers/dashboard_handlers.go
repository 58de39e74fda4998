package handlers

import (
	"net/http"

	"resto_pos_backend/internal/metrics"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the stats service read path.
type DashboardHandler struct {
	statsService services.StatsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ss services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: ss}
}

// GetDashboardStats returns today's sales rollup in the dashboard shape.
// When no rollup row exists yet for today, a fully zeroed shape comes back
// with HTTP 200; only a storage failure produces an error response.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	metrics.DashboardReads.Inc()

	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		utils.LogError(err, "GetDashboardStats: Error from statsService.GetDashboardStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch dashboard stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

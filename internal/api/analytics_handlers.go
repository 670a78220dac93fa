package api

import (
	"net/http"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// @Summary Analytics report
// @Description Applies the filter and returns summary stats, top/bottom rankings per dimension, combination rankings and chart series
// @Tags Analytics
// @Accept json
// @Produce json
// @Param filter body models.FilterSpec true "Filter specification; empty fields mean no constraint"
// @Success 200 {object} models.AnalyticsReport
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /api/v1/analytics [post]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	var filter models.FilterSpec
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.Report(filter))
}

// @Summary Summary statistics
// @Description Applies the filter and returns the headline cards: win rate, profit factor, average risk/reward, total P/L
// @Tags Analytics
// @Accept json
// @Produce json
// @Param filter body models.FilterSpec true "Filter specification; empty fields mean no constraint"
// @Success 200 {object} models.SummaryStats
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /api/v1/summary [post]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	var filter models.FilterSpec
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.Summary(filter))
}

package api

import (
	"net/http"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	tradeService service.TradeService
}

func NewSettingsHandler(tradeService service.TradeService) *SettingsHandler {
	return &SettingsHandler{tradeService: tradeService}
}

// @Summary Export the journal
// @Description Returns the full trade collection as a JSON array, field-for-field as stored
// @Tags Settings
// @Produce json
// @Success 200 {array} models.Trade
// @Router /api/v1/export [get]
func (h *SettingsHandler) ExportTrades(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.ExportTrades())
}

// @Summary Import a journal
// @Description Replaces the whole trade collection with the posted array, verbatim; tags and setups found on imported trades are added to the predefined lists
// @Tags Settings
// @Accept json
// @Produce json
// @Param trades body []models.Trade true "Trade array"
// @Success 200 {object} map[string]int "Number of trades imported"
// @Failure 400 {object} map[string]string "Payload is not an array of trades"
// @Router /api/v1/import [post]
func (h *SettingsHandler) ImportTrades(c *gin.Context) {
	var trades []models.Trade
	if err := c.ShouldBindJSON(&trades); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload is not an array of trades"})
		return
	}

	count := h.tradeService.ImportTrades(trades)
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

// @Summary List predefined tags
// @Tags Settings
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/settings/tags [get]
func (h *SettingsHandler) GetTags(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.GetPredefinedTags())
}

// @Summary Add a predefined tag
// @Tags Settings
// @Accept json
// @Produce json
// @Param tag body LabelRequest true "Tag"
// @Success 201 {object} map[string]string "Tag added"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /api/v1/settings/tags [post]
func (h *SettingsHandler) AddTag(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	h.tradeService.AddPredefinedTag(req.Name)
	c.JSON(http.StatusCreated, gin.H{"status": "Tag added"})
}

// @Summary Remove a predefined tag
// @Tags Settings
// @Produce json
// @Param name path string true "Tag"
// @Success 200 {object} map[string]string "Tag removed"
// @Router /api/v1/settings/tags/{name} [delete]
func (h *SettingsHandler) RemoveTag(c *gin.Context) {
	h.tradeService.RemovePredefinedTag(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"status": "Tag removed"})
}

// @Summary List predefined setups
// @Tags Settings
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/settings/setups [get]
func (h *SettingsHandler) GetSetups(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.GetPredefinedSetups())
}

// @Summary Add a predefined setup
// @Tags Settings
// @Accept json
// @Produce json
// @Param setup body LabelRequest true "Setup"
// @Success 201 {object} map[string]string "Setup added"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /api/v1/settings/setups [post]
func (h *SettingsHandler) AddSetup(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	h.tradeService.AddPredefinedSetup(req.Name)
	c.JSON(http.StatusCreated, gin.H{"status": "Setup added"})
}

// @Summary Remove a predefined setup
// @Tags Settings
// @Produce json
// @Param name path string true "Setup"
// @Success 200 {object} map[string]string "Setup removed"
// @Router /api/v1/settings/setups/{name} [delete]
func (h *SettingsHandler) RemoveSetup(c *gin.Context) {
	h.tradeService.RemovePredefinedSetup(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"status": "Setup removed"})
}

type LabelRequest struct {
	Name string `json:"name" binding:"required"`
}

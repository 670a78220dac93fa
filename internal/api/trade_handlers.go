package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/service"

	"github.com/gin-gonic/gin"
)

type TradeHandler struct {
	tradeService service.TradeService
}

func NewTradeHandler(tradeService service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// @Summary Record a new trade
// @Description Records a closed trade; profitLoss and profitLossPercentage are derived server-side
// @Tags Trades
// @Accept json
// @Produce json
// @Param trade body TradeRequest true "Trade data"
// @Success 201 {object} models.Trade
// @Failure 400 {object} map[string]string "Invalid JSON or parameters"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/v1/trades [post]
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	trade, err := h.tradeService.CreateTrade(req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// @Summary List trades
// @Description Retrieves every trade in the journal, in insertion order
// @Tags Trades
// @Produce json
// @Success 200 {array} models.Trade
// @Router /api/v1/trades [get]
func (h *TradeHandler) GetAllTrades(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.GetAllTrades())
}

// @Summary Get trade by ID
// @Description Retrieves one trade by its identifier
// @Tags Trades
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} models.Trade
// @Failure 404 {object} map[string]string "Trade not found"
// @Router /api/v1/trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	trade, err := h.tradeService.GetTrade(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trade"})
		return
	}
	if trade == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		return
	}

	c.JSON(http.StatusOK, trade)
}

// @Summary Update a trade
// @Description Full-field update; derived P/L fields are recomputed from the new values
// @Tags Trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID"
// @Param trade body TradeRequest true "Trade data"
// @Success 200 {object} models.Trade
// @Failure 400 {object} map[string]string "Invalid JSON or parameters"
// @Failure 404 {object} map[string]string "Trade not found"
// @Router /api/v1/trades/{id} [put]
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	trade, err := h.tradeService.UpdateTrade(c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrTradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trade)
}

// @Summary Delete a trade
// @Description Removes a trade from the journal
// @Tags Trades
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} map[string]string "Trade deleted"
// @Failure 404 {object} map[string]string "Trade not found"
// @Router /api/v1/trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	if err := h.tradeService.DeleteTrade(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Trade deleted"})
}

type TradeRequest struct {
	EntryDate    time.Time             `json:"entryDate" binding:"required"`
	ExitDate     time.Time             `json:"exitDate" binding:"required"`
	Instrument   string                `json:"instrument" binding:"required"`
	Direction    models.TradeDirection `json:"direction" binding:"required,oneof=LONG SHORT"`
	EntryPrice   float64               `json:"entryPrice" binding:"omitempty,gte=0"`
	ExitPrice    float64               `json:"exitPrice" binding:"omitempty,gte=0"`
	StopLoss     float64               `json:"stopLoss" binding:"omitempty,gte=0"`
	TakeProfit   float64               `json:"takeProfit" binding:"omitempty,gte=0"`
	PositionSize float64               `json:"positionSize" binding:"omitempty,gte=0"`
	Profit       float64               `json:"profit"`
	Commissions  float64               `json:"commissions"`
	SwapsFees    float64               `json:"swapsFees"`
	Setup        string                `json:"setup"`
	Tags         []string              `json:"tags"`
	Notes        string                `json:"notes"`
	Screenshots  []string              `json:"screenshots"`
}

func (r TradeRequest) toInput() models.TradeInput {
	return models.TradeInput{
		EntryDate:    r.EntryDate,
		ExitDate:     r.ExitDate,
		Instrument:   r.Instrument,
		Direction:    r.Direction,
		EntryPrice:   r.EntryPrice,
		ExitPrice:    r.ExitPrice,
		StopLoss:     r.StopLoss,
		TakeProfit:   r.TakeProfit,
		PositionSize: r.PositionSize,
		Profit:       r.Profit,
		Commissions:  r.Commissions,
		SwapsFees:    r.SwapsFees,
		Setup:        r.Setup,
		Tags:         r.Tags,
		Notes:        r.Notes,
		Screenshots:  r.Screenshots,
	}
}

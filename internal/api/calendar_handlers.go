package api

import (
	"net/http"
	"time"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

type CalendarRequest struct {
	Year   int               `json:"year" binding:"required"`
	Month  time.Month        `json:"month" binding:"required,gte=1,lte=12"`
	Filter models.FilterSpec `json:"filter"`
}

// @Summary Calendar month grid
// @Description Returns the displayed month padded to whole weeks, one cell per day with that day's P/L, risk/reward and trade count
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body CalendarRequest true "Year, month and optional filter"
// @Success 200 {array} models.CalendarDay
// @Failure 400 {object} map[string]string "Invalid JSON or parameters"
// @Router /api/v1/calendar [post]
func (h *CalendarHandler) GetMonthGrid(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	c.JSON(http.StatusOK, h.calendarService.MonthGrid(req.Filter, req.Year, req.Month))
}

// @Summary Metrics for one day
// @Description Returns the day's P/L, average risk/reward and trade count, or 404 when no trade exited that day
// @Tags Calendar
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} models.DayMetric
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No trades on that day"
// @Router /api/v1/calendar/day [get]
func (h *CalendarHandler) GetDayMetric(c *gin.Context) {
	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	metric := h.calendarService.DayMetric(models.FilterSpec{}, day)
	if metric == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No trades on that day"})
		return
	}

	c.JSON(http.StatusOK, metric)
}

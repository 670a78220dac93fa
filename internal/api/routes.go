package api

import (
	"net/http"

	"github.com/borgjake1/TradingJournal-Test/internal/config"
	"github.com/borgjake1/TradingJournal-Test/internal/service"
	"github.com/borgjake1/TradingJournal-Test/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, tradeService service.TradeService, analyticsService service.AnalyticsService, calendarService service.CalendarService, wsHandler *ws.WebSocketHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	tradeHandler := NewTradeHandler(tradeService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	calendarHandler := NewCalendarHandler(calendarService)
	settingsHandler := NewSettingsHandler(tradeService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))
	r.GET("/docs/swagger.json", func(c *gin.Context) {
		c.File("docs/swagger.json")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/trades", tradeHandler.CreateTrade)
		v1.GET("/trades", tradeHandler.GetAllTrades)
		v1.GET("/trades/:id", tradeHandler.GetTrade)
		v1.PUT("/trades/:id", tradeHandler.UpdateTrade)
		v1.DELETE("/trades/:id", tradeHandler.DeleteTrade)

		v1.POST("/analytics", analyticsHandler.GetReport)
		v1.POST("/summary", analyticsHandler.GetSummary)

		v1.POST("/calendar", calendarHandler.GetMonthGrid)
		v1.GET("/calendar/day", calendarHandler.GetDayMetric)

		v1.GET("/export", settingsHandler.ExportTrades)
		v1.POST("/import", settingsHandler.ImportTrades)

		settings := v1.Group("/settings")
		{
			settings.GET("/tags", settingsHandler.GetTags)
			settings.POST("/tags", settingsHandler.AddTag)
			settings.DELETE("/tags/:name", settingsHandler.RemoveTag)
			settings.GET("/setups", settingsHandler.GetSetups)
			settings.POST("/setups", settingsHandler.AddSetup)
			settings.DELETE("/setups/:name", settingsHandler.RemoveSetup)
		}
	}

	r.GET("/ws", wsHandler.HandleConnection)
}

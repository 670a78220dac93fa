package main

import (
	"fmt"
	"os"

	"github.com/borgjake1/TradingJournal-Test/internal/api"
	"github.com/borgjake1/TradingJournal-Test/internal/config"
	"github.com/borgjake1/TradingJournal-Test/internal/middleware"
	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/repository"
	"github.com/borgjake1/TradingJournal-Test/internal/service"
	"github.com/borgjake1/TradingJournal-Test/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	hub := ws.NewHub()
	go hub.Run()

	wsHandler := ws.NewWebSocketHandler(hub)

	tradeRepo := repository.NewTradeRepository()
	tradeRepo.OnChange(func(update models.JournalUpdate) {
		hub.BroadcastUpdate(&update)
	})

	tradeService := service.NewTradeService(tradeRepo)
	analyticsService := service.NewAnalyticsService(tradeRepo)
	calendarService := service.NewCalendarService(tradeRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	api.SetupRoutes(r, cfg, tradeService, analyticsService, calendarService, wsHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	log.Info().Str("addr", addr).Msg("Starting server")
	log.Info().Str("url", cfg.BaseURL+"/ws").Msg("WebSocket endpoint")
	log.Info().Str("url", cfg.BaseURL+"/swagger/index.html").Msg("Swagger UI")

	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

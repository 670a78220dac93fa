package service

import (
	"errors"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/repository"

	"github.com/google/uuid"
)

var ErrTradeNotFound = errors.New("trade not found")

type TradeService interface {
	CreateTrade(input models.TradeInput) (*models.Trade, error)
	UpdateTrade(id string, input models.TradeInput) (*models.Trade, error)
	DeleteTrade(id string) error
	GetTrade(id string) (*models.Trade, error)
	GetAllTrades() []models.Trade

	ImportTrades(trades []models.Trade) int
	ExportTrades() []models.Trade

	GetPredefinedTags() []string
	AddPredefinedTag(tag string)
	RemovePredefinedTag(tag string)
	GetPredefinedSetups() []string
	AddPredefinedSetup(setup string)
	RemovePredefinedSetup(setup string)
}

type tradeService struct {
	tradeRepo repository.TradeRepository
}

func NewTradeService(tradeRepo repository.TradeRepository) TradeService {
	return &tradeService{tradeRepo: tradeRepo}
}

func (s *tradeService) CreateTrade(input models.TradeInput) (*models.Trade, error) {
	trade := tradeFromInput(uuid.New().String(), input)
	ComputeDerivedFields(trade)
	if err := s.tradeRepo.SaveTrade(trade); err != nil {
		return nil, err
	}
	return trade, nil
}

// UpdateTrade replaces every user-supplied field of the stored trade and
// recomputes the derived P/L fields from the merged record.
func (s *tradeService) UpdateTrade(id string, input models.TradeInput) (*models.Trade, error) {
	existing, err := s.tradeRepo.GetTradeByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTradeNotFound
	}

	trade := tradeFromInput(id, input)
	ComputeDerivedFields(trade)
	if err := s.tradeRepo.SaveTrade(trade); err != nil {
		return nil, err
	}
	return trade, nil
}

func (s *tradeService) DeleteTrade(id string) error {
	if !s.tradeRepo.DeleteTrade(id) {
		return ErrTradeNotFound
	}
	return nil
}

func (s *tradeService) GetTrade(id string) (*models.Trade, error) {
	return s.tradeRepo.GetTradeByID(id)
}

func (s *tradeService) GetAllTrades() []models.Trade {
	return s.tradeRepo.GetAllTrades()
}

// ImportTrades replaces the whole collection verbatim: no merge, no dedup,
// and no recomputation of stored P/L fields. Tags and setups seen on the
// imported trades are folded into the predefined lists.
func (s *tradeService) ImportTrades(trades []models.Trade) int {
	s.tradeRepo.ReplaceAll(trades)

	for _, trade := range trades {
		for _, tag := range trade.Tags {
			s.tradeRepo.AddPredefinedTag(tag)
		}
		if trade.Setup != "" {
			s.tradeRepo.AddPredefinedSetup(trade.Setup)
		}
	}
	return len(trades)
}

func (s *tradeService) ExportTrades() []models.Trade {
	return s.tradeRepo.GetAllTrades()
}

func (s *tradeService) GetPredefinedTags() []string {
	return s.tradeRepo.GetPredefinedTags()
}

func (s *tradeService) AddPredefinedTag(tag string) {
	s.tradeRepo.AddPredefinedTag(tag)
}

func (s *tradeService) RemovePredefinedTag(tag string) {
	s.tradeRepo.RemovePredefinedTag(tag)
}

func (s *tradeService) GetPredefinedSetups() []string {
	return s.tradeRepo.GetPredefinedSetups()
}

func (s *tradeService) AddPredefinedSetup(setup string) {
	s.tradeRepo.AddPredefinedSetup(setup)
}

func (s *tradeService) RemovePredefinedSetup(setup string) {
	s.tradeRepo.RemovePredefinedSetup(setup)
}

func tradeFromInput(id string, input models.TradeInput) *models.Trade {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	screenshots := input.Screenshots
	if screenshots == nil {
		screenshots = []string{}
	}

	return &models.Trade{
		ID:           id,
		EntryDate:    input.EntryDate,
		ExitDate:     input.ExitDate,
		Instrument:   input.Instrument,
		Direction:    input.Direction,
		EntryPrice:   input.EntryPrice,
		ExitPrice:    input.ExitPrice,
		StopLoss:     input.StopLoss,
		TakeProfit:   input.TakeProfit,
		PositionSize: input.PositionSize,
		Profit:       input.Profit,
		Commissions:  input.Commissions,
		SwapsFees:    input.SwapsFees,
		Setup:        input.Setup,
		Tags:         tags,
		Notes:        input.Notes,
		Screenshots:  screenshots,
	}
}

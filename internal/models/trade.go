package models

import (
	"time"
)

type Trade struct {
	ID                   string         `json:"id"`
	EntryDate            time.Time      `json:"entryDate"`
	ExitDate             time.Time      `json:"exitDate"`
	Instrument           string         `json:"instrument"`
	Direction            TradeDirection `json:"direction"`
	EntryPrice           float64        `json:"entryPrice"`
	ExitPrice            float64        `json:"exitPrice"`
	StopLoss             float64        `json:"stopLoss"`
	TakeProfit           float64        `json:"takeProfit"`
	PositionSize         float64        `json:"positionSize"`
	Profit               float64        `json:"profit"`
	ProfitLoss           float64        `json:"profitLoss"`
	ProfitLossPercentage float64        `json:"profitLossPercentage"`
	Commissions          float64        `json:"commissions"`
	SwapsFees            float64        `json:"swapsFees"`
	Setup                string         `json:"setup"`
	Tags                 []string       `json:"tags"`
	Notes                string         `json:"notes"`
	Screenshots          []string       `json:"screenshots"`
}

// TradeInput carries every user-supplied trade field. ProfitLoss and
// ProfitLossPercentage are intentionally absent: they are always derived,
// never accepted as input.
type TradeInput struct {
	EntryDate    time.Time      `json:"entryDate"`
	ExitDate     time.Time      `json:"exitDate"`
	Instrument   string         `json:"instrument"`
	Direction    TradeDirection `json:"direction"`
	EntryPrice   float64        `json:"entryPrice"`
	ExitPrice    float64        `json:"exitPrice"`
	StopLoss     float64        `json:"stopLoss"`
	TakeProfit   float64        `json:"takeProfit"`
	PositionSize float64        `json:"positionSize"`
	Profit       float64        `json:"profit"`
	Commissions  float64        `json:"commissions"`
	SwapsFees    float64        `json:"swapsFees"`
	Setup        string         `json:"setup"`
	Tags         []string       `json:"tags"`
	Notes        string         `json:"notes"`
	Screenshots  []string       `json:"screenshots"`
}

type TradeDirection string

const (
	DirectionLong  TradeDirection = "LONG"
	DirectionShort TradeDirection = "SHORT"
)

// FilterSpec narrows a trade collection. A zero/empty field means no
// constraint on that dimension. The date range is only active when both
// bounds are set and matches the exit date inclusively (dashboards are
// organized by when a trade closed, not when it opened).
type FilterSpec struct {
	DateRange  DateRange      `json:"dateRange"`
	Instrument string         `json:"instrument"`
	Direction  TradeDirection `json:"direction"`
	Tags       []string       `json:"tags"`
	Setup      string         `json:"setup"`
}

type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

package models

import "time"

// ProfitabilityMetric is one group of the rank-by-dimension views: the group
// value, its summed P/L and how many trades contributed to it.
type ProfitabilityMetric struct {
	Value      string  `json:"value"`
	ProfitLoss float64 `json:"profitLoss"`
	TradeCount int     `json:"tradeCount"`
}

// CombinedMetric is a ProfitabilityMetric keyed on the full
// (instrument, direction, setup, tag) combination.
type CombinedMetric struct {
	Instrument string         `json:"instrument"`
	Direction  TradeDirection `json:"direction"`
	Setup      string         `json:"setup"`
	Tag        string         `json:"tag"`
	ProfitLoss float64        `json:"profitLoss"`
	TradeCount int            `json:"tradeCount"`
}

// DayMetric is the calendar cell payload for one trading day. RR is the
// average of the per-trade risk/reward ratios, not a ratio of sums.
type DayMetric struct {
	PnL        float64 `json:"pnl"`
	RR         float64 `json:"rr"`
	TradeCount int     `json:"tradeCount"`
}

// CalendarDay is one cell of a month grid. Metrics is nil on days without
// trades so callers can tell "no trades" from "trades summing to zero".
type CalendarDay struct {
	Date           time.Time  `json:"date"`
	InCurrentMonth bool       `json:"inCurrentMonth"`
	Metrics        *DayMetric `json:"metrics,omitempty"`
}

// SummaryStats are the headline cards. ProfitFactor is reported as 0 when
// there are no losing trades, matching the journal's historical behavior.
type SummaryStats struct {
	WinRate       float64 `json:"winRate"`
	ProfitFactor  float64 `json:"profitFactor"`
	AvgRiskReward float64 `json:"avgRiskReward"`
	TotalPnL      float64 `json:"totalPnl"`
	TradeCount    int     `json:"tradeCount"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
}

type InstrumentPnL struct {
	Instrument string  `json:"instrument"`
	PnL        float64 `json:"pnl"`
}

type DimensionRankings struct {
	Instruments []ProfitabilityMetric `json:"instruments"`
	Directions  []ProfitabilityMetric `json:"directions"`
	Setups      []ProfitabilityMetric `json:"setups"`
	Tags        []ProfitabilityMetric `json:"tags"`
}

// AnalyticsReport bundles everything the analytics view renders from one
// filtered snapshot of the journal.
type AnalyticsReport struct {
	Summary                     SummaryStats      `json:"summary"`
	MostProfitable              DimensionRankings `json:"mostProfitable"`
	LeastProfitable             DimensionRankings `json:"leastProfitable"`
	MostProfitableCombinations  []CombinedMetric  `json:"mostProfitableCombinations"`
	LeastProfitableCombinations []CombinedMetric  `json:"leastProfitableCombinations"`
	PnLByInstrument             []InstrumentPnL   `json:"pnlByInstrument"`
}

package service

import (
	"math"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
)

// SafeRatio is the single division policy for every ratio in the journal:
// a zero, NaN or infinite denominator (or result) yields fallback instead of
// propagating NaN/Inf into the dashboards.
func SafeRatio(numerator, denominator, fallback float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return fallback
	}
	ratio := numerator / denominator
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return fallback
	}
	return ratio
}

type ProfitLossResult struct {
	ProfitLoss           float64 `json:"profitLoss"`
	ProfitLossPercentage float64 `json:"profitLossPercentage"`
}

// ComputeProfitLoss derives the net P/L fields from raw trade inputs. It is
// total: the percentage falls back to 0 when entryPrice*positionSize is zero.
func ComputeProfitLoss(profit, commissions, swapsFees, entryPrice, positionSize float64) ProfitLossResult {
	netProfitLoss := profit + commissions + swapsFees
	return ProfitLossResult{
		ProfitLoss:           netProfitLoss,
		ProfitLossPercentage: SafeRatio(netProfitLoss, entryPrice*positionSize, 0) * 100,
	}
}

// ComputeDerivedFields recomputes a trade's derived P/L fields in place.
// Invoked on every create and update so the stored values can never drift
// from their inputs.
func ComputeDerivedFields(trade *models.Trade) {
	result := ComputeProfitLoss(trade.Profit, trade.Commissions, trade.SwapsFees, trade.EntryPrice, trade.PositionSize)
	trade.ProfitLoss = result.ProfitLoss
	trade.ProfitLossPercentage = result.ProfitLossPercentage
}

// riskReward is the per-trade R multiple, |tp-entry| / |entry-sl|. A trade
// with its stop at the entry price has no measurable risk and counts as 0.
func riskReward(trade models.Trade) float64 {
	reward := math.Abs(trade.TakeProfit - trade.EntryPrice)
	risk := math.Abs(trade.EntryPrice - trade.StopLoss)
	return SafeRatio(reward, risk, 0)
}

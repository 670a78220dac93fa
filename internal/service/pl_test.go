package service

import (
	"math"
	"testing"

	"github.com/borgjake1/TradingJournal-Test/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeProfitLoss(t *testing.T) {
	result := ComputeProfitLoss(100, -5, -2, 1.1, 10000)

	assert.InDelta(t, 93, result.ProfitLoss, 1e-9)
	assert.InDelta(t, 93.0/11000.0*100, result.ProfitLossPercentage, 1e-9)
}

func TestComputeProfitLossZeroDenominator(t *testing.T) {
	tests := []struct {
		name         string
		entryPrice   float64
		positionSize float64
	}{
		{"zero entry price", 0, 10000},
		{"zero position size", 1.1, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeProfitLoss(100, -5, -2, tt.entryPrice, tt.positionSize)
			assert.InDelta(t, 93, result.ProfitLoss, 1e-9)
			assert.Zero(t, result.ProfitLossPercentage)
		})
	}
}

func TestComputeDerivedFieldsOverwritesSuppliedValues(t *testing.T) {
	trade := &models.Trade{
		EntryPrice:           1.2,
		PositionSize:         10000,
		Profit:               -50,
		Commissions:          -5,
		ProfitLoss:           9999,
		ProfitLossPercentage: 9999,
	}

	ComputeDerivedFields(trade)

	assert.InDelta(t, -55, trade.ProfitLoss, 1e-9)
	assert.InDelta(t, -55.0/12000.0*100, trade.ProfitLossPercentage, 1e-9)
}

func TestSafeRatio(t *testing.T) {
	assert.InDelta(t, 2.5, SafeRatio(5, 2, 0), 1e-9)
	assert.Zero(t, SafeRatio(5, 0, 0))
	assert.Equal(t, -1.0, SafeRatio(5, 0, -1))
	assert.Zero(t, SafeRatio(math.NaN(), 2, 0))
	assert.Zero(t, SafeRatio(5, math.NaN(), 0))
	assert.Zero(t, SafeRatio(math.Inf(1), 2, 0))
}

func TestRiskRewardStopAtEntry(t *testing.T) {
	trade := models.Trade{EntryPrice: 1.1, StopLoss: 1.1, TakeProfit: 1.3}
	assert.Zero(t, riskReward(trade))
}

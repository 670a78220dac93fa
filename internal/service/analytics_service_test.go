package service

import (
	"testing"
	"time"

	"github.com/borgjake1/TradingJournal-Test/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 15, 30, 0, 0, time.Local)
}

func dayPtr(d int) *time.Time {
	t := day(d)
	return &t
}

func sampleTrades() []models.Trade {
	trades := []models.Trade{
		{
			ID: "t1", ExitDate: day(3), Instrument: "EURUSD", Direction: models.DirectionLong,
			EntryPrice: 1.1, StopLoss: 1.08, TakeProfit: 1.14, PositionSize: 10000,
			Profit: 100, Commissions: -5, SwapsFees: -2,
			Setup: "breakout", Tags: []string{"trend", "news"},
		},
		{
			ID: "t2", ExitDate: day(3), Instrument: "EURUSD", Direction: models.DirectionShort,
			EntryPrice: 1.2, StopLoss: 1.21, TakeProfit: 1.17, PositionSize: 10000,
			Profit: -50, Commissions: -5,
			Setup: "reversal", Tags: []string{"trend"},
		},
		{
			ID: "t3", ExitDate: day(10), Instrument: "GBPUSD", Direction: models.DirectionLong,
			EntryPrice: 1.3, StopLoss: 1.29, TakeProfit: 1.33, PositionSize: 5000,
			Profit: 80,
			Setup: "breakout", Tags: []string{"news"},
		},
		{
			ID: "t4", ExitDate: day(12), Instrument: "USDJPY", Direction: models.DirectionShort,
			EntryPrice: 150, StopLoss: 151, TakeProfit: 147, PositionSize: 1000,
			Profit: -30,
			Setup: "reversal", Tags: nil,
		},
	}
	for i := range trades {
		ComputeDerivedFields(&trades[i])
	}
	return trades
}

func TestApplyFilterEmptySpecReturnsInputUnchanged(t *testing.T) {
	trades := sampleTrades()
	filtered := ApplyFilter(trades, models.FilterSpec{})
	assert.Equal(t, trades, filtered)
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	trades := sampleTrades()
	filter := models.FilterSpec{Instrument: "EURUSD"}
	once := ApplyFilter(trades, filter)
	twice := ApplyFilter(once, filter)
	assert.Equal(t, once, twice)
}

func TestApplyFilterDateRange(t *testing.T) {
	trades := sampleTrades()

	filtered := ApplyFilter(trades, models.FilterSpec{
		DateRange: models.DateRange{Start: dayPtr(3), End: dayPtr(10)},
	})
	require.Len(t, filtered, 3)
	assert.Equal(t, "t1", filtered[0].ID)
	assert.Equal(t, "t2", filtered[1].ID)
	assert.Equal(t, "t3", filtered[2].ID)
}

func TestApplyFilterDateRangeSingleBoundInactive(t *testing.T) {
	trades := sampleTrades()

	filtered := ApplyFilter(trades, models.FilterSpec{
		DateRange: models.DateRange{Start: dayPtr(10)},
	})
	assert.Len(t, filtered, len(trades))
}

func TestApplyFilterDimensions(t *testing.T) {
	trades := sampleTrades()

	tests := []struct {
		name    string
		filter  models.FilterSpec
		wantIDs []string
	}{
		{"instrument", models.FilterSpec{Instrument: "EURUSD"}, []string{"t1", "t2"}},
		{"direction", models.FilterSpec{Direction: models.DirectionShort}, []string{"t2", "t4"}},
		{"setup", models.FilterSpec{Setup: "breakout"}, []string{"t1", "t3"}},
		{"tags match any", models.FilterSpec{Tags: []string{"news", "missing"}}, []string{"t1", "t3"}},
		{"all constraints", models.FilterSpec{Instrument: "EURUSD", Direction: models.DirectionLong, Tags: []string{"trend"}, Setup: "breakout"}, []string{"t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilter(trades, tt.filter)
			ids := make([]string, 0, len(filtered))
			for _, trade := range filtered {
				ids = append(ids, trade.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRankByDimensionInstrument(t *testing.T) {
	trades := sampleTrades()

	ranked := RankByDimension(trades, DimensionInstrument, OrderDescending)
	require.Len(t, ranked, 3)

	// Every trade lands in exactly one instrument group.
	total := 0
	for _, m := range ranked {
		total += m.TradeCount
	}
	assert.Equal(t, len(trades), total)

	assert.Equal(t, "GBPUSD", ranked[0].Value)
	assert.InDelta(t, 80, ranked[0].ProfitLoss, 1e-9)
	assert.Equal(t, "EURUSD", ranked[1].Value)
	assert.InDelta(t, 38, ranked[1].ProfitLoss, 1e-9)
	assert.Equal(t, "USDJPY", ranked[2].Value)
}

func TestRankByDimensionOrdersAreReverses(t *testing.T) {
	trades := sampleTrades()

	desc := RankByDimension(trades, DimensionInstrument, OrderDescending)
	asc := RankByDimension(trades, DimensionInstrument, OrderAscending)
	require.Equal(t, len(desc), len(asc))
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}
}

func TestRankByDimensionTagsCountsTradeTagPairs(t *testing.T) {
	trades := sampleTrades()

	ranked := RankByDimension(trades, DimensionTags, OrderDescending)

	pairs := 0
	for _, trade := range trades {
		pairs += len(trade.Tags)
	}
	total := 0
	for _, m := range ranked {
		total += m.TradeCount
	}
	assert.Equal(t, pairs, total)
	assert.Greater(t, pairs, 0)
}

func TestRankByDimensionTieKeepsFirstSeenOrder(t *testing.T) {
	trades := []models.Trade{
		{ID: "a", Instrument: "AAA", ProfitLoss: 10},
		{ID: "b", Instrument: "BBB", ProfitLoss: 10},
		{ID: "c", Instrument: "CCC", ProfitLoss: 10},
	}

	ranked := RankByDimension(trades, DimensionInstrument, OrderDescending)
	require.Len(t, ranked, 3)
	assert.Equal(t, "AAA", ranked[0].Value)
	assert.Equal(t, "BBB", ranked[1].Value)
	assert.Equal(t, "CCC", ranked[2].Value)
}

func TestRankByDimensionEmptyInput(t *testing.T) {
	assert.Empty(t, RankByDimension(nil, DimensionInstrument, OrderDescending))
	assert.Empty(t, RankCombinations(nil, OrderDescending))
}

func TestRankCombinations(t *testing.T) {
	trades := sampleTrades()

	ranked := RankCombinations(trades, OrderDescending)

	// t4 has no tags and forms no combination; t1 contributes two.
	require.Len(t, ranked, 4)
	for _, m := range ranked {
		assert.NotEmpty(t, m.Tag)
	}

	// t1's two combinations tie at 93; first-seen order puts "trend" first.
	top := ranked[0]
	assert.Equal(t, "EURUSD", top.Instrument)
	assert.Equal(t, models.DirectionLong, top.Direction)
	assert.Equal(t, "breakout", top.Setup)
	assert.Equal(t, "trend", top.Tag)
	assert.InDelta(t, 93, top.ProfitLoss, 1e-9)
	assert.Equal(t, 1, top.TradeCount)
}

func TestRankCombinationsGroupsRepeatedKeys(t *testing.T) {
	trades := []models.Trade{
		{Instrument: "EURUSD", Direction: models.DirectionLong, Setup: "breakout", Tags: []string{"trend"}, ProfitLoss: 40},
		{Instrument: "EURUSD", Direction: models.DirectionLong, Setup: "breakout", Tags: []string{"trend"}, ProfitLoss: -10},
	}

	ranked := RankCombinations(trades, OrderDescending)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 30, ranked[0].ProfitLoss, 1e-9)
	assert.Equal(t, 2, ranked[0].TradeCount)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.ProfitFactor)
	assert.Zero(t, stats.AvgRiskReward)
	assert.Zero(t, stats.TotalPnL)
	assert.Zero(t, stats.TradeCount)
}

func TestSummarizeScenario(t *testing.T) {
	trades := []models.Trade{
		{EntryPrice: 1.1, PositionSize: 10000, Profit: 100, Commissions: -5, SwapsFees: -2},
		{EntryPrice: 1.2, PositionSize: 10000, Profit: -50, Commissions: -5},
	}
	for i := range trades {
		ComputeDerivedFields(&trades[i])
	}
	assert.InDelta(t, 93, trades[0].ProfitLoss, 1e-9)
	assert.InDelta(t, 0.845, trades[0].ProfitLossPercentage, 1e-3)
	assert.InDelta(t, -55, trades[1].ProfitLoss, 1e-9)

	stats := Summarize(trades)
	assert.InDelta(t, 50, stats.WinRate, 1e-9)
	assert.InDelta(t, 93.0/55.0, stats.ProfitFactor, 1e-9)
	assert.InDelta(t, 38, stats.TotalPnL, 1e-9)
	assert.Equal(t, 1, stats.WinningTrades)
	assert.Equal(t, 1, stats.LosingTrades)
}

func TestSummarizeZeroPnLTradeCountsNeither(t *testing.T) {
	trades := []models.Trade{{ProfitLoss: 0}}

	stats := Summarize(trades)
	assert.Zero(t, stats.WinningTrades)
	assert.Zero(t, stats.LosingTrades)
	assert.Zero(t, stats.WinRate)
	assert.Equal(t, 1, stats.TradeCount)
}

func TestSummarizeNoLosersReportsZeroProfitFactor(t *testing.T) {
	trades := []models.Trade{{ProfitLoss: 100}, {ProfitLoss: 50}}

	stats := Summarize(trades)
	assert.Zero(t, stats.ProfitFactor)
	assert.InDelta(t, 100, stats.WinRate, 1e-9)
}

func TestSummarizeStopAtEntryIsDefined(t *testing.T) {
	trades := []models.Trade{
		{EntryPrice: 1.1, StopLoss: 1.1, TakeProfit: 1.2, ProfitLoss: 10},
		{EntryPrice: 1.0, StopLoss: 0.9, TakeProfit: 1.2, ProfitLoss: 20},
	}

	stats := Summarize(trades)
	// The zero-risk trade contributes 0 and still counts in the average.
	assert.InDelta(t, 1.0, stats.AvgRiskReward, 1e-9)
}

func TestPnLByInstrument(t *testing.T) {
	trades := sampleTrades()

	series := PnLByInstrument(trades)
	require.Len(t, series, 3)
	assert.Equal(t, "EURUSD", series[0].Instrument)
	assert.InDelta(t, 38, series[0].PnL, 1e-9)
	assert.Equal(t, "GBPUSD", series[1].Instrument)
	assert.Equal(t, "USDJPY", series[2].Instrument)
}

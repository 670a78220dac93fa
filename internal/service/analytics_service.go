package service

import (
	"math"
	"sort"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/repository"
)

type Dimension string

const (
	DimensionInstrument Dimension = "instrument"
	DimensionDirection  Dimension = "direction"
	DimensionSetup      Dimension = "setup"
	DimensionTags       Dimension = "tags"
)

type SortOrder string

const (
	OrderDescending SortOrder = "desc"
	OrderAscending  SortOrder = "asc"
)

type AnalyticsService interface {
	Report(filter models.FilterSpec) *models.AnalyticsReport
	Summary(filter models.FilterSpec) models.SummaryStats
}

type analyticsService struct {
	tradeRepo repository.TradeRepository
}

func NewAnalyticsService(tradeRepo repository.TradeRepository) AnalyticsService {
	return &analyticsService{tradeRepo: tradeRepo}
}

func (s *analyticsService) Report(filter models.FilterSpec) *models.AnalyticsReport {
	trades := ApplyFilter(s.tradeRepo.GetAllTrades(), filter)

	return &models.AnalyticsReport{
		Summary: Summarize(trades),
		MostProfitable: models.DimensionRankings{
			Instruments: RankByDimension(trades, DimensionInstrument, OrderDescending),
			Directions:  RankByDimension(trades, DimensionDirection, OrderDescending),
			Setups:      RankByDimension(trades, DimensionSetup, OrderDescending),
			Tags:        RankByDimension(trades, DimensionTags, OrderDescending),
		},
		LeastProfitable: models.DimensionRankings{
			Instruments: RankByDimension(trades, DimensionInstrument, OrderAscending),
			Directions:  RankByDimension(trades, DimensionDirection, OrderAscending),
			Setups:      RankByDimension(trades, DimensionSetup, OrderAscending),
			Tags:        RankByDimension(trades, DimensionTags, OrderAscending),
		},
		MostProfitableCombinations:  RankCombinations(trades, OrderDescending),
		LeastProfitableCombinations: RankCombinations(trades, OrderAscending),
		PnLByInstrument:             PnLByInstrument(trades),
	}
}

func (s *analyticsService) Summary(filter models.FilterSpec) models.SummaryStats {
	return Summarize(ApplyFilter(s.tradeRepo.GetAllTrades(), filter))
}

// ApplyFilter returns the order-preserving subsequence of trades matching
// every active constraint of the filter.
func ApplyFilter(trades []models.Trade, filter models.FilterSpec) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, trade := range trades {
		if matchesFilter(trade, filter) {
			out = append(out, trade)
		}
	}
	return out
}

func matchesFilter(trade models.Trade, filter models.FilterSpec) bool {
	if filter.DateRange.Start != nil && filter.DateRange.End != nil {
		if trade.ExitDate.Before(*filter.DateRange.Start) || trade.ExitDate.After(*filter.DateRange.End) {
			return false
		}
	}
	if filter.Instrument != "" && trade.Instrument != filter.Instrument {
		return false
	}
	if filter.Direction != "" && trade.Direction != filter.Direction {
		return false
	}
	if len(filter.Tags) > 0 && !hasAnyTag(trade.Tags, filter.Tags) {
		return false
	}
	if filter.Setup != "" && trade.Setup != filter.Setup {
		return false
	}
	return true
}

func hasAnyTag(tradeTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tradeTags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// RankByDimension groups trades by the given dimension, sums P/L per group
// and sorts by that sum. A trade with N tags contributes to N tag groups, so
// tag rankings can count a trade more than once. Groups with equal P/L keep
// first-seen order.
func RankByDimension(trades []models.Trade, dimension Dimension, order SortOrder) []models.ProfitabilityMetric {
	groups := make(map[string]*models.ProfitabilityMetric)
	var seen []string

	for _, trade := range trades {
		for _, value := range groupValues(trade, dimension) {
			metric, ok := groups[value]
			if !ok {
				metric = &models.ProfitabilityMetric{Value: value}
				groups[value] = metric
				seen = append(seen, value)
			}
			metric.ProfitLoss += trade.ProfitLoss
			metric.TradeCount++
		}
	}

	out := make([]models.ProfitabilityMetric, 0, len(seen))
	for _, value := range seen {
		out = append(out, *groups[value])
	}
	sortByProfitLoss(out, order, func(m models.ProfitabilityMetric) float64 { return m.ProfitLoss })
	return out
}

func groupValues(trade models.Trade, dimension Dimension) []string {
	switch dimension {
	case DimensionInstrument:
		return []string{trade.Instrument}
	case DimensionDirection:
		return []string{string(trade.Direction)}
	case DimensionSetup:
		return []string{trade.Setup}
	case DimensionTags:
		return trade.Tags
	default:
		return nil
	}
}

// RankCombinations groups trades by (instrument, direction, setup, tag), one
// entry per tag on the trade. Trades without tags form no combination and are
// excluded from this view.
func RankCombinations(trades []models.Trade, order SortOrder) []models.CombinedMetric {
	groups := make(map[string]*models.CombinedMetric)
	var seen []string

	for _, trade := range trades {
		for _, tag := range trade.Tags {
			key := trade.Instrument + "|" + string(trade.Direction) + "|" + trade.Setup + "|" + tag
			metric, ok := groups[key]
			if !ok {
				metric = &models.CombinedMetric{
					Instrument: trade.Instrument,
					Direction:  trade.Direction,
					Setup:      trade.Setup,
					Tag:        tag,
				}
				groups[key] = metric
				seen = append(seen, key)
			}
			metric.ProfitLoss += trade.ProfitLoss
			metric.TradeCount++
		}
	}

	out := make([]models.CombinedMetric, 0, len(seen))
	for _, key := range seen {
		out = append(out, *groups[key])
	}
	sortByProfitLoss(out, order, func(m models.CombinedMetric) float64 { return m.ProfitLoss })
	return out
}

func sortByProfitLoss[T any](metrics []T, order SortOrder, profitLoss func(T) float64) {
	sort.SliceStable(metrics, func(i, j int) bool {
		if order == OrderAscending {
			return profitLoss(metrics[i]) < profitLoss(metrics[j])
		}
		return profitLoss(metrics[i]) > profitLoss(metrics[j])
	})
}

// Summarize computes the headline statistics over a trade collection. Trades
// with exactly zero P/L count as neither winners nor losers. ProfitFactor is
// 0 when there are no losing trades; the journal has always reported it that
// way rather than as infinity.
func Summarize(trades []models.Trade) models.SummaryStats {
	stats := models.SummaryStats{TradeCount: len(trades)}
	if len(trades) == 0 {
		return stats
	}

	var winSum, lossSum, rrSum float64
	for _, trade := range trades {
		switch {
		case trade.ProfitLoss > 0:
			stats.WinningTrades++
			winSum += trade.ProfitLoss
		case trade.ProfitLoss < 0:
			stats.LosingTrades++
			lossSum += trade.ProfitLoss
		}
		stats.TotalPnL += trade.ProfitLoss
		rrSum += riskReward(trade)
	}

	stats.WinRate = float64(stats.WinningTrades) / float64(len(trades)) * 100
	stats.ProfitFactor = math.Abs(SafeRatio(winSum, lossSum, 0))
	stats.AvgRiskReward = rrSum / float64(len(trades))
	return stats
}

// PnLByInstrument is the bar-chart series: summed P/L per instrument in
// first-seen order.
func PnLByInstrument(trades []models.Trade) []models.InstrumentPnL {
	sums := make(map[string]float64)
	var seen []string
	for _, trade := range trades {
		if _, ok := sums[trade.Instrument]; !ok {
			seen = append(seen, trade.Instrument)
		}
		sums[trade.Instrument] += trade.ProfitLoss
	}

	out := make([]models.InstrumentPnL, 0, len(seen))
	for _, instrument := range seen {
		out = append(out, models.InstrumentPnL{Instrument: instrument, PnL: sums[instrument]})
	}
	return out
}

package service

import (
	"time"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
	"github.com/borgjake1/TradingJournal-Test/internal/repository"
)

type CalendarService interface {
	MonthGrid(filter models.FilterSpec, year int, month time.Month) []models.CalendarDay
	DayMetric(filter models.FilterSpec, day time.Time) *models.DayMetric
}

type calendarService struct {
	tradeRepo repository.TradeRepository
}

func NewCalendarService(tradeRepo repository.TradeRepository) CalendarService {
	return &calendarService{tradeRepo: tradeRepo}
}

func (s *calendarService) MonthGrid(filter models.FilterSpec, year int, month time.Month) []models.CalendarDay {
	trades := ApplyFilter(s.tradeRepo.GetAllTrades(), filter)
	return MonthGrid(trades, year, month)
}

func (s *calendarService) DayMetric(filter models.FilterSpec, day time.Time) *models.DayMetric {
	trades := ApplyFilter(s.tradeRepo.GetAllTrades(), filter)
	return DayMetrics(trades, day)
}

// DayMetrics reduces the trades exiting on the given calendar day. Returns
// nil when no trade exited that day, so callers can tell an empty day from a
// day that netted to zero.
func DayMetrics(trades []models.Trade, day time.Time) *models.DayMetric {
	buckets := BucketByDay(trades)
	return buckets[dayKey(day)]
}

// BucketByDay computes every day bucket in one pass over the collection,
// keyed by the exit date's local calendar day.
func BucketByDay(trades []models.Trade) map[string]*models.DayMetric {
	type accum struct {
		pnl   float64
		rrSum float64
		count int
	}
	buckets := make(map[string]*accum)
	for _, trade := range trades {
		key := dayKey(trade.ExitDate)
		b, ok := buckets[key]
		if !ok {
			b = &accum{}
			buckets[key] = b
		}
		b.pnl += trade.ProfitLoss
		b.rrSum += riskReward(trade)
		b.count++
	}

	out := make(map[string]*models.DayMetric, len(buckets))
	for key, b := range buckets {
		out[key] = &models.DayMetric{
			PnL:        b.pnl,
			RR:         b.rrSum / float64(b.count),
			TradeCount: b.count,
		}
	}
	return out
}

// MonthGrid enumerates the displayed month padded to whole Sunday-to-Saturday
// weeks, the way a 7-column calendar renders, attaching the day bucket to
// each cell that has trades.
func MonthGrid(trades []models.Trade, year int, month time.Month) []models.CalendarDay {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday()))

	buckets := BucketByDay(trades)

	var days []models.CalendarDay
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, models.CalendarDay{
			Date:           day,
			InCurrentMonth: day.Month() == month,
			Metrics:        buckets[dayKey(day)],
		})
	}
	return days
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

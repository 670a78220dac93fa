package repository

import (
	"sync"

	"github.com/borgjake1/TradingJournal-Test/internal/models"
)

// TradeRepository is the journal's single state holder: the trade collection
// plus the predefined tag and setup lists. Every mutation is one atomic
// replacement under the lock, and registered listeners are notified after the
// mutation is visible.
type TradeRepository interface {
	SaveTrade(trade *models.Trade) error
	GetTradeByID(id string) (*models.Trade, error)
	GetAllTrades() []models.Trade
	DeleteTrade(id string) bool
	ReplaceAll(trades []models.Trade)

	GetPredefinedTags() []string
	AddPredefinedTag(tag string)
	RemovePredefinedTag(tag string)
	GetPredefinedSetups() []string
	AddPredefinedSetup(setup string)
	RemovePredefinedSetup(setup string)

	OnChange(listener func(update models.JournalUpdate))
}

type InMemoryTradeRepository struct {
	trades    []models.Trade
	tags      []string
	setups    []string
	listeners []func(update models.JournalUpdate)
	mu        sync.RWMutex
}

func NewTradeRepository() TradeRepository {
	return &InMemoryTradeRepository{
		trades: make([]models.Trade, 0),
	}
}

// SaveTrade inserts the trade, or fully replaces the stored record when a
// trade with the same ID already exists.
func (r *InMemoryTradeRepository) SaveTrade(trade *models.Trade) error {
	r.mu.Lock()
	updateType := models.UpdateTradeAdded
	replaced := false
	for i := range r.trades {
		if r.trades[i].ID == trade.ID {
			r.trades[i] = *trade
			updateType = models.UpdateTradeUpdated
			replaced = true
			break
		}
	}
	if !replaced {
		r.trades = append(r.trades, *trade)
	}
	count := len(r.trades)
	r.mu.Unlock()

	r.notify(models.JournalUpdate{
		Topic:      models.TopicTrades,
		Type:       updateType,
		TradeID:    trade.ID,
		TradeCount: count,
	})
	return nil
}

func (r *InMemoryTradeRepository) GetTradeByID(id string) (*models.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.trades {
		if r.trades[i].ID == id {
			trade := r.trades[i]
			return &trade, nil
		}
	}
	return nil, nil
}

// GetAllTrades returns a copy of the collection; callers can hold it as a
// consistent snapshot across several computations.
func (r *InMemoryTradeRepository) GetAllTrades() []models.Trade {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Trade, len(r.trades))
	copy(out, r.trades)
	return out
}

func (r *InMemoryTradeRepository) DeleteTrade(id string) bool {
	r.mu.Lock()
	found := false
	next := make([]models.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	r.trades = next
	count := len(r.trades)
	r.mu.Unlock()

	if found {
		r.notify(models.JournalUpdate{
			Topic:      models.TopicTrades,
			Type:       models.UpdateTradeDeleted,
			TradeID:    id,
			TradeCount: count,
		})
	}
	return found
}

// ReplaceAll swaps the whole collection, verbatim. Used by import.
func (r *InMemoryTradeRepository) ReplaceAll(trades []models.Trade) {
	next := make([]models.Trade, len(trades))
	copy(next, trades)

	r.mu.Lock()
	r.trades = next
	count := len(r.trades)
	r.mu.Unlock()

	r.notify(models.JournalUpdate{
		Topic:      models.TopicTrades,
		Type:       models.UpdateJournalImported,
		TradeCount: count,
	})
}

func (r *InMemoryTradeRepository) GetPredefinedTags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r *InMemoryTradeRepository) AddPredefinedTag(tag string) {
	r.mu.Lock()
	exists := containsString(r.tags, tag)
	if !exists {
		r.tags = append(r.tags, tag)
	}
	r.mu.Unlock()

	if !exists {
		r.notifySettings()
	}
}

func (r *InMemoryTradeRepository) RemovePredefinedTag(tag string) {
	r.mu.Lock()
	before := len(r.tags)
	r.tags = removeString(r.tags, tag)
	removed := len(r.tags) != before
	r.mu.Unlock()

	if removed {
		r.notifySettings()
	}
}

func (r *InMemoryTradeRepository) GetPredefinedSetups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.setups))
	copy(out, r.setups)
	return out
}

func (r *InMemoryTradeRepository) AddPredefinedSetup(setup string) {
	r.mu.Lock()
	exists := containsString(r.setups, setup)
	if !exists {
		r.setups = append(r.setups, setup)
	}
	r.mu.Unlock()

	if !exists {
		r.notifySettings()
	}
}

func (r *InMemoryTradeRepository) RemovePredefinedSetup(setup string) {
	r.mu.Lock()
	before := len(r.setups)
	r.setups = removeString(r.setups, setup)
	removed := len(r.setups) != before
	r.mu.Unlock()

	if removed {
		r.notifySettings()
	}
}

func (r *InMemoryTradeRepository) OnChange(listener func(update models.JournalUpdate)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, listener)
	r.mu.Unlock()
}

func (r *InMemoryTradeRepository) notify(update models.JournalUpdate) {
	r.mu.RLock()
	listeners := make([]func(models.JournalUpdate), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.RUnlock()

	for _, listener := range listeners {
		listener(update)
	}
}

func (r *InMemoryTradeRepository) notifySettings() {
	r.notify(models.JournalUpdate{
		Topic: models.TopicSettings,
		Type:  models.UpdateSettingsChanged,
	})
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func removeString(values []string, value string) []string {
	out := values[:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

package models

import (
	"sync"

	"github.com/gorilla/websocket"
)

const (
	TopicTrades   = "trades"
	TopicSettings = "settings"
)

// JournalUpdate is pushed to websocket clients after each atomic mutation of
// the journal, so the frontend can re-fetch whichever views it has open.
type JournalUpdate struct {
	Topic      string `json:"topic"`
	Type       string `json:"type"`
	TradeID    string `json:"trade_id,omitempty"`
	TradeCount int    `json:"trade_count"`
}

const (
	UpdateTradeAdded      = "trade_added"
	UpdateTradeUpdated    = "trade_updated"
	UpdateTradeDeleted    = "trade_deleted"
	UpdateJournalImported = "journal_imported"
	UpdateSettingsChanged = "settings_changed"
)

type Client struct {
	ID           string
	Conn         *websocket.Conn
	Send         chan *JournalUpdate
	Topics       map[string]bool
	TopicsMu     sync.RWMutex
	CloseHandler func()
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     id,
		Conn:   conn,
		Send:   make(chan *JournalUpdate, 256),
		Topics: make(map[string]bool),
	}
}

func (c *Client) Subscribe(topic string) {
	c.TopicsMu.Lock()
	c.Topics[topic] = true
	c.TopicsMu.Unlock()
}

func (c *Client) Unsubscribe(topic string) {
	c.TopicsMu.Lock()
	delete(c.Topics, topic)
	c.TopicsMu.Unlock()
}

func (c *Client) IsSubscribed(topic string) bool {
	c.TopicsMu.RLock()
	defer c.TopicsMu.RUnlock()
	return c.Topics[topic]
}

func (c *Client) Close() {
	if c.CloseHandler != nil {
		c.CloseHandler()
	}
	c.Conn.Close()
}

type SocketMessage struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type SubscriptionResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Topics  []string `json:"topics,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

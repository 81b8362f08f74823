package ws

import (
	"encoding/json"
	"sync"
	"time"

	"starwars-server/entities"
	"starwars-server/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
)

// Event is one catalog change as written to subscribers.
type Event struct {
	Type string          `json:"type"`
	ID   uint            `json:"id"`
	Data entities.Record `json:"data,omitempty"`
	At   time.Time       `json:"at"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Manager keeps track of websocket subscribers to the catalog event feed.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber // subscriberID -> subscriber
	log         zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		subscribers: make(map[string]*subscriber),
		log:         logger.Component(log, "ws"),
	}
}

// Register adds a connection and starts its writer. It returns the subscriber ID.
func (m *Manager) Register(conn *websocket.Conn) string {
	id := uuid.NewString()
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	m.mu.Lock()
	m.subscribers[id] = sub
	m.mu.Unlock()

	go m.writeLoop(id, sub)
	return id
}

// Unregister removes a subscriber and closes its connection.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	sub, ok := m.subscribers[id]
	if ok {
		delete(m.subscribers, id)
	}
	m.mu.Unlock()

	if ok {
		close(sub.send)
		_ = sub.conn.Close()
	}
}

func (m *Manager) writeLoop(id string, sub *subscriber) {
	for payload := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			m.log.Debug().Err(err).Str("subscriber", id).Msg("write failed")
			m.Unregister(id)
			return
		}
	}
}

// Publish implements usecases.Notifier.
func (m *Manager) Publish(eventType string, id uint, data entities.Record) {
	payload, err := json.Marshal(Event{Type: eventType, ID: id, Data: data, At: time.Now().UTC()})
	if err != nil {
		m.log.Error().Err(err).Str("event", eventType).Msg("failed to encode event")
		return
	}
	m.Broadcast(payload)
}

// Broadcast queues payload for every subscriber. Subscribers whose buffer is
// full miss the message.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, sub := range m.subscribers {
		select {
		case sub.send <- payload:
		default:
			m.log.Warn().Str("subscriber", id).Msg("subscriber too slow, dropping event")
		}
	}
}

// IsConnected returns whether a subscriber is currently connected.
func (m *Manager) IsConnected(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.subscribers[id]
	return ok
}

// List returns a copy of current subscriber IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	return ids
}

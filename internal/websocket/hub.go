package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"beauty-advisor-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// fanoutChannel is the redis pub/sub channel used to reach sessions held by
// other instances.
const fanoutChannel = "transcript_events"

// Hub fans appended conversation turns out to every socket watching a
// session. One session can be watched from several tabs at once.
type Hub struct {
	// sessionID -> open sockets watching that transcript
	watchers map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// rdb is optional; when present, turns are also published so other
	// instances can deliver to their own watchers.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		watchers:   make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.consumeFanout()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.watchers[client.SessionID] = append(h.watchers[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Watcher attached", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.watchers[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.watchers[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.watchers[client.SessionID]) == 0 {
					delete(h.watchers, client.SessionID)
					h.logger.Info("Hub", "Last watcher detached", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast delivers a pre-serialized payload to every watcher of the given
// session, locally and through redis for watchers held elsewhere.
func (h *Hub) Broadcast(sessionID uuid.UUID, payload []byte) {
	h.deliverLocal(sessionID, payload)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"target_session_id": sessionID.String(),
			"message":           json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), fanoutChannel, envelope)
	}
}

func (h *Hub) deliverLocal(sessionID uuid.UUID, payload []byte) {
	h.mu.RLock()
	clients, ok := h.watchers[sessionID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Watcher send buffer full, dropping connection", map[string]interface{}{"session_id": sessionID})
			h.unregister <- client
		}
	}
}

func (h *Hub) consumeFanout() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			h.logger.Warn("Hub", "Malformed fanout payload", map[string]interface{}{"error": err.Error()})
			continue
		}

		sessionID, err := uuid.Parse(envelope.TargetSessionID)
		if err != nil {
			continue
		}
		h.deliverLocal(sessionID, envelope.Message)
	}
}

package websocket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

const broadcastBuffer = 64

// Hub fans snapshots out to every connected client.
type Hub struct {
	logger *slog.Logger

	mu        sync.Mutex
	clients   map[*client]struct{}
	broadcast chan entity.Snapshot
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:    logger.With("component", "ws_hub"),
		clients:   make(map[*client]struct{}),
		broadcast: make(chan entity.Snapshot, broadcastBuffer),
	}
}

// Notify - queues a snapshot for all clients. Never blocks; drops the snapshot if the hub is behind.
func (that *Hub) Notify(snapshot entity.Snapshot) {
	select {
	case that.broadcast <- snapshot:
	default:
		that.logger.Warn("broadcast queue is full, snapshot dropped", "game_id", snapshot.ID)
	}
}

// Run - delivers queued snapshots until ctx is canceled.
func (that *Hub) Run(ctx context.Context) {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			that.closeAll()
			return
		case snapshot := <-that.broadcast:
			data, err := stateMessage(snapshot)
			if err != nil {
				log.Error("failed to marshal snapshot", "error", err)
				continue
			}

			that.mu.Lock()
			for c := range that.clients {
				if !c.enqueue(data) {
					log.Warn("client is too slow, disconnecting", "session", c.session)
					that.remove(c)
				}
			}
			that.mu.Unlock()
		}
	}
}

// Clients - number of connected clients.
func (that *Hub) Clients() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	that.clients[c] = struct{}{}
	that.mu.Unlock()
}

func (that *Hub) unregister(c *client) {
	that.mu.Lock()
	that.remove(c)
	that.mu.Unlock()
}

// sendTo - delivers data to one client if it is still registered.
func (that *Hub) sendTo(c *client, data []byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; !ok {
		return false
	}

	return c.enqueue(data)
}

// remove - caller holds mu.
func (that *Hub) remove(c *client) {
	if _, ok := that.clients[c]; ok {
		delete(that.clients, c)
		close(c.send)
	}
}

func (that *Hub) closeAll() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for c := range that.clients {
		that.remove(c)
	}
}

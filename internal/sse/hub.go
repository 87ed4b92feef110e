package sse

import (
	"log/slog"
	"sync"
	"time"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Hub fans mining events out to one player's open tabs. Unlike a shared
// room, everything sent here belongs to a single player, so every tab
// receives every event and a tab carries no identity of its own.
type Hub struct {
	playerID model.PlayerID
	tabs     map[*Client]bool
	mu       sync.RWMutex
	logger   *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub creates a new Hub for a player
func NewHub(playerID model.PlayerID, logger *slog.Logger) *Hub {
	return &Hub{
		playerID:   playerID,
		tabs:       make(map[*Client]bool),
		logger:     logger.With(slog.String("player_id", string(playerID))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// PlayerID returns the player this hub belongs to
func (h *Hub) PlayerID() model.PlayerID {
	return h.playerID
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case tab := <-h.register:
			h.mu.Lock()
			h.tabs[tab] = true
			open := len(h.tabs)
			h.mu.Unlock()
			h.logger.Debug("sse tab connected", slog.Int("open_tabs", open))

		case tab := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.tabs[tab]; ok {
				delete(h.tabs, tab)
				close(tab.send)
				open := len(h.tabs)
				h.mu.Unlock()
				h.logger.Debug("sse tab closed",
					slog.Duration("connection_duration", time.Since(tab.connectedAt)),
					slog.Int("open_tabs", open))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for tab := range h.tabs {
				select {
				case tab.send <- message:
				default:
					dropped++
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("sse message dropped - tab buffer full",
					slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			open := len(h.tabs)
			for tab := range h.tabs {
				close(tab.send)
				delete(h.tabs, tab)
			}
			h.mu.Unlock()
			h.logger.Info("sse hub stopped", slog.Int("disconnected_tabs", open))
			return
		}
	}
}

// Register adds a tab to the hub
func (h *Hub) Register(tab *Client) {
	h.register <- tab
}

// Unregister removes a tab from the hub
func (h *Hub) Unregister(tab *Client) {
	h.unregister <- tab
}

// Broadcast sends a message to every open tab
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// BroadcastEvent sends an SSE event with a name and data
func (h *Hub) BroadcastEvent(eventName, data string) {
	msg := formatSSEMessage(eventName, data)
	h.Broadcast(msg)
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// TabCount returns the number of open tabs
func (h *Hub) TabCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.tabs)
}

// formatSSEMessage formats an SSE message with event name and data
// Multi-line data is properly formatted with "data: " prefix on each line
func formatSSEMessage(eventName, data string) []byte {
	msg := "event: " + eventName + "\n"
	lines := splitLines(data)
	for _, line := range lines {
		msg += "data: " + line + "\n"
	}
	msg += "\n"
	return []byte(msg)
}

// splitLines splits a string into lines, handling various line endings
func splitLines(s string) []string {
	var lines []string
	var current string
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current)
			current = ""
		} else if r != '\r' {
			current += string(r)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// HubManager manages hubs for all connected players
type HubManager struct {
	hubs   map[model.PlayerID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.PlayerID]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// GetOrCreateHub returns the hub for a player, creating one if it doesn't exist
func (m *HubManager) GetOrCreateHub(playerID model.PlayerID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[playerID]; ok {
		return hub
	}

	hub := NewHub(playerID, m.logger)
	m.hubs[playerID] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a player, or nil if it doesn't exist
func (m *HubManager) GetHub(playerID model.PlayerID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[playerID]
}

// RemoveHub removes and closes a player's hub
func (m *HubManager) RemoveHub(playerID model.PlayerID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[playerID]; ok {
		hub.Close()
		delete(m.hubs, playerID)
		m.logger.Info("sse hub removed", slog.String("player_id", string(playerID)))
	}
}

// CleanupEmptyHubs removes hubs whose player has no tabs open
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, hub := range m.hubs {
		if hub.TabCount() == 0 {
			hub.Close()
			delete(m.hubs, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("sse idle hubs cleaned up", slog.Int("removed", removed))
	}
}

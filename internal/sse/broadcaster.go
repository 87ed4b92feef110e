package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/DAILY622/Cloud-wealth-mining/internal/model"
)

// Broadcaster delivers progression events to the owning player's SSE
// connections. It satisfies the session service's event sink.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// eventEnvelope is the wire shape of one SSE data line
type eventEnvelope struct {
	Type      model.EventType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   any             `json:"payload,omitempty"`
}

// Publish sends the event to the player's hub, if the player has any
// open connections. Events for players with no hub are dropped; SSE is
// a live feed, not a mailbox.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.PlayerID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(eventEnvelope{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Payload:   payloadJSON(event.Payload),
	})
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}

// payloadJSON maps internal payload structs to their wire shapes
func payloadJSON(payload any) any {
	switch p := payload.(type) {
	case model.RewardEarnedPayload:
		return map[string]any{
			"amount": p.Amount,
			"auto":   p.Auto,
		}
	case model.LevelUpPayload:
		return map[string]any{
			"new_level": p.NewLevel,
			"rank":      p.Rank,
		}
	case model.AchievementUnlockedPayload:
		return map[string]any{
			"id":   p.ID,
			"name": p.Name,
		}
	case model.UpgradePurchasedPayload:
		return map[string]any{
			"id":   p.ID,
			"name": p.Name,
		}
	default:
		return payload
	}
}

package sse

import (
	"testing"
	"time"

	"github.com/DAILY622/Cloud-wealth-mining/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "reward_earned",
			data:      `{"amount":1.5}`,
			expected:  "event: reward_earned\ndata: {\"amount\":1.5}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "test",
			data:      "line1\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single line",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two lines",
			input:    "line1\nline2",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "trailing newline",
			input:    "line1\n",
			expected: []string{"line1"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "crlf line endings",
			input:    "line1\r\nline2\r\n",
			expected: []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("player1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.TabCount() != 1 {
		t.Errorf("TabCount() = %d, want 1", hub.TabCount())
	}

	hub.BroadcastEvent("reward_earned", `{"amount":1}`)

	select {
	case msg := <-client.send:
		want := "event: reward_earned\ndata: {\"amount\":1}\n\n"
		if string(msg) != want {
			t.Errorf("received %q, want %q", string(msg), want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHub_BroadcastReachesEveryTab(t *testing.T) {
	hub := NewHub("player1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	first := NewClient(hub)
	second := NewClient(hub)
	hub.Register(first)
	hub.Register(second)
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastEvent("level_up", `{"new_level":2}`)

	for _, client := range []*Client{first, second} {
		select {
		case <-client.send:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast")
		}
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub("player1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.TabCount() != 0 {
		t.Errorf("TabCount() = %d, want 0", hub.TabCount())
	}

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub := manager.GetOrCreateHub("player1")
	if hub == nil {
		t.Fatal("expected hub to be created")
	}
	defer hub.Close()

	if hub.PlayerID() != "player1" {
		t.Errorf("PlayerID() = %q, want %q", hub.PlayerID(), "player1")
	}

	if again := manager.GetOrCreateHub("player1"); again != hub {
		t.Error("expected repeated calls to return the same hub")
	}

	if manager.GetHub("player2") != nil {
		t.Error("expected nil hub for unknown player")
	}
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	empty := manager.GetOrCreateHub("idle")
	busy := manager.GetOrCreateHub("active")
	defer busy.Close()

	client := NewClient(busy)
	busy.Register(client)
	time.Sleep(10 * time.Millisecond)

	manager.CleanupEmptyHubs()

	if manager.GetHub("idle") != nil {
		t.Error("expected empty hub to be removed")
	}
	if manager.GetHub("active") == nil {
		t.Error("expected active hub to survive cleanup")
	}
	_ = empty
}

package websocket

import (
	"KinderShelf/interfaces"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID, parentID string) *Client {
	return NewClient(hub, nil, userID, parentID, "parent")
}

func receive(t *testing.T, c *Client) interfaces.WebSocketMessage {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
	return interfaces.WebSocketMessage{}
}

func TestHubBroadcastsToFamilyOnly(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	parent := newTestClient(hub, "parent_a", "parent_a")
	child := newTestClient(hub, "child_a", "parent_a")
	stranger := newTestClient(hub, "parent_b", "parent_b")
	hub.Register(parent)
	hub.Register(child)
	hub.Register(stranger)

	hub.BroadcastScreenTimeAlert("parent_a", "child_a", map[string]string{"status": "bedtime"})

	for _, c := range []*Client{parent, child} {
		msg := receive(t, c)
		assert.Equal(t, "screen_time_alert", msg.Type)
		assert.Equal(t, "child_a", msg.ChildID)
		assert.False(t, msg.Timestamp.IsZero())
	}
	select {
	case msg := <-stranger.send:
		t.Fatalf("unexpected message for another family: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubLimitUpdate(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	parent := newTestClient(hub, "parent_a", "parent_a")
	hub.Register(parent)

	hub.BroadcastScreenTimeLimit("child_a", "parent_a", map[string]int{"dailyLimit": 90})
	msg := receive(t, parent)
	assert.Equal(t, "screen_time_limit_update", msg.Type)
	assert.Equal(t, "parent_a", msg.ParentID)
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "parent_a", "parent_a")
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, hub.ClientCount("parent_a"))
}

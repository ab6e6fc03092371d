package interfaces

import (
	"time"
)

// NotificationService sends push notifications to a single device.
type NotificationService interface {
	SendNotification(token, title, body string, data map[string]string, lang string) error
}

// WebSocketHubService pushes live updates to every connected member of a family.
type WebSocketHubService interface {
	BroadcastScreenTimeAlert(parentID string, childID string, alert interface{})
	BroadcastScreenTimeLimit(childID string, parentID string, limitData interface{})
}

// WebSocketMessage is the envelope written to family websocket clients.
type WebSocketMessage struct {
	Type      string      `json:"type"`
	ParentID  string      `json:"parent_id,omitempty"`
	ChildID   string      `json:"child_id,omitempty"`
	Message   interface{} `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

package models

import "time"

// Content kinds a usage session can be attributed to.
const (
	ContentVideo = "video"
	ContentBook  = "book"
	ContentOther = "other"
)

// Session is one content-consumption event reported by a child's device.
type Session struct {
	ContentType string    `json:"content_type" binding:"required,oneof=video book other"`
	Minutes     int       `json:"minutes" binding:"required,min=1,max=1440"`
	Category    string    `json:"category"`
	EndedAt     time.Time `json:"ended_at"`
}

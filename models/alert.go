package models

import "time"

// ScreenTimeAlert is pushed to the family when a child's status changes.
type ScreenTimeAlert struct {
	ChildFirebaseUID string    `json:"child_firebase_uid"`
	ChildName        string    `json:"child_name"`
	Status           string    `json:"status"`
	PreviousStatus   string    `json:"previous_status"`
	UsedMinutes      int       `json:"used_minutes"`
	RemainingMinutes int       `json:"remaining_minutes"`
	At               time.Time `json:"at"`
}

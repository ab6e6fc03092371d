package models

import "time"

type Child struct {
	ID                uint      `json:"id" gorm:"primary_key"`
	FirebaseUID       string    `json:"firebase_uid" gorm:"uniqueIndex"`
	ParentFirebaseUID string    `json:"parent_firebase_uid" gorm:"index"`
	Name              string    `json:"name"`
	Lang              string    `json:"lang"`
	Age               int       `json:"age"`
	Avatar            string    `json:"avatar"`
	DeviceToken       string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

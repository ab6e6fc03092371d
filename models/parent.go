package models

import "time"

const (
	RoleParent   = "parent"
	RoleEducator = "educator"
	RoleChild    = "child"
)

// Parent is a guardian account: a parent or an educator managing children.
type Parent struct {
	ID          uint      `json:"id" gorm:"primary_key"`
	Lang        string    `json:"lang"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	FirebaseUID string    `json:"firebase_uid" gorm:"uniqueIndex"`
	Role        string    `json:"role"`
	DeviceToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsGuardian reports whether the account may manage children.
func (p *Parent) IsGuardian() bool {
	return p.Role == RoleParent || p.Role == RoleEducator
}

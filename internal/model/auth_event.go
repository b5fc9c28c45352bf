package model

import "time"

const (
	AuthActionRegister = "register"
	AuthActionLogin    = "login"
	AuthActionLogout   = "logout"
)

// AuthEvent is an audit record of an authentication action. Events are
// published to RabbitMQ by the auth service and persisted by a worker.
type AuthEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:16;not null;index" json:"action"`
	TokenID   string    `gorm:"size:64;not null" json:"token_id"`
	CreatedAt time.Time `json:"created_at"`
}

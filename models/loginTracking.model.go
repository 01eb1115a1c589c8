package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking is an audit row per sign-in or forced sign-out.
type LoginTracking struct {
	gorm.Model
	UserID    uint      `json:"user_id"` // zero when the account was rejected before persisting
	Email     string    `gorm:"index" json:"email"`
	Provider  string    `json:"provider"`
	Event     string    `json:"event"` // "login", "logout", "domain_rejected"
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
	IsDeleted bool      `gorm:"default:false"`
}

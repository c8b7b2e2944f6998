// caseopening/model.go
package caseopening

import (
	"time"

	"gorm.io/gorm"
)

// CaseOpening is the append-only draw log. The newest row per user is the
// source of truth for the cooldown window.
type CaseOpening struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"index;not null"`
	Reward   string    `json:"reward" gorm:"not null"`
	OpenedAt time.Time `json:"opened_at" gorm:"index;not null"`
}

// UserVipStatus holds a user's VIP entitlement expiry. One row per user.
type UserVipStatus struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	VipUntil time.Time `json:"vip_until" gorm:"not null"`
}

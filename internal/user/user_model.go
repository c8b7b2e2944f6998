package user

import "gorm.io/gorm"

// Site-wide roles. A user starts as a guest, becomes a leader by
// registering a team, and goes back to guest when an admin deletes it.
const (
	RoleGuest  = "guest"
	RoleLeader = "leader"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Username        string `gorm:"uniqueIndex;not null" json:"username"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Password        string `json:"-"`
	DiscordUsername string `json:"discord_username"`
	Role            string `gorm:"default:'guest'" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

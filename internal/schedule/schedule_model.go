// schedule/model.go
package schedule

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is an admin-owned scheduled match slot.
type Schedule struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	MapName     string    `json:"map_name"`
	MaxTeams    int       `json:"max_teams"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// ScrimRequest links a team to a schedule it asked to play. At most one
// request per (team, schedule) pair.
type ScrimRequest struct {
	gorm.Model
	TeamID     uint   `json:"team_id" gorm:"uniqueIndex:idx_team_schedule;not null"`
	ScheduleID uint   `json:"schedule_id" gorm:"uniqueIndex:idx_team_schedule;not null"`
	Status     string `json:"status" gorm:"default:'pending'"`
}

// team/model.go
package team

import (
	"github.com/gegidze/arena/internal/user"
	"gorm.io/gorm"
)

// Team is a registered scrim team. Lifecycle:
// draft -> pending -> approved | rejected | blocked.
type Team struct {
	gorm.Model
	Name         string     `json:"team_name" gorm:"uniqueIndex;not null"`
	Tag          string     `json:"team_tag" gorm:"not null"`
	LeaderID     uint       `json:"leader_id" gorm:"index;not null"`
	Leader       *user.User `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Status       string     `json:"status" gorm:"default:'draft';index"`
	IsVip        bool       `json:"is_vip" gorm:"default:false"`
	SlotNumber   *int       `json:"slot_number"`
	PlayersCount int        `json:"players_count"`
	MapsCount    int        `json:"maps_count"`
}

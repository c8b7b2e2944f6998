// setting/model.go
package setting

import "gorm.io/gorm"

// SiteSetting is a global key/value row (room credentials, contact links).
type SiteSetting struct {
	gorm.Model
	Key         string `json:"key" gorm:"uniqueIndex;not null"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Settings keys that make up the room-info page.
var RoomInfoKeys = []string{"room_id", "room_password", "start_time", "map"}

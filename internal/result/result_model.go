// result/model.go
package result

import "gorm.io/gorm"

// Result is a published match result, optionally with a screenshot.
type Result struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

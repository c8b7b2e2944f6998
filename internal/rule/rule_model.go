// rule/model.go
package rule

import "gorm.io/gorm"

// Rule is one numbered entry of the tournament rulebook.
type Rule struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Content     string `json:"content" gorm:"not null"`
	OrderNumber int    `json:"order_number" gorm:"index"`
}

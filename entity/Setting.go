package entity

import (
	"gorm.io/gorm"
)

// Setting is a back-office key/value pair (restaurant name, opening
// hours, default language and the like).
type Setting struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `json:"value"`
}

package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MultiText maps a language code to a display string. Stored as a JSON
// column; resolved for display via the i18n fallback chain.
type MultiText = datatypes.JSONType[map[string]string]

type OrderItem struct {
	gorm.Model
	OrderID uint `json:"-"`

	// MenuItemID references the catalog entry the line was built from.
	// Name and Price are snapshots taken at order time so later menu
	// edits never alter historical orders.
	MenuItemID uint      `json:"menuItemId"`
	Name       MultiText `json:"name"`
	Price      float64   `json:"price"`

	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// LineTotal is the snapshot price times quantity.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

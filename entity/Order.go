package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Number is the public reference printed on receipts and sent in
	// SMS updates; the numeric ID stays internal.
	Number string      `gorm:"uniqueIndex" json:"number"`
	Type   OrderType   `gorm:"not null" json:"type"`
	Status OrderStatus `gorm:"index;not null;default:pending" json:"status"`

	// Exactly one of CustomerName/TableNumber is set, matching Type:
	// takeaway orders carry a name, dine-in orders a table.
	CustomerName string `json:"customerName,omitempty"`
	TableNumber  string `json:"tableNumber,omitempty"`

	PhoneNumber         string `gorm:"index" json:"phoneNumber"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	// Total is derived from the item snapshots at creation time.
	Total float64 `json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// Validate enforces the schema boundary for a new order. Status
// transitions are validated separately by the order service.
func (o *Order) Validate() error {
	var ve ValidationError
	if !o.Type.Valid() {
		ve.Add("type", "must be dine-in or takeaway")
	}
	switch o.Type {
	case OrderTypeTakeaway:
		if o.CustomerName == "" {
			ve.Add("customerName", "required for takeaway orders")
		}
		if o.TableNumber != "" {
			ve.Add("tableNumber", "not allowed for takeaway orders")
		}
	case OrderTypeDineIn:
		if o.TableNumber == "" {
			ve.Add("tableNumber", "required for dine-in orders")
		}
		if o.CustomerName != "" {
			ve.Add("customerName", "not allowed for dine-in orders")
		}
	}
	if n := len(o.PhoneNumber); n < 10 || n > 15 {
		ve.Add("phoneNumber", "must be 10-15 characters")
	}
	if len(o.Items) == 0 {
		ve.Add("items", "at least one item is required")
	}
	for _, it := range o.Items {
		if it.Quantity < 1 {
			ve.Add("items", "quantity must be at least 1")
			break
		}
	}
	return ve.Err()
}

package services

import (
	"tavola/entity"
)

// KitchenColumns are the statuses the kitchen display shows, in column
// order. Admin views use entity.AllStatuses instead.
var KitchenColumns = []entity.OrderStatus{
	entity.StatusPending,
	entity.StatusPreparing,
	entity.StatusDelayed,
	entity.StatusReady,
	entity.StatusServed,
}

type BoardColumn struct {
	Status entity.OrderStatus `json:"status"`
	Orders []entity.Order     `json:"orders"`
}

// PartitionByStatus splits orders into per-status buckets. Every order
// lands in exactly one bucket and keeps its position relative to the
// other orders of the same status.
func PartitionByStatus(orders []entity.Order) map[entity.OrderStatus][]entity.Order {
	out := make(map[entity.OrderStatus][]entity.Order)
	for _, o := range orders {
		out[o.Status] = append(out[o.Status], o)
	}
	return out
}

// Columns renders a partition as an ordered column list. Statuses not
// in columns are dropped; empty columns are kept so the display layout
// stays fixed.
func Columns(orders []entity.Order, columns []entity.OrderStatus) []BoardColumn {
	byStatus := PartitionByStatus(orders)
	out := make([]BoardColumn, 0, len(columns))
	for _, st := range columns {
		col := BoardColumn{Status: st, Orders: byStatus[st]}
		if col.Orders == nil {
			col.Orders = []entity.Order{}
		}
		out = append(out, col)
	}
	return out
}

// FilterByStatus keeps only orders with the given status; "all" or ""
// passes the input through untouched.
func FilterByStatus(orders []entity.Order, status string) []entity.Order {
	if status == "" || status == "all" {
		return orders
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out
}

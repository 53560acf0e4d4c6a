package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tavola/entity"
	"tavola/services"
)

func order(id uint, status entity.OrderStatus) entity.Order {
	o := entity.Order{Status: status}
	o.ID = id
	return o
}

func TestPartitionByStatusIsLosslessAndNonOverlapping(t *testing.T) {
	orders := []entity.Order{
		order(1, entity.StatusPending),
		order(2, entity.StatusPreparing),
		order(3, entity.StatusPending),
		order(4, entity.StatusCancelled),
		order(5, entity.StatusReady),
		order(6, entity.StatusPending),
	}

	parts := services.PartitionByStatus(orders)

	total := 0
	seen := map[uint]bool{}
	for _, bucket := range parts {
		for _, o := range bucket {
			assert.False(t, seen[o.ID], "order %d appears in more than one partition", o.ID)
			seen[o.ID] = true
			total++
		}
	}
	assert.Equal(t, len(orders), total)

	// Each bucket holds only its own status.
	for st, bucket := range parts {
		for _, o := range bucket {
			assert.Equal(t, st, o.Status)
		}
	}
}

func TestPartitionByStatusKeepsInsertionOrder(t *testing.T) {
	orders := []entity.Order{
		order(3, entity.StatusPending),
		order(1, entity.StatusPending),
		order(2, entity.StatusPending),
	}
	parts := services.PartitionByStatus(orders)
	ids := []uint{}
	for _, o := range parts[entity.StatusPending] {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}

func TestColumnsKeepsFixedLayout(t *testing.T) {
	orders := []entity.Order{
		order(1, entity.StatusPreparing),
		order(2, entity.StatusCompleted), // not a kitchen column
	}
	cols := services.Columns(orders, services.KitchenColumns)

	assert.Len(t, cols, len(services.KitchenColumns))
	for i, col := range cols {
		assert.Equal(t, services.KitchenColumns[i], col.Status)
		assert.NotNil(t, col.Orders)
	}
	assert.Len(t, cols[1].Orders, 1) // preparing
	assert.Len(t, cols[0].Orders, 0) // pending stays, empty
}

func TestFilterByStatus(t *testing.T) {
	orders := []entity.Order{
		order(1, entity.StatusPending),
		order(2, entity.StatusCancelled),
	}
	assert.Equal(t, orders, services.FilterByStatus(orders, "all"))
	assert.Equal(t, orders, services.FilterByStatus(orders, ""))
	assert.Len(t, services.FilterByStatus(orders, "cancelled"), 1)
	assert.Empty(t, services.FilterByStatus(orders, "ready"))
}

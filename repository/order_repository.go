package repository

import (
	"errors"

	"gorm.io/gorm"

	"tavola/entity"
)

var ErrNotFound = errors.New("not found")

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListActiveByPhone returns the non-terminal orders for a phone number,
// oldest first. This backs the customer tracking poll.
func (r *OrderRepository) ListActiveByPhone(phone string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("phone_number = ? AND status NOT IN ?", phone,
			[]entity.OrderStatus{entity.StatusCompleted, entity.StatusCancelled}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// ListByStatuses returns orders whose status is in the given set,
// oldest first so board columns keep arrival order.
func (r *OrderRepository) ListByStatuses(statuses []entity.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Preload("Items").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves the order from one status to another with a
// compare-and-set; the returned row count is 0 when the order is gone
// or its status changed underneath us.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

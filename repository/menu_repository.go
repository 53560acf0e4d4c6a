package repository

import (
	"errors"

	"gorm.io/gorm"

	"tavola/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAvailable returns the customer-facing catalog, optionally
// filtered by category.
func (r *MenuRepository) ListAvailable(category entity.Category) ([]entity.MenuItem, error) {
	q := r.DB.Where("available = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []entity.MenuItem
	err := q.Order("category, id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

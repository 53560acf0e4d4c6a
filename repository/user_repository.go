package repository

import (
	"errors"

	"gorm.io/gorm"

	"tavola/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Update(u *entity.User) error {
	return r.DB.Save(u).Error
}

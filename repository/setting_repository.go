package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tavola/entity"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) All() (map[string]string, error) {
	var rows []entity.Setting
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// Set upserts one setting by key.
func (r *SettingRepository) Set(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entity.Setting{Key: key, Value: value}).Error
}

package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tavola/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Setting{},
	)
}

// Ping is a one-shot connectivity diagnostic, used by /health. It is
// not part of request serving.
func Ping() error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

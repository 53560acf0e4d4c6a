package configs

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"tavola/entity"
)

// SeedAdmin creates the initial admin account when no users exist.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Password: string(hash),
		Role:     entity.RoleAdmin,
		Name:     "Administrator",
		Email:    "admin@tavola.local",
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Info("seeded admin user")
	return nil
}

// SeedMenu loads a starter catalog so a fresh install has something to
// order from.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{
			Name:        datatypes.NewJSONType(map[string]string{"en": "Margherita Pizza", "it": "Pizza Margherita"}),
			Description: datatypes.NewJSONType(map[string]string{"en": "Tomato, mozzarella and basil", "it": "Pomodoro, mozzarella e basilico"}),
			Price:       8.5,
			Category:    entity.CategoryMain,
			Allergens:   datatypes.JSONSlice[entity.Allergen]{entity.AllergenGluten, entity.AllergenDairy},
			DietaryInfo: datatypes.JSONSlice[entity.DietaryTag]{entity.DietaryVegetarian},
			Ingredients: datatypes.NewJSONType(map[string][]string{
				"en": {"tomato", "mozzarella", "basil"},
				"it": {"pomodoro", "mozzarella", "basilico"},
			}),
			PrepTime:  15,
			Available: true,
		},
		{
			Name:        datatypes.NewJSONType(map[string]string{"en": "Bruschetta", "it": "Bruschetta"}),
			Description: datatypes.NewJSONType(map[string]string{"en": "Grilled bread with tomatoes"}),
			Price:       4.0,
			Category:    entity.CategoryAppetizer,
			Allergens:   datatypes.JSONSlice[entity.Allergen]{entity.AllergenGluten},
			DietaryInfo: datatypes.JSONSlice[entity.DietaryTag]{entity.DietaryVegan},
			Ingredients: datatypes.NewJSONType(map[string][]string{
				"en": {"bread", "tomato", "garlic", "olive oil"},
			}),
			PrepTime:  5,
			Available: true,
		},
		{
			Name:      datatypes.NewJSONType(map[string]string{"en": "Tiramisu", "it": "Tiramisù"}),
			Price:     5.5,
			Category:  entity.CategoryDessert,
			Allergens: datatypes.JSONSlice[entity.Allergen]{entity.AllergenDairy, entity.AllergenEggs, entity.AllergenGluten},
			Ingredients: datatypes.NewJSONType(map[string][]string{
				"en": {"mascarpone", "coffee", "ladyfingers", "cocoa"},
			}),
			PrepTime:  2,
			Available: true,
		},
	}
	return db.Create(&items).Error
}

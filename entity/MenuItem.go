package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	// Name and Description are multilingual; the English entry is
	// mandatory, everything else defaults to empty.
	Name        MultiText `json:"name"`
	Description MultiText `json:"description"`

	Price    float64  `json:"price"`
	Category Category `gorm:"index" json:"category"`
	ImageURL string   `json:"imageUrl,omitempty"`

	Allergens   datatypes.JSONSlice[Allergen]   `json:"allergens"`
	DietaryInfo datatypes.JSONSlice[DietaryTag] `json:"dietaryInfo"`

	// Ingredients maps a language code to the ingredient list.
	Ingredients datatypes.JSONType[map[string][]string] `json:"ingredients"`

	// PrepTime is in minutes.
	PrepTime  int  `json:"prepTime"`
	Available bool `gorm:"default:true" json:"available"`

	// Optional nutrition facts, per serving.
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

func (m *MenuItem) Validate() error {
	var ve ValidationError
	if m.Name.Data()["en"] == "" {
		ve.Add("name", "english name is required")
	}
	if m.Price < 0 {
		ve.Add("price", "must not be negative")
	}
	if !m.Category.Valid() {
		ve.Add("category", "unknown category")
	}
	if m.PrepTime < 1 {
		ve.Add("prepTime", "must be at least 1 minute")
	}
	for _, a := range m.Allergens {
		if !a.Valid() {
			ve.Add("allergens", "unknown allergen: "+string(a))
		}
	}
	for _, d := range m.DietaryInfo {
		if !d.Valid() {
			ve.Add("dietaryInfo", "unknown dietary tag: "+string(d))
		}
	}
	for field, v := range map[string]*float64{
		"calories": m.Calories, "protein": m.Protein, "carbs": m.Carbs, "fat": m.Fat,
	} {
		if v != nil && *v < 0 {
			ve.Add(field, "must not be negative")
		}
	}
	return ve.Err()
}

package entity

// Closed enumerated domains. Values outside these sets are rejected at
// the validation boundary before anything reaches the repositories.

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
	StatusDelayed   OrderStatus = "delayed"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists every order status in board-column order.
var AllStatuses = []OrderStatus{
	StatusPending, StatusPreparing, StatusDelayed,
	StatusReady, StatusServed, StatusCompleted, StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the order lifecycle.
// Terminal orders are excluded from active tracking views.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategorySide      Category = "side"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

var AllCategories = []Category{
	CategoryAppetizer, CategoryMain, CategorySide, CategoryDessert, CategoryBeverage,
}

func (c Category) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Allergen string

const (
	AllergenGluten    Allergen = "gluten"
	AllergenDairy     Allergen = "dairy"
	AllergenEggs      Allergen = "eggs"
	AllergenNuts      Allergen = "nuts"
	AllergenPeanuts   Allergen = "peanuts"
	AllergenSoy       Allergen = "soy"
	AllergenFish      Allergen = "fish"
	AllergenShellfish Allergen = "shellfish"
	AllergenSesame    Allergen = "sesame"
)

var AllAllergens = []Allergen{
	AllergenGluten, AllergenDairy, AllergenEggs, AllergenNuts, AllergenPeanuts,
	AllergenSoy, AllergenFish, AllergenShellfish, AllergenSesame,
}

func (a Allergen) Valid() bool {
	for _, v := range AllAllergens {
		if a == v {
			return true
		}
	}
	return false
}

type DietaryTag string

const (
	DietaryVegetarian  DietaryTag = "vegetarian"
	DietaryVegan       DietaryTag = "vegan"
	DietaryGlutenFree  DietaryTag = "gluten-free"
	DietaryLactoseFree DietaryTag = "lactose-free"
	DietaryHalal       DietaryTag = "halal"
)

var AllDietaryTags = []DietaryTag{
	DietaryVegetarian, DietaryVegan, DietaryGlutenFree, DietaryLactoseFree, DietaryHalal,
}

func (d DietaryTag) Valid() bool {
	for _, v := range AllDietaryTags {
		if d == v {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleKitchen Role = "kitchen"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleKitchen
}

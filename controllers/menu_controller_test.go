package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tavola/controllers"
	"tavola/entity"
	"tavola/repository"
)

func setupMenuRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MenuItem{}))

	ctrl := controllers.NewMenuController(repository.NewMenuRepository(db))

	r := gin.New()
	r.GET("/api/menu", ctrl.List)
	r.POST("/api/admin/menu", ctrl.Create)
	r.PATCH("/api/admin/menu/:id/availability", ctrl.SetAvailability)
	return r, db
}

func TestMenuListResolvesLanguage(t *testing.T) {
	r, db := setupMenuRouter(t)

	require.NoError(t, db.Create(&entity.MenuItem{
		Name:        datatypes.NewJSONType(map[string]string{"en": "Margherita Pizza", "it": "Pizza Margherita"}),
		Price:       8.5,
		Category:    entity.CategoryMain,
		PrepTime:    15,
		Available:   true,
		Ingredients: datatypes.NewJSONType(map[string][]string{"en": {"tomato"}, "it": {"pomodoro"}}),
	}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{
		Name:      datatypes.NewJSONType(map[string]string{"en": "Hidden"}),
		Price:     1,
		Category:  entity.CategorySide,
		PrepTime:  1,
		Available: false,
	}).Error)

	type listOut struct {
		Data struct {
			Items []controllers.MenuItemView `json:"items"`
		} `json:"data"`
	}

	rec := doJSON(r, http.MethodGet, "/api/menu?lang=it", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out listOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Items, 1, "unavailable items are hidden")
	assert.Equal(t, "Pizza Margherita", out.Data.Items[0].Name)
	assert.Equal(t, []string{"pomodoro"}, out.Data.Items[0].Ingredients)

	// Unknown language falls back to English.
	rec = doJSON(r, http.MethodGet, "/api/menu?lang=fr", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out = listOut{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, "Margherita Pizza", out.Data.Items[0].Name)

	// Category filter, closed set.
	rec = doJSON(r, http.MethodGet, "/api/menu?category=dessert", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out = listOut{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Data.Items)

	rec = doJSON(r, http.MethodGet, "/api/menu?category=junkfood", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuCreateValidation(t *testing.T) {
	r, _ := setupMenuRouter(t)

	// Missing English name and zero prep time.
	rec := doJSON(r, http.MethodPost, "/api/admin/menu", gin.H{
		"name":     map[string]string{"it": "Solo italiano"},
		"price":    5.0,
		"category": "main",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out struct {
		Fields []entity.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	fields := make([]string, 0, len(out.Fields))
	for _, fe := range out.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "prepTime")

	// Valid item goes through.
	rec = doJSON(r, http.MethodPost, "/api/admin/menu", gin.H{
		"name":      map[string]string{"en": "Espresso"},
		"price":     1.5,
		"category":  "beverage",
		"prepTime":  1,
		"available": true,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSetAvailability(t *testing.T) {
	r, db := setupMenuRouter(t)
	m := entity.MenuItem{
		Name:      datatypes.NewJSONType(map[string]string{"en": "Espresso"}),
		Price:     1.5,
		Category:  entity.CategoryBeverage,
		PrepTime:  1,
		Available: true,
	}
	require.NoError(t, db.Create(&m).Error)

	rec := doJSON(r, http.MethodPatch, "/api/admin/menu/"+itoa(m.ID)+"/availability", gin.H{"available": false})
	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, m.ID).Error)
	assert.False(t, got.Available)

	rec = doJSON(r, http.MethodPatch, "/api/admin/menu/9999/availability", gin.H{"available": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

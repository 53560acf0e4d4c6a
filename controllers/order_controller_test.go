package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tavola/controllers"
	"tavola/entity"
	"tavola/repository"
	"tavola/services"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Setting{},
	))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := services.NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		nil, nil, log)
	ctrl := controllers.NewOrderController(svc)

	r := gin.New()
	r.Use(gin.Recovery())
	api := r.Group("/api")
	api.POST("/orders", ctrl.Create)
	api.GET("/orders/track/:phoneNumber", ctrl.Track)
	api.GET("/orders/:id", ctrl.Detail)
	api.PATCH("/orders/:id", ctrl.UpdateStatus)

	return r, db
}

func seedMenuItem(t *testing.T, db *gorm.DB) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{
		Name:      datatypes.NewJSONType(map[string]string{"en": "Pizza"}),
		Price:     8.5,
		Category:  entity.CategoryMain,
		PrepTime:  15,
		Available: true,
	}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutEndpoint(t *testing.T) {
	r, db := setupOrderRouter(t)
	pizza := seedMenuItem(t, db)

	rec := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"type":         "takeaway",
		"customerName": "Mario",
		"phoneNumber":  "3331234567",
		"items": []gin.H{
			{"menuItemId": pizza.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		OK   bool         `json:"ok"`
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.OK)
	assert.Equal(t, entity.StatusPending, out.Data.Status)
	assert.InDelta(t, 17.0, out.Data.Total, 1e-9)
}

func TestCheckoutValidationErrors(t *testing.T) {
	r, db := setupOrderRouter(t)
	pizza := seedMenuItem(t, db)

	// Missing customer name for takeaway → field-level messages.
	rec := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"type":        "takeaway",
		"phoneNumber": "3331234567",
		"items":       []gin.H{{"menuItemId": pizza.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out struct {
		OK     bool                `json:"ok"`
		Fields []entity.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.OK)
	require.NotEmpty(t, out.Fields)
	assert.Equal(t, "customerName", out.Fields[0].Field)

	// Malformed body.
	rec = doJSON(r, http.MethodPost, "/api/orders", gin.H{"type": "takeaway"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackEndpointFiltersTerminal(t *testing.T) {
	r, db := setupOrderRouter(t)
	pizza := seedMenuItem(t, db)

	create := func() uint {
		rec := doJSON(r, http.MethodPost, "/api/orders", gin.H{
			"type":         "takeaway",
			"customerName": "Mario",
			"phoneNumber":  "3331234567",
			"items":        []gin.H{{"menuItemId": pizza.ID, "quantity": 1}},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var out struct {
			Data entity.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out.Data.ID
	}
	keep := create()
	drop := create()
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", drop).
		Update("status", entity.StatusCancelled).Error)

	rec := doJSON(r, http.MethodGet, "/api/orders/track/3331234567", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data struct {
			Orders []entity.Order `json:"orders"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Orders, 1)
	assert.Equal(t, keep, out.Data.Orders[0].ID)

	// Bad phone number is rejected before hitting the database.
	rec = doJSON(r, http.MethodGet, "/api/orders/track/123", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	r, db := setupOrderRouter(t)
	pizza := seedMenuItem(t, db)

	rec := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"type":         "takeaway",
		"customerName": "Mario",
		"phoneNumber":  "3331234567",
		"items":        []gin.H{{"menuItemId": pizza.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Data.ID

	// pending → preparing is fine.
	rec = doJSON(r, http.MethodPatch, "/api/orders/"+itoa(id), gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// preparing → completed is not in the table.
	rec = doJSON(r, http.MethodPatch, "/api/orders/"+itoa(id), gin.H{"status": "completed"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The conflict response carries the current order for reconciliation.
	var conflict struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conflict))
	assert.Equal(t, entity.StatusPreparing, conflict.Data.Status)

	// Statuses outside the enum are rejected by validation.
	rec = doJSON(r, http.MethodPatch, "/api/orders/"+itoa(id), gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown order id.
	rec = doJSON(r, http.MethodPatch, "/api/orders/99999", gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

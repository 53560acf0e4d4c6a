package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"tavola/entity"
	"tavola/pkg/i18n"
	"tavola/pkg/resp"
	"tavola/repository"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// MenuItemView is a catalog entry with its multilingual fields resolved
// for one language.
type MenuItemView struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       float64             `json:"price"`
	Category    entity.Category     `json:"category"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Allergens   []entity.Allergen   `json:"allergens"`
	DietaryInfo []entity.DietaryTag `json:"dietaryInfo"`
	Ingredients []string            `json:"ingredients,omitempty"`
	PrepTime    int                 `json:"prepTime"`
	Available   bool                `json:"available"`
}

func viewOf(m entity.MenuItem, lang string) MenuItemView {
	desc := i18n.Resolve(m.Description.Data(), lang)
	if desc == i18n.Placeholder {
		desc = ""
	}
	return MenuItemView{
		ID:          m.ID,
		Name:        i18n.Resolve(m.Name.Data(), lang),
		Description: desc,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Allergens:   m.Allergens,
		DietaryInfo: m.DietaryInfo,
		Ingredients: i18n.ResolveList(m.Ingredients.Data(), lang),
		PrepTime:    m.PrepTime,
		Available:   m.Available,
	}
}

// GET /api/menu?lang=&category= — the customer-facing catalog.
func (mc *MenuController) List(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	category := entity.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		resp.BadRequest(c, "unknown category")
		return
	}

	items, err := mc.Repo.ListAvailable(category)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	views := make([]MenuItemView, 0, len(items))
	for _, m := range items {
		views = append(views, viewOf(m, lang))
	}
	resp.OK(c, gin.H{"items": views})
}

// ----- Admin CRUD -----

// GET /api/admin/menu — full catalog with raw multilingual maps.
func (mc *MenuController) AdminList(c *gin.Context) {
	items, err := mc.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var m entity.MenuItem
	if err := c.ShouldBindJSON(&m); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := m.Validate(); err != nil {
		var ve entity.ValidationError
		errors.As(err, &ve)
		resp.Invalid(c, ve)
		return
	}
	if err := mc.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /api/admin/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	existing, err := mc.Repo.Get(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var m entity.MenuItem
	if err := c.ShouldBindJSON(&m); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if err := m.Validate(); err != nil {
		var ve entity.ValidationError
		errors.As(err, &ve)
		resp.Invalid(c, ve)
		return
	}
	if err := mc.Repo.Update(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

type availabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /api/admin/menu/:id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Repo.SetAvailability(uint(id), *req.Available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "available": *req.Available})
}

// DELETE /api/admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := mc.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

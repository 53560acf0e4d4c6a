package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tavola/configs"
	"tavola/entity"
	"tavola/pkg/resp"
	"tavola/repository"
	"tavola/services"
	"tavola/utils"
)

type AdminController struct {
	Users    *repository.UserRepository
	Settings *repository.SettingRepository
	OrderSvc *services.OrderService
	Cfg      *configs.Config
}

func NewAdminController(users *repository.UserRepository, settings *repository.SettingRepository, orderSvc *services.OrderService, cfg *configs.Config) *AdminController {
	return &AdminController{Users: users, Settings: settings, OrderSvc: orderSvc, Cfg: cfg}
}

// GET /api/admin/session — session probe for the back office. Always
// answers 200 with the bare {authenticated, user?} shape the admin UI
// expects; an absent or bad token just means unauthenticated.
func (ac *AdminController) Session(c *gin.Context) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), ac.Cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	u, err := ac.Users.Get(claims.UserID)
	if err != nil || !u.Active {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          gin.H{"id": u.ID, "username": u.Username, "role": u.Role},
	})
}

// GET /api/admin/orders?status= — full order list, "all" or empty
// passes every status through.
func (ac *AdminController) Orders(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	if status != "all" && !entity.OrderStatus(status).Valid() {
		resp.BadRequest(c, "unknown status: "+status)
		return
	}
	orders, err := ac.OrderSvc.AdminList(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// ----- Users -----

// GET /api/admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Users.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

type userReq struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Active   *bool       `json:"active"`
}

// POST /api/admin/users
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u := entity.User{
		Username: req.Username,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
		Active:   true,
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password == "" {
		var ve entity.ValidationError
		ve.Add("password", "required")
		resp.Invalid(c, ve)
		return
	}
	if err := u.Validate(req.Password); err != nil {
		var ve entity.ValidationError
		errors.As(err, &ve)
		resp.Invalid(c, ve)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	u.Password = string(hash)
	if err := ac.Users.Create(&u); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, u)
}

// PUT /api/admin/users/:id — partial update; empty password leaves the
// current one in place.
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	u, err := ac.Users.Get(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Active != nil {
		// An admin cannot lock themselves out.
		if !*req.Active && u.ID == utils.CurrentUserID(c) {
			resp.BadRequest(c, "cannot deactivate your own account")
			return
		}
		u.Active = *req.Active
	}
	if err := u.Validate(req.Password); err != nil {
		var ve entity.ValidationError
		errors.As(err, &ve)
		resp.Invalid(c, ve)
		return
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		u.Password = string(hash)
	}
	if err := ac.Users.Update(u); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}

// ----- Settings -----

// GET /api/admin/settings
func (ac *AdminController) GetSettings(c *gin.Context) {
	settings, err := ac.Settings.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"settings": settings})
}

// PUT /api/admin/settings — upserts the posted key/value pairs.
func (ac *AdminController) PutSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	for k, v := range req {
		if err := ac.Settings.Set(k, v); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	settings, err := ac.Settings.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"settings": settings})
}

package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tavola/configs"
	"tavola/pkg/resp"
	"tavola/repository"
	"tavola/utils"
)

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthController(users *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Users.GetByUsername(req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !u.Active {
		resp.Forbidden(c, "account disabled")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(u, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": u.ID, "username": u.Username, "role": u.Role},
	})
}

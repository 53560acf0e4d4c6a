package controllers

import (
	"github.com/gin-gonic/gin"

	"tavola/pkg/resp"
	"tavola/services"
)

type KitchenController struct {
	Service *services.OrderService
}

func NewKitchenController(svc *services.OrderService) *KitchenController {
	return &KitchenController{Service: svc}
}

// GET /api/kitchen/board — active orders grouped into the fixed kitchen
// columns (pending, preparing, delayed, ready, served).
func (kc *KitchenController) Board(c *gin.Context) {
	columns, err := kc.Service.KitchenBoard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"columns": columns})
}

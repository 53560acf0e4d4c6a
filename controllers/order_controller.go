package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"tavola/entity"
	"tavola/pkg/resp"
	"tavola/services"
	"tavola/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /api/orders — checkout submission.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(&req)
	if err != nil {
		var ve entity.ValidationError
		if errors.As(err, &ve) {
			resp.Invalid(c, ve)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/track/:phoneNumber — active orders for the tracking
// poll; terminal orders are excluded.
func (oc *OrderController) Track(c *gin.Context) {
	phone := c.Param("phoneNumber")
	if n := len(phone); n < 10 || n > 15 {
		resp.BadRequest(c, "phoneNumber must be 10-15 characters")
		return
	}
	orders, err := oc.Service.Track(phone)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := oc.Service.Get(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /api/orders/:id — status change from kitchen/admin views. On a
// conflict the current order is returned so the caller can reconcile
// its local copy instead of keeping a diverged one.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Transition(uint(id), req.Status, utils.CurrentUsername(c))
	switch {
	case err == nil:
		resp.OK(c, order)
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "invalid status transition", order)
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, "order changed concurrently", order)
	default:
		var ve entity.ValidationError
		if errors.As(err, &ve) {
			resp.Invalid(c, ve)
			return
		}
		resp.ServerError(c, err)
	}
}

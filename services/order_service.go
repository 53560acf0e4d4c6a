package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tavola/entity"
	"tavola/repository"
)

var ErrNotFound = repository.ErrNotFound

// BoardFeed receives order events for connected kitchen displays.
type BoardFeed interface {
	BroadcastOrder(event string, order *entity.Order)
}

// OrderNotifier sends a status update to the customer's phone.
// estimatedMinutes is 0 when no estimate applies.
type OrderNotifier interface {
	SendOrderUpdate(phone, orderNumber string, status entity.OrderStatus, estimatedMinutes int) error
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository

	// Feed and Notifier may be nil (tests, one-shot tools).
	Feed     BoardFeed
	Notifier OrderNotifier

	Log *logrus.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, feed BoardFeed, notifier OrderNotifier, log *logrus.Logger) *OrderService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Feed: feed, Notifier: notifier, Log: log}
}

// ----- DTOs from controllers -----

type OrderItemIn struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

type CreateOrderReq struct {
	Type                entity.OrderType `json:"type" binding:"required"`
	CustomerName        string           `json:"customerName"`
	TableNumber         string           `json:"tableNumber"`
	PhoneNumber         string           `json:"phoneNumber" binding:"required"`
	SpecialInstructions string           `json:"specialInstructions"`
	Items               []OrderItemIn    `json:"items" binding:"required,min=1"`
}

// Create validates a checkout submission, snapshots item names and
// prices from the current menu, derives the total and persists the
// order as pending.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	order := entity.Order{
		Number:              uuid.NewString(),
		Type:                req.Type,
		Status:              entity.StatusPending,
		CustomerName:        req.CustomerName,
		TableNumber:         req.TableNumber,
		PhoneNumber:         req.PhoneNumber,
		SpecialInstructions: req.SpecialInstructions,
	}

	var ve entity.ValidationError
	for _, in := range req.Items {
		m, err := s.MenuRepo.Get(in.MenuItemID)
		if errors.Is(err, repository.ErrNotFound) {
			ve.Add("items", fmt.Sprintf("menu item %d not found", in.MenuItemID))
			continue
		}
		if err != nil {
			return nil, err
		}
		if !m.Available {
			ve.Add("items", fmt.Sprintf("menu item %d is not available", in.MenuItemID))
			continue
		}
		item := entity.OrderItem{
			MenuItemID:          m.ID,
			Name:                m.Name,
			Price:               m.Price,
			Quantity:            in.Quantity,
			SpecialInstructions: in.SpecialInstructions,
		}
		order.Total += item.LineTotal()
		order.Items = append(order.Items, item)
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.BroadcastOrder("order.created", &order)
	}
	s.Log.WithFields(logrus.Fields{
		"order": order.Number, "type": order.Type, "total": order.Total,
	}).Info("order created")
	return &order, nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.Get(id)
}

// Track returns the active orders for a phone number; terminal orders
// never show up in the tracking view.
func (s *OrderService) Track(phone string) ([]entity.Order, error) {
	orders, err := s.Repo.ListActiveByPhone(phone)
	if err != nil {
		return nil, err
	}
	active := orders[:0]
	for _, o := range orders {
		if !o.Status.Terminal() {
			active = append(active, o)
		}
	}
	return active, nil
}

// KitchenBoard returns the kitchen columns in display order.
func (s *OrderService) KitchenBoard() ([]BoardColumn, error) {
	orders, err := s.Repo.ListByStatuses(KitchenColumns)
	if err != nil {
		return nil, err
	}
	return Columns(orders, KitchenColumns), nil
}

// AdminList returns orders filtered by status; "all" (or empty) passes
// everything through.
func (s *OrderService) AdminList(status string) ([]entity.Order, error) {
	orders, err := s.Repo.ListAll(0)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(orders, status), nil
}

// estimatedMinutes derives an ETA from the slowest item on the order.
// Menu lookups are best effort; an archived item just contributes 0.
func (s *OrderService) estimatedMinutes(o *entity.Order) int {
	eta := 0
	for _, it := range o.Items {
		m, err := s.MenuRepo.Get(it.MenuItemID)
		if err != nil {
			continue
		}
		if m.PrepTime > eta {
			eta = m.PrepTime
		}
	}
	return eta
}

package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tavola/entity"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusConflict means the guarded update lost a race: the
	// order's status changed between read and write. The caller should
	// re-read and reconcile.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// transitions is the allowed status graph:
//
//	pending → preparing → ready → served → completed
//
// with delayed reachable from pending/preparing and cancelled from any
// non-terminal state. Terminal states have no outgoing edges.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:   {entity.StatusPreparing, entity.StatusDelayed, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusDelayed, entity.StatusCancelled},
	entity.StatusDelayed:   {entity.StatusPreparing, entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusServed, entity.StatusCancelled},
	entity.StatusServed:    {entity.StatusCompleted, entity.StatusCancelled},
}

// CanTransition reports whether from → to is an allowed move.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves an order to next and fires the side effects: a
// board broadcast for kitchen displays and an SMS to the customer.
// changedBy is the acting staff username, kept for the audit log.
// A failed SMS is logged, it does not undo the transition.
func (s *OrderService) Transition(orderID uint, next entity.OrderStatus, changedBy string) (*entity.Order, error) {
	if !next.Valid() {
		var ve entity.ValidationError
		ve.Add("status", "unknown status: "+string(next))
		return nil, ve
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, next) {
		return o, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			// Hand the current row back so the caller can reconcile.
			if cur, gerr := s.Repo.Get(orderID); gerr == nil {
				return cur, err
			}
		}
		return nil, err
	}

	updated, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.BroadcastOrder("order.updated", updated)
	}
	if s.Notifier != nil {
		eta := 0
		if next == entity.StatusPreparing || next == entity.StatusDelayed {
			eta = s.estimatedMinutes(updated)
		}
		if err := s.Notifier.SendOrderUpdate(updated.PhoneNumber, updated.Number, next, eta); err != nil {
			s.Log.WithError(err).WithField("order", updated.Number).Warn("sms notification failed")
		}
	}
	s.Log.WithFields(logrus.Fields{
		"order": updated.Number, "from": o.Status, "to": next, "by": changedBy,
	}).Info("order status changed")
	return updated, nil
}

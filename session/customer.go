package session

import (
	"encoding/json"
	"time"

	"tavola/entity"
)

const customerKey = "customerInfo"

// CustomerTTL is how long saved customer info stays valid. Past it the
// customer flow is shown again instead of auto-redirecting to the menu.
const CustomerTTL = 24 * time.Hour

// CustomerInfo mirrors the per-session checkout context.
type CustomerInfo struct {
	PhoneNumber           string           `json:"phoneNumber"`
	OrderType             entity.OrderType `json:"orderType"`
	TableNumber           string           `json:"tableNumber,omitempty"`
	CustomerName          string           `json:"customerName,omitempty"`
	SubscribeToNewsletter bool             `json:"subscribeToNewsletter"`
	Timestamp             time.Time        `json:"timestamp"`
}

// Session wraps a Store with the customer/cart accessors.
type Session struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Session {
	return &Session{store: store, now: time.Now}
}

// SaveCustomer stores the customer info, stamping it with the current
// time when the caller left Timestamp zero.
func (s *Session) SaveCustomer(info CustomerInfo) {
	if info.Timestamp.IsZero() {
		info.Timestamp = s.now()
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	s.store.Set(customerKey, raw)
}

// Customer returns the saved info, or false when absent, unreadable or
// older than CustomerTTL. Expired entries are removed.
func (s *Session) Customer() (CustomerInfo, bool) {
	raw, ok := s.store.Get(customerKey)
	if !ok {
		return CustomerInfo{}, false
	}
	var info CustomerInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		s.store.Delete(customerKey)
		return CustomerInfo{}, false
	}
	if s.now().Sub(info.Timestamp) > CustomerTTL {
		s.store.Delete(customerKey)
		return CustomerInfo{}, false
	}
	return info, true
}

func (s *Session) ClearCustomer() {
	s.store.Delete(customerKey)
}

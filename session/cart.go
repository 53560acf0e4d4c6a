package session

import (
	"encoding/json"
	"sort"
	"strconv"
)

const cartKey = "cartItems"

// CartLine is one cart entry, keyed by menu item id in the stored map.
type CartLine struct {
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

func (s *Session) cart() map[string]CartLine {
	raw, ok := s.store.Get(cartKey)
	if !ok {
		return map[string]CartLine{}
	}
	var cart map[string]CartLine
	if err := json.Unmarshal(raw, &cart); err != nil || cart == nil {
		return map[string]CartLine{}
	}
	return cart
}

func (s *Session) saveCart(cart map[string]CartLine) {
	raw, err := json.Marshal(cart)
	if err != nil {
		return
	}
	s.store.Set(cartKey, raw)
}

// Cart returns a copy of the current cart contents.
func (s *Session) Cart() map[string]CartLine {
	return s.cart()
}

// AddToCart adds qty of an item, merging with an existing line.
func (s *Session) AddToCart(itemID uint, qty int, instructions string) {
	if qty < 1 {
		return
	}
	cart := s.cart()
	key := strconv.FormatUint(uint64(itemID), 10)
	line := cart[key]
	line.Quantity += qty
	if instructions != "" {
		line.SpecialInstructions = instructions
	}
	cart[key] = line
	s.saveCart(cart)
}

// SetQuantity replaces a line's quantity; 0 removes the line.
func (s *Session) SetQuantity(itemID uint, qty int) {
	cart := s.cart()
	key := strconv.FormatUint(uint64(itemID), 10)
	if qty < 1 {
		delete(cart, key)
	} else {
		line := cart[key]
		line.Quantity = qty
		cart[key] = line
	}
	s.saveCart(cart)
}

func (s *Session) RemoveFromCart(itemID uint) {
	s.SetQuantity(itemID, 0)
}

func (s *Session) ClearCart() {
	s.store.Delete(cartKey)
}

// CartCount is the badge count: the sum of line quantities.
func (s *Session) CartCount() int {
	total := 0
	for _, line := range s.cart() {
		total += line.Quantity
	}
	return total
}

// CheckoutLine is a drained cart line ready to become an order item.
type CheckoutLine struct {
	MenuItemID          uint
	Quantity            int
	SpecialInstructions string
}

// Checkout drains the cart into order lines, sorted by item id so the
// submitted order is deterministic.
func (s *Session) Checkout() []CheckoutLine {
	cart := s.cart()
	keys := make([]string, 0, len(cart))
	for k := range cart {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseUint(keys[i], 10, 64)
		b, _ := strconv.ParseUint(keys[j], 10, 64)
		return a < b
	})

	lines := make([]CheckoutLine, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		line := cart[k]
		lines = append(lines, CheckoutLine{
			MenuItemID:          uint(id),
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	s.ClearCart()
	return lines
}

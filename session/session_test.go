package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/entity"
)

func TestCartCountSumsQuantities(t *testing.T) {
	s := New(NewMemoryStore())

	s.AddToCart(1, 2, "")
	s.AddToCart(2, 3, "extra cheese")

	assert.Equal(t, 5, s.CartCount())

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 2, cart["1"].Quantity)
	assert.Equal(t, 3, cart["2"].Quantity)
	assert.Equal(t, "extra cheese", cart["2"].SpecialInstructions)
}

func TestCartMergeAndRemove(t *testing.T) {
	s := New(NewMemoryStore())

	s.AddToCart(7, 1, "")
	s.AddToCart(7, 2, "")
	assert.Equal(t, 3, s.CartCount())

	s.SetQuantity(7, 1)
	assert.Equal(t, 1, s.CartCount())

	s.RemoveFromCart(7)
	assert.Equal(t, 0, s.CartCount())
	assert.Empty(t, s.Cart())
}

func TestCheckoutDrainsCart(t *testing.T) {
	s := New(NewMemoryStore())
	s.AddToCart(9, 1, "")
	s.AddToCart(3, 2, "no onions")

	lines := s.Checkout()
	require.Len(t, lines, 2)
	// Sorted by item id.
	assert.Equal(t, uint(3), lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "no onions", lines[0].SpecialInstructions)
	assert.Equal(t, uint(9), lines[1].MenuItemID)

	assert.Equal(t, 0, s.CartCount())
}

func TestCustomerRoundTrip(t *testing.T) {
	s := New(NewMemoryStore())

	s.SaveCustomer(CustomerInfo{
		PhoneNumber:           "3331234567",
		OrderType:             entity.OrderTypeDineIn,
		TableNumber:           "4",
		SubscribeToNewsletter: true,
	})

	info, ok := s.Customer()
	require.True(t, ok)
	assert.Equal(t, "3331234567", info.PhoneNumber)
	assert.Equal(t, entity.OrderTypeDineIn, info.OrderType)
	assert.False(t, info.Timestamp.IsZero())

	s.ClearCustomer()
	_, ok = s.Customer()
	assert.False(t, ok)
}

func TestCustomerExpiresAfter24Hours(t *testing.T) {
	s := New(NewMemoryStore())
	now := time.Now()
	s.now = func() time.Time { return now }

	s.SaveCustomer(CustomerInfo{
		PhoneNumber:  "3331234567",
		OrderType:    entity.OrderTypeTakeaway,
		CustomerName: "Mario",
	})

	// 23 hours later the session is still good.
	s.now = func() time.Time { return now.Add(23 * time.Hour) }
	_, ok := s.Customer()
	assert.True(t, ok)

	// 25 hours later it is expired and removed.
	s.now = func() time.Time { return now.Add(25 * time.Hour) }
	_, ok = s.Customer()
	assert.False(t, ok)

	// Gone for good, even back in time.
	s.now = func() time.Time { return now }
	_, ok = s.Customer()
	assert.False(t, ok)
}

func TestCorruptStoredValueIsDropped(t *testing.T) {
	store := NewMemoryStore()
	store.Set(customerKey, []byte("{not json"))
	store.Set(cartKey, []byte("also not json"))

	s := New(store)
	_, ok := s.Customer()
	assert.False(t, ok)
	assert.Equal(t, 0, s.CartCount())
}

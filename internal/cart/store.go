package cart

import (
	"github.com/nikolayk812/bakery-web/internal/domain"
	"golang.org/x/text/currency"
)

// Sink receives a freshly rendered View after every cart mutation.
type Sink interface {
	Show(v View) error
}

type SinkFunc func(v View) error

func (f SinkFunc) Show(v View) error {
	return f(v)
}

type discardSink struct{}

func (discardSink) Show(View) error { return nil }

// Store owns a cart for the lifetime of a page. It is meant to be driven from a
// single event loop and does no locking.
type Store struct {
	cart domain.Cart
	sink Sink

	// lastErr keeps the latest sink failure; mutations themselves never fail.
	lastErr error
}

func NewStore(cur currency.Unit, sink Sink) *Store {
	if sink == nil {
		sink = discardSink{}
	}

	return &Store{
		cart: domain.NewCart(cur),
		sink: sink,
	}
}

func (s *Store) AddItem(id, name string, price domain.Money) {
	s.cart.AddItem(id, name, price)
	s.refresh()
}

// RemoveItem removes one unit of the first item named name. Unknown names are ignored.
func (s *Store) RemoveItem(name string) {
	if s.cart.RemoveItem(name) {
		s.refresh()
	}
}

func (s *Store) Clear() {
	s.cart.Clear()
	s.refresh()
}

// Snapshot returns a copy of the cart that later mutations do not affect.
func (s *Store) Snapshot() domain.Cart {
	return s.cart.Clone()
}

func (s *Store) Len() int {
	return len(s.cart.Items)
}

func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *Store) Total() domain.Money {
	return s.cart.Total
}

// Refresh re-renders the current state, e.g. after the sink was attached to a new page.
func (s *Store) Refresh() error {
	s.refresh()
	return s.lastErr
}

// RenderErr returns the error of the most recent render, if any.
func (s *Store) RenderErr() error {
	return s.lastErr
}

func (s *Store) refresh() {
	s.lastErr = s.sink.Show(Render(s.cart))
}

package storefront

import (
	"errors"
	"fmt"
)

// CartPopup is the cart overlay with its own checkout button, which confirms
// locally and empties the cart without contacting the server.
type CartPopup struct {
	cart     Cart
	notifier Notifier
	hidden   bool
}

func NewCartPopup(cart Cart, notifier Notifier) (*CartPopup, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	if notifier == nil {
		return nil, errors.New("notifier is nil")
	}

	return &CartPopup{
		cart:     cart,
		notifier: notifier,
		hidden:   true,
	}, nil
}

func (p *CartPopup) Open() {
	p.hidden = false
}

func (p *CartPopup) Close() {
	p.hidden = true
}

func (p *CartPopup) Hidden() bool {
	return p.hidden
}

// Checkout reports whether the cart was confirmed and cleared.
func (p *CartPopup) Checkout() bool {
	if p.cart.IsEmpty() {
		p.notifier.Notify("Your cart is empty!")
		return false
	}

	p.notifier.Notify(fmt.Sprintf("Thank you for your order! Total: %s", p.cart.Total()))
	p.cart.Clear()
	p.Close()

	return true
}

package domain

import (
	"golang.org/x/text/currency"
)

type Cart struct {
	Items []CartItem
	Total Money
}

type CartItem struct {
	ID       string
	Name     string
	Price    Money
	Quantity int

	// LineTotal is Price × Quantity, recomputed by the cart after every mutation.
	LineTotal Money
}

func NewCart(cur currency.Unit) Cart {
	return Cart{Total: ZeroMoney(cur)}
}

// AddItem increments the quantity of the item with the same id,
// or appends a new item with quantity 1.
func (c *Cart) AddItem(id, name string, price Money) {
	if i := c.indexByID(id); i >= 0 {
		c.Items[i].Quantity++
	} else {
		c.Items = append(c.Items, CartItem{
			ID:       id,
			Name:     name,
			Price:    price,
			Quantity: 1,
		})
	}

	c.recalculate()
}

// RemoveItem looks the item up by name, not by id: two catalog entries
// sharing a name cannot be told apart here. Reports whether anything changed.
func (c *Cart) RemoveItem(name string) bool {
	i := c.indexByName(name)
	if i < 0 {
		return false
	}

	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
	} else {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}

	c.recalculate()

	return true
}

func (c *Cart) Clear() {
	c.Items = nil
	c.recalculate()
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a copy that shares no item storage with c.
func (c Cart) Clone() Cart {
	clone := Cart{Total: c.Total}
	if len(c.Items) > 0 {
		clone.Items = make([]CartItem, len(c.Items))
		copy(clone.Items, c.Items)
	}

	return clone
}

// recalculate rebuilds every line total and the cart total from scratch.
func (c *Cart) recalculate() {
	total := ZeroMoney(c.Total.Currency)

	for i := range c.Items {
		item := &c.Items[i]
		item.LineTotal = item.Price.Mul(item.Quantity)
		total = total.Add(item.LineTotal)
	}

	c.Total = total
}

func (c Cart) indexByID(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

func (c Cart) indexByName(name string) int {
	for i, item := range c.Items {
		if item.Name == name {
			return i
		}
	}

	return -1
}

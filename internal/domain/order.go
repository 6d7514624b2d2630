package domain

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID           string
	CustomerName string
	Email        string
	Address      string
	Items        []OrderItem
	Total        Money
	Status       string

	CreatedAt time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	Price     Money
	Quantity  int
}

func (i OrderItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

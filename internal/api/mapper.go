package api

import (
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"time"
)

// Contact holds the order form fields sent along with the cart.
type Contact struct {
	Name    string
	Email   string
	Address string
}

func NewCheckoutRequest(contact Contact, cart domain.Cart) CheckoutRequest {
	items := make([]CheckoutItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		items = append(items, CheckoutItem{
			ID:       FlexString(item.ID),
			Name:     item.Name,
			Price:    item.Price.Amount.InexactFloat64(),
			Quantity: item.Quantity,
			Total:    item.LineTotal.Amount.InexactFloat64(),
		})
	}

	return CheckoutRequest{
		Name:    contact.Name,
		Email:   contact.Email,
		Address: contact.Address,
		Total:   cart.Total.Amount.InexactFloat64(),
		Items:   items,
	}
}

func (r CheckoutRequest) ToDomain(cur currency.Unit) domain.Order {
	items := make([]domain.OrderItem, 0, len(r.Items))

	for _, item := range r.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ID.String(),
			Name:      item.Name,
			Price:     domain.NewMoney(decimal.NewFromFloat(item.Price), cur),
			Quantity:  item.Quantity,
		})
	}

	return domain.Order{
		CustomerName: r.Name,
		Email:        r.Email,
		Address:      r.Address,
		Items:        items,
		Total:        domain.NewMoney(decimal.NewFromFloat(r.Total), cur),
	}
}

func (r FeedbackRequest) ToDomain() domain.Feedback {
	return domain.Feedback{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

func NewProducts(products []domain.Product) []Product {
	result := make([]Product, 0, len(products))

	for _, p := range products {
		result = append(result, Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.Amount.InexactFloat64(),
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}

	return result
}

func NewOrder(order domain.Order) Order {
	items := make([]CheckoutItem, 0, len(order.Items))

	for _, item := range order.Items {
		items = append(items, CheckoutItem{
			ID:       FlexString(item.ProductID),
			Name:     item.Name,
			Price:    item.Price.Amount.InexactFloat64(),
			Quantity: item.Quantity,
			Total:    item.LineTotal().Amount.InexactFloat64(),
		})
	}

	return Order{
		ID:        order.ID,
		Name:      order.CustomerName,
		Email:     order.Email,
		Address:   order.Address,
		Total:     order.Total.Amount.InexactFloat64(),
		Status:    order.Status,
		Items:     items,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

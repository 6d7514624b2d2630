package storefront

import (
	"context"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/domain"
)

type CheckoutAPI interface {
	Checkout(ctx context.Context, req api.CheckoutRequest) (api.CheckoutResponse, error)
}

type NewsletterAPI interface {
	Subscribe(ctx context.Context, req api.FeedbackRequest) (api.FeedbackResponse, error)
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(msg string)
}

// Cart is the part of the cart store the forms need.
type Cart interface {
	Snapshot() domain.Cart
	IsEmpty() bool
	Total() domain.Money
	Clear()
}

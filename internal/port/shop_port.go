package port

import (
	"context"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"time"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	// CreateOrder stores the order with all its items and returns the new order id.
	CreateOrder(ctx context.Context, order domain.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
}

type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, feedback domain.Feedback) (int64, error)
}

// Cache stores opaque string values. Get reports a miss with ok=false and no error.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Delete(ctx context.Context, key string) error
}

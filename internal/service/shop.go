// Package service holds the shop use cases behind the HTTP API.
package service

import (
	"context"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/nikolayk812/bakery-web/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"math"
	"net/mail"
	"strings"
)

// totalTolerance is how far a client-computed total may drift before it is logged.
var totalTolerance = decimal.New(1, -2)

type Shop struct {
	products port.ProductRepository
	orders   port.OrderRepository
	feedback port.FeedbackRepository
	logger   *zap.Logger
}

func NewShop(
	products port.ProductRepository,
	orders port.OrderRepository,
	feedback port.FeedbackRepository,
	logger *zap.Logger,
) (*Shop, error) {
	if products == nil || orders == nil || feedback == nil {
		return nil, fmt.Errorf("repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shop{
		products: products,
		orders:   orders,
		feedback: feedback,
		logger:   logger,
	}, nil
}

func (s *Shop) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return products, nil
}

// Checkout validates the order, recomputes its total from the items and stores it.
func (s *Shop) Checkout(ctx context.Context, order domain.Order) (string, error) {
	if err := validateOrder(order); err != nil {
		return "", err
	}

	total := domain.ZeroMoney(order.Total.Currency)
	for _, item := range order.Items {
		total = total.Add(item.LineTotal())
	}

	if order.Total.Amount.Sub(total.Amount).Abs().GreaterThan(totalTolerance) {
		s.logger.Warn("client total differs from items",
			zap.String("client_total", order.Total.String()),
			zap.String("total", total.String()))
	}

	order.Total = total
	order.Status = domain.OrderStatusPending

	orderID, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("orders.CreateOrder: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", orderID),
		zap.Int("items", len(order.Items)),
		zap.String("total", total.String()))

	return orderID, nil
}

func (s *Shop) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return order, nil
}

func (s *Shop) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (int64, error) {
	if err := validateFeedback(feedback); err != nil {
		return 0, err
	}

	id, err := s.feedback.SaveFeedback(ctx, feedback)
	if err != nil {
		return 0, fmt.Errorf("feedback.SaveFeedback: %w", err)
	}

	s.logger.Info("feedback saved",
		zap.Int64("feedback_id", id),
		zap.Bool("newsletter", feedback.Message == domain.NewsletterMessage))

	return id, nil
}

func validateOrder(order domain.Order) error {
	switch {
	case strings.TrimSpace(order.CustomerName) == "":
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidOrder)
	case !validEmail(order.Email):
		return fmt.Errorf("%w: email[%s] is not valid", domain.ErrInvalidOrder, order.Email)
	case strings.TrimSpace(order.Address) == "":
		return fmt.Errorf("%w: address is empty", domain.ErrInvalidOrder)
	case len(order.Items) == 0:
		return fmt.Errorf("%w: no items", domain.ErrInvalidOrder)
	}

	for i, item := range order.Items {
		switch {
		case item.Quantity <= 0, item.Quantity > math.MaxInt32:
			return fmt.Errorf("%w: item[%d] quantity %d", domain.ErrInvalidOrder, i, item.Quantity)
		case item.Price.IsNegative():
			return fmt.Errorf("%w: item[%d] price is negative", domain.ErrInvalidOrder, i)
		case strings.TrimSpace(item.ProductID) == "":
			return fmt.Errorf("%w: item[%d] id is empty", domain.ErrInvalidOrder, i)
		}
	}

	return nil
}

func validateFeedback(feedback domain.Feedback) error {
	switch {
	case strings.TrimSpace(feedback.Name) == "":
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidFeedback)
	case !validEmail(feedback.Email):
		return fmt.Errorf("%w: email[%s] is not valid", domain.ErrInvalidFeedback, feedback.Email)
	case strings.TrimSpace(feedback.Message) == "":
		return fmt.Errorf("%w: message is empty", domain.ErrInvalidFeedback)
	}

	return nil
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

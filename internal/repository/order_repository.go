package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-web/internal/db"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/nikolayk812/bakery-web/internal/port"
	"golang.org/x/text/currency"
	"math"
	"strconv"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("order has no items")
	}
	for i, item := range order.Items {
		if item.Quantity <= 0 || item.Quantity > math.MaxInt32 {
			return "", fmt.Errorf("item[%d] quantity %d out of range", i, item.Quantity)
		}
	}

	orderID, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (int64, error) {
		row, err := q.CreateOrder(ctx, db.CreateOrderParams{
			CustomerName: order.CustomerName,
			Email:        order.Email,
			Address:      order.Address,
			TotalAmount:  order.Total.Amount,
			Currency:     order.Total.Currency.String(),
			Status:       order.Status,
		})
		if err != nil {
			return 0, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for _, item := range order.Items {
			err := q.AddOrderItem(ctx, db.AddOrderItemParams{
				OrderID:     row.ID,
				ProductID:   item.ProductID,
				ProductName: item.Name,
				Quantity:    int32(item.Quantity),
				Price:       item.Price.Amount,
			})
			if err != nil {
				return 0, fmt.Errorf("q.AddOrderItem: %w", err)
			}
		}

		return row.ID, nil
	})
	if err != nil {
		return "", fmt.Errorf("withTx: %w", err)
	}

	return strconv.FormatInt(orderID, 10), nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orderID[%s]: %w", orderID, domain.ErrOrderNotFound)
	}

	row, err := r.q.GetOrder(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("orderID[%s]: %w", orderID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	itemRows, err := r.q.ListOrderItems(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.ListOrderItems: %w", err)
	}

	order, err := mapOrderToDomain(row, itemRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func mapOrderToDomain(row db.Order, itemRows []db.ListOrderItemsRow) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	items := make([]domain.OrderItem, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Price:     domain.Money{Amount: item.Price, Currency: parsedCurrency},
			Quantity:  int(item.Quantity),
		})
	}

	return domain.Order{
		ID:           strconv.FormatInt(row.ID, 10),
		CustomerName: row.CustomerName,
		Email:        row.Email,
		Address:      row.Address,
		Items:        items,
		Total:        domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}, nil
}

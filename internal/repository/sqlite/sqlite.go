// Package sqlite stores the shop in a single SQLite file, the way the site ran
// before it had a postgres database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
	"strconv"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    price       TEXT NOT NULL,
    currency    TEXT NOT NULL DEFAULT 'USD',
    description TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS orders (
    id            INTEGER PRIMARY KEY,
    customer_name TEXT NOT NULL,
    email         TEXT NOT NULL,
    address       TEXT NOT NULL,
    total_amount  TEXT NOT NULL,
    currency      TEXT NOT NULL,
    status        TEXT NOT NULL DEFAULT 'pending',
    order_date    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    id           INTEGER PRIMARY KEY,
    order_id     INTEGER NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
    product_id   TEXT    NOT NULL,
    product_name TEXT    NOT NULL,
    quantity     INTEGER NOT NULL,
    price        TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    message    TEXT NOT NULL,
    created_at TEXT NOT NULL
);

INSERT OR IGNORE INTO products (name, price, description, image_url) VALUES
    ('Chocolate Cake', '25.99', 'Delicious chocolate cake with rich frosting', 'images/product1.jpg'),
    ('Croissant', '3.99', 'Buttery and flaky French pastry', 'images/product2.jpg'),
    ('Sourdough Bread', '5.99', 'Traditional sourdough bread', 'images/product3.jpg'),
    ('Cupcakes (6)', '12.99', 'Assorted cupcakes with different flavors', 'images/product4.jpg');
`

// timeLayout keeps fractional seconds so rows sort by insertion time.
const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

// Repository implements the product, order and feedback ports.
// Amounts are stored as TEXT to keep decimals exact.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open[%s]: %w", path, err)
	}

	// one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec schema: %w", err)
	}

	return &Repository{db: db, now: time.Now}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT id, name, price, currency, description, image_url FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db.QueryContext: %w", err)
	}
	defer rows.Close()

	var products []domain.Product

	for rows.Next() {
		var (
			p     domain.Product
			price string
			cur   string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &cur, &p.Description, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		p.Price, err = parseMoney(price, cur)
		if err != nil {
			return nil, fmt.Errorf("parseMoney: %w", err)
		}

		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order domain.Order) (_ string, txErr error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("order has no items")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("db.BeginTx: %w", err)
	}
	defer func() {
		if txErr != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (customer_name, email, address, total_amount, currency, status, order_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.CustomerName,
		order.Email,
		order.Address,
		order.Total.Amount.String(),
		order.Total.Currency.String(),
		order.Status,
		r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("tx.ExecContext orders: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("res.LastInsertId: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, price) VALUES (?, ?, ?, ?, ?)`,
			orderID, item.ProductID, item.Name, item.Quantity, item.Price.Amount.String(),
		)
		if err != nil {
			return "", fmt.Errorf("tx.ExecContext order_items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("tx.Commit: %w", err)
	}

	return strconv.FormatInt(orderID, 10), nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orderID[%s]: %w", orderID, domain.ErrOrderNotFound)
	}

	var (
		order     domain.Order
		total     string
		cur       string
		orderDate string
	)

	err = r.db.QueryRowContext(ctx,
		`SELECT customer_name, email, address, total_amount, currency, status, order_date FROM orders WHERE id = ?`, id,
	).Scan(&order.CustomerName, &order.Email, &order.Address, &total, &cur, &order.Status, &orderDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("orderID[%s]: %w", orderID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("row.Scan orders: %w", err)
	}

	order.ID = orderID
	if order.Total, err = parseMoney(total, cur); err != nil {
		return domain.Order{}, fmt.Errorf("parseMoney: %w", err)
	}
	if order.CreatedAt, err = time.Parse(timeLayout, orderDate); err != nil {
		return domain.Order{}, fmt.Errorf("time.Parse[%s]: %w", orderDate, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, product_name, quantity, price FROM order_items WHERE order_id = ? ORDER BY id`, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("db.QueryContext order_items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  domain.OrderItem
			price string
		)
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &price); err != nil {
			return domain.Order{}, fmt.Errorf("rows.Scan: %w", err)
		}
		if item.Price, err = parseMoney(price, cur); err != nil {
			return domain.Order{}, fmt.Errorf("parseMoney: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("rows.Err: %w", err)
	}

	return order, nil
}

func (r *Repository) SaveFeedback(ctx context.Context, feedback domain.Feedback) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		feedback.Name, feedback.Email, feedback.Message, r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("res.LastInsertId: %w", err)
	}

	return id, nil
}

func parseMoney(amount, iso string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	parsedCurrency, err := currency.ParseISO(iso)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", iso, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}

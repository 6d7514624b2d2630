package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/nikolayk812/bakery-web/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"time"
)

const productsKey = "products:all"

type cachedProduct struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// CachedProducts serves the catalog from the cache and falls back to the
// repository on a miss or any cache failure.
type CachedProducts struct {
	repo   port.ProductRepository
	cache  port.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProducts(repo port.ProductRepository, cache port.Cache, ttl time.Duration, logger *zap.Logger) *CachedProducts {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CachedProducts{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedProducts) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, ok := c.fromCache(ctx)
	if ok {
		return products, nil
	}

	products, err := c.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}

	c.store(ctx, products)

	return products, nil
}

// Invalidate drops the cached catalog.
func (c *CachedProducts) Invalidate(ctx context.Context) error {
	if err := c.cache.Delete(ctx, productsKey); err != nil {
		return fmt.Errorf("cache.Delete: %w", err)
	}

	return nil
}

func (c *CachedProducts) fromCache(ctx context.Context) ([]domain.Product, bool) {
	value, ok, err := c.cache.Get(ctx, productsKey)
	if err != nil {
		c.logger.Warn("products cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var cached []cachedProduct
	if err := json.Unmarshal([]byte(value), &cached); err != nil {
		c.logger.Warn("products cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	products := make([]domain.Product, 0, len(cached))
	for _, p := range cached {
		unit, err := currency.ParseISO(p.Currency)
		if err != nil {
			c.logger.Warn("products cache entry has bad currency", zap.String("currency", p.Currency))
			return nil, false
		}

		products = append(products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       domain.Money{Amount: p.Price, Currency: unit},
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}

	return products, true
}

func (c *CachedProducts) store(ctx context.Context, products []domain.Product) {
	cached := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		cached = append(cached, cachedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.Amount,
			Currency:    p.Price.Currency.String(),
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}

	value, err := json.Marshal(cached)
	if err != nil {
		c.logger.Warn("products cache encode failed", zap.Error(err))
		return
	}

	if err := c.cache.Set(ctx, productsKey, string(value), c.ttl); err != nil {
		c.logger.Warn("products cache write failed", zap.Error(err))
	}
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

var ErrCachePreload = errors.New("failed to preload order cache")

type orderRepository interface {
	GetLastOrders(ctx context.Context, limit int) ([]models.OrderView, error)
}

// GoCache keeps shaped orders keyed by order id so repeated reads skip the
// join queries.
type GoCache struct {
	c      *cache.Cache
	logger *zap.Logger
	repo   orderRepository
}

func New(defaultExpiration, cleanupInterval time.Duration, l *zap.Logger, r orderRepository) *GoCache {
	return &GoCache{
		c:      cache.New(defaultExpiration, cleanupInterval),
		logger: l,
		repo:   r,
	}
}

func (g *GoCache) Get(orderID int64) (*models.OrderView, bool) {
	val, found := g.c.Get(strconv.FormatInt(orderID, 10))
	if !found {
		return nil, false
	}

	order, ok := val.(*models.OrderView)

	return order, ok
}

func (g *GoCache) Set(orderID int64, order *models.OrderView) {
	g.c.Set(strconv.FormatInt(orderID, 10), order, cache.DefaultExpiration)
}

func (g *GoCache) Delete(orderID int64) {
	g.c.Delete(strconv.FormatInt(orderID, 10))
}

// Flush drops every cached view. Shaped orders embed customer name/phone and
// item name/price, so any cached entry may be stale after a parent row
// changes.
func (g *GoCache) Flush() {
	g.c.Flush()
}

func (g *GoCache) Preload(ctx context.Context, limit int) error {
	orders, err := g.repo.GetLastOrders(ctx, limit)
	if err != nil {
		g.logger.Error("failed to preload order cache", zap.Error(err))
		return fmt.Errorf("backend/internal/pkg/cache/cache.go: %w", ErrCachePreload)
	}

	if len(orders) == 0 {
		g.logger.Info("no orders to preload into cache")
		return nil
	}

	for _, order := range orders {
		o := order
		g.Set(order.ID, &o)
	}

	g.logger.Info("order cache preloaded", zap.Int("orders_count", len(orders)))
	return nil
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type fakeOrderRepo struct {
	orders []models.OrderView
	err    error
}

func (f *fakeOrderRepo) GetLastOrders(_ context.Context, _ int) ([]models.OrderView, error) {
	return f.orders, f.err
}

func newTestCache(repo orderRepository) *GoCache {
	return New(time.Minute, time.Minute, zap.NewNop(), repo)
}

func TestSetGetDelete(t *testing.T) {
	c := newTestCache(&fakeOrderRepo{})

	view := &models.OrderView{ID: 1, Name: "A", Phone: "111-111-1111"}
	c.Set(1, view)

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, view, got)

	c.Delete(1)
	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestFlushDropsAllEntries(t *testing.T) {
	c := newTestCache(&fakeOrderRepo{})

	c.Set(1, &models.OrderView{ID: 1, Name: "A", Phone: "111-111-1111"})
	c.Set(2, &models.OrderView{ID: 2, Name: "B", Phone: "222-222-2222"})

	c.Flush()

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestGetMiss(t *testing.T) {
	c := newTestCache(&fakeOrderRepo{})

	_, ok := c.Get(42)
	assert.False(t, ok)
}

func TestPreloadFillsCache(t *testing.T) {
	repo := &fakeOrderRepo{orders: []models.OrderView{
		{ID: 1, Name: "A", Phone: "111-111-1111"},
		{ID: 2, Name: "B", Phone: "222-222-2222"},
	}}
	c := newTestCache(repo)

	require.NoError(t, c.Preload(context.Background(), 10))

	first, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "A", first.Name)

	second, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "B", second.Name)
}

func TestPreloadEmptyRepo(t *testing.T) {
	c := newTestCache(&fakeOrderRepo{})

	require.NoError(t, c.Preload(context.Background(), 10))
}

func TestPreloadRepoError(t *testing.T) {
	c := newTestCache(&fakeOrderRepo{err: assert.AnError})

	err := c.Preload(context.Background(), 10)
	assert.ErrorIs(t, err, ErrCachePreload)
}

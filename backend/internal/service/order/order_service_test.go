package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type fakeRepo struct {
	createCalls int
	getCalls    int
	updateCalls int
	deleteCalls int

	view *models.OrderView
	err  error
}

func (f *fakeRepo) CreateOrder(_ context.Context, _ *models.OrderRequest) (*models.OrderView, error) {
	f.createCalls++
	return f.view, f.err
}

func (f *fakeRepo) GetOrderByID(_ context.Context, _ int64) (*models.OrderView, error) {
	f.getCalls++
	return f.view, f.err
}

func (f *fakeRepo) UpdateOrder(_ context.Context, _ int64, _ *models.OrderRequest) (*models.OrderView, error) {
	f.updateCalls++
	return f.view, f.err
}

func (f *fakeRepo) DeleteOrder(_ context.Context, _ int64) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeRepo) ListOrders(_ context.Context) ([]models.OrderView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.view == nil {
		return []models.OrderView{}, nil
	}
	return []models.OrderView{*f.view}, nil
}

func (f *fakeRepo) ListItemList(_ context.Context) ([]models.ItemListEntry, error) {
	return []models.ItemListEntry{}, f.err
}

type fakeCache struct {
	store map[int64]*models.OrderView
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[int64]*models.OrderView)}
}

func (f *fakeCache) Get(orderID int64) (*models.OrderView, bool) {
	v, ok := f.store[orderID]
	return v, ok
}

func (f *fakeCache) Set(orderID int64, order *models.OrderView) {
	f.store[orderID] = order
}

func (f *fakeCache) Delete(orderID int64) {
	delete(f.store, orderID)
}

func testView(id int64) *models.OrderView {
	notes := "extra spicy"
	return &models.OrderView{
		ID:        id,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Name:      "A",
		Phone:     "111-111-1111",
		Notes:     &notes,
		Items:     []models.OrderItemView{{Name: "Tea", Price: models.PriceFromFloat(3)}},
	}
}

func TestCreateOrderSetsCache(t *testing.T) {
	repo := &fakeRepo{view: testView(1)}
	c := newFakeCache()
	s := New(repo, c)

	view, err := s.CreateOrder(context.Background(), &models.OrderRequest{CustID: 1, Items: []int64{1}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.ID)

	cached, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, view, cached)
}

func TestCreateOrderRepoErrorPassesThrough(t *testing.T) {
	repo := &fakeRepo{err: models.ErrCustomerNotFound}
	s := New(repo, newFakeCache())

	_, err := s.CreateOrder(context.Background(), &models.OrderRequest{CustID: 99, Items: []int64{1}})
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestGetOrderByIDCacheHitSkipsRepo(t *testing.T) {
	repo := &fakeRepo{view: testView(1)}
	c := newFakeCache()
	c.Set(1, testView(1))
	s := New(repo, c)

	view, err := s.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.ID)
	assert.Zero(t, repo.getCalls)
}

func TestGetOrderByIDCacheMissLoadsAndCaches(t *testing.T) {
	repo := &fakeRepo{view: testView(7)}
	c := newFakeCache()
	s := New(repo, c)

	view, err := s.GetOrderByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	cached, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, view, cached)
}

func TestGetOrderByIDRepeatedReadIsStable(t *testing.T) {
	repo := &fakeRepo{view: testView(3)}
	s := New(repo, newFakeCache())

	first, err := s.GetOrderByID(context.Background(), 3)
	require.NoError(t, err)
	second, err := s.GetOrderByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetOrderByIDNilCache(t *testing.T) {
	repo := &fakeRepo{view: testView(2)}
	s := New(repo, nil)

	view, err := s.GetOrderByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.ID)
}

func TestUpdateOrderIDMismatch(t *testing.T) {
	repo := &fakeRepo{view: testView(1)}
	s := New(repo, newFakeCache())

	bodyID := int64(2)
	_, err := s.UpdateOrder(context.Background(), 1, &models.OrderRequest{ID: &bodyID, CustID: 1, Items: []int64{1}})
	assert.ErrorIs(t, err, models.ErrOrderIDMismatch)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateOrderMatchingBodyID(t *testing.T) {
	repo := &fakeRepo{view: testView(1)}
	c := newFakeCache()
	s := New(repo, c)

	bodyID := int64(1)
	view, err := s.UpdateOrder(context.Background(), 1, &models.OrderRequest{ID: &bodyID, CustID: 1, Items: []int64{3}})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)

	cached, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, view, cached)
}

func TestDeleteOrderInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	c := newFakeCache()
	c.Set(1, testView(1))
	s := New(repo, c)

	require.NoError(t, s.DeleteOrder(context.Background(), 1))

	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestDeleteOrderRepoErrorKeepsCache(t *testing.T) {
	repo := &fakeRepo{err: models.ErrOrderNotFound}
	c := newFakeCache()
	c.Set(1, testView(1))
	s := New(repo, c)

	err := s.DeleteOrder(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	_, ok := c.Get(1)
	assert.True(t, ok)
}

package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type fakeRepo struct {
	updateCalls int
	item        *models.Item
	err         error
}

func (f *fakeRepo) CreateItem(_ context.Context, _ string, _ models.Price) (*models.Item, error) {
	return f.item, f.err
}

func (f *fakeRepo) GetItemByID(_ context.Context, _ int64) (*models.Item, error) {
	return f.item, f.err
}

func (f *fakeRepo) UpdateItem(_ context.Context, _ int64, _ string, _ models.Price) (*models.Item, error) {
	f.updateCalls++
	return f.item, f.err
}

func (f *fakeRepo) DeleteItem(_ context.Context, _ int64) error {
	return f.err
}

func (f *fakeRepo) ListItems(_ context.Context) ([]models.Item, error) {
	return []models.Item{}, f.err
}

type fakeFlusher struct {
	flushCalls int
}

func (f *fakeFlusher) Flush() {
	f.flushCalls++
}

func pp(f float64) *models.Price {
	p := models.PriceFromFloat(f)
	return &p
}

func TestUpdateItemIDMismatch(t *testing.T) {
	repo := &fakeRepo{item: &models.Item{ID: 1, Name: "Tea", Price: models.PriceFromFloat(3)}}
	s := New(repo, nil)

	bodyID := int64(5)
	_, err := s.UpdateItem(context.Background(), 1, &models.ItemRequest{ID: &bodyID, Name: "Tea", Price: pp(3)})
	assert.ErrorIs(t, err, models.ErrItemIDMismatch)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateItemMatchingBodyID(t *testing.T) {
	repo := &fakeRepo{item: &models.Item{ID: 1, Name: "Chai", Price: models.PriceFromFloat(4.5)}}
	s := New(repo, nil)

	bodyID := int64(1)
	it, err := s.UpdateItem(context.Background(), 1, &models.ItemRequest{ID: &bodyID, Name: "Chai", Price: pp(4.5)})
	require.NoError(t, err)
	assert.Equal(t, "Chai", it.Name)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestDeleteItemPassesThroughGuardErrors(t *testing.T) {
	s := New(&fakeRepo{err: models.ErrItemInOrders}, nil)

	err := s.DeleteItem(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrItemInOrders)
}

func TestUpdateItemFlushesOrderCache(t *testing.T) {
	repo := &fakeRepo{item: &models.Item{ID: 1, Name: "Chai", Price: models.PriceFromFloat(4.5)}}
	flusher := &fakeFlusher{}
	s := New(repo, flusher)

	_, err := s.UpdateItem(context.Background(), 1, &models.ItemRequest{Name: "Chai", Price: pp(4.5)})
	require.NoError(t, err)
	assert.Equal(t, 1, flusher.flushCalls)
}

func TestUpdateItemFailureKeepsOrderCache(t *testing.T) {
	flusher := &fakeFlusher{}
	s := New(&fakeRepo{err: models.ErrItemNotFound}, flusher)

	_, err := s.UpdateItem(context.Background(), 1, &models.ItemRequest{Name: "Chai", Price: pp(4.5)})
	assert.ErrorIs(t, err, models.ErrItemNotFound)
	assert.Zero(t, flusher.flushCalls)
}

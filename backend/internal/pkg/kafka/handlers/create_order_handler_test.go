package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/kafka"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/validator"
)

type fakeOrderService struct {
	createCalls int
	lastReq     *models.OrderRequest
	err         error
}

func (f *fakeOrderService) CreateOrder(_ context.Context, req *models.OrderRequest) (*models.OrderView, error) {
	f.createCalls++
	f.lastReq = req
	return &models.OrderView{ID: 1}, f.err
}

func TestHandleMessageHappyPath(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewCreateHandler(validator.New(), svc)

	err := h.HandleMessage(context.Background(), []byte(`{"cust_id":1,"notes":"to go","items":[1,2]}`))
	require.NoError(t, err)
	require.Equal(t, 1, svc.createCalls)
	assert.Equal(t, int64(1), svc.lastReq.CustID)
	assert.Equal(t, []int64{1, 2}, svc.lastReq.Items)
}

func TestHandleMessageInvalidJSON(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewCreateHandler(validator.New(), svc)

	err := h.HandleMessage(context.Background(), []byte(`{"cust_id":`))
	assert.ErrorIs(t, err, kafka.ErrInvalidJSON)
	assert.Zero(t, svc.createCalls)
}

func TestHandleMessageNilOrder(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewCreateHandler(validator.New(), svc)

	err := h.HandleMessage(context.Background(), []byte(`null`))
	assert.ErrorIs(t, err, kafka.ErrNilOrder)
	assert.Zero(t, svc.createCalls)
}

func TestHandleMessageValidationFailure(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewCreateHandler(validator.New(), svc)

	err := h.HandleMessage(context.Background(), []byte(`{"notes":"no customer","items":[1]}`))
	assert.ErrorIs(t, err, kafka.ErrValidation)
	assert.Zero(t, svc.createCalls)
}

func TestHandleMessageServiceFailure(t *testing.T) {
	svc := &fakeOrderService{err: models.ErrCustomerNotFound}
	h := NewCreateHandler(validator.New(), svc)

	err := h.HandleMessage(context.Background(), []byte(`{"cust_id":42,"items":[1]}`))
	assert.ErrorIs(t, err, kafka.ErrCreateOrder)
}

package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
	"github.com/dosahouse/pos-order-service/backend/internal/pkg/kafka"
)

type orderService interface {
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderView, error)
}

type requestValidator interface {
	Struct(s interface{}) error
}

type CreateHandler struct {
	validator    requestValidator
	orderService orderService
}

func NewCreateHandler(v requestValidator, s orderService) *CreateHandler {
	return &CreateHandler{
		validator:    v,
		orderService: s,
	}
}

func (h *CreateHandler) HandleMessage(ctx context.Context, msg []byte) error {
	var req *models.OrderRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return fmt.Errorf("backend/internal/pkg/kafka/handlers/create_order_handler.go, %w: %v", kafka.ErrInvalidJSON, err)
	}

	if req == nil {
		return fmt.Errorf("backend/internal/pkg/kafka/handlers/create_order_handler.go, %w", kafka.ErrNilOrder)
	}

	if err := h.validator.Struct(req); err != nil {
		return fmt.Errorf("backend/internal/pkg/kafka/handlers/create_order_handler.go, %w: %v", kafka.ErrValidation, err)
	}

	if _, err := h.orderService.CreateOrder(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", kafka.ErrCreateOrder, err)
	}

	return nil
}

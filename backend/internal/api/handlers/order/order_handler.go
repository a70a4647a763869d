package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dosahouse/pos-order-service/backend/internal/api/respond"
	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type orderService interface {
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderView, error)
	GetOrderByID(ctx context.Context, orderID int64) (*models.OrderView, error)
	UpdateOrder(ctx context.Context, orderID int64, req *models.OrderRequest) (*models.OrderView, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	ListOrders(ctx context.Context) ([]models.OrderView, error)
	ListItemList(ctx context.Context) ([]models.ItemListEntry, error)
}

type requestValidator interface {
	Struct(s interface{}) error
}

type Handler struct {
	logger       *zap.Logger
	validator    requestValidator
	orderService orderService
}

func New(l *zap.Logger, v requestValidator, s orderService) *Handler {
	return &Handler{
		logger:       l,
		validator:    v,
		orderService: s,
	}
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	view, err := h.orderService.CreateOrder(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, view)
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	view, err := h.orderService.GetOrderByID(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, view)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	view, err := h.orderService.UpdateOrder(r.Context(), orderID, &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, view)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if err := respond.Message(w, "Order deleted successfully"); err != nil {
		h.logger.Error("failed to encode order delete response", zap.Error(err))
	}
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, views)
}

func (h *Handler) ListItemList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.orderService.ListItemList(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, entries)
}

func (h *Handler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, "Order ID must be an integer")
		return 0, false
	}

	return orderID, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var invalidItems *models.InvalidItemsError

	switch {
	case errors.As(err, &invalidItems):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, invalidItems.Error())
	case errors.Is(err, models.ErrOrderNotFound):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, models.ErrOrderNotFound.Error())
	case errors.Is(err, models.ErrCustomerNotFound):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, models.ErrCustomerNotFound.Error())
	case errors.Is(err, models.ErrEmptyOrderItems):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrEmptyOrderItems.Error())
	case errors.Is(err, models.ErrDuplicateOrderItems):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrDuplicateOrderItems.Error())
	case errors.Is(err, models.ErrOrderIDMismatch):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrOrderIDMismatch.Error())
	default:
		h.logger.Error("backend/internal/api/handlers/order/order_handler.go, order operation failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "internal server error")
	}
}

func (h *Handler) encode(w http.ResponseWriter, v any) {
	if err := respond.JSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("backend/internal/api/handlers/order/order_handler.go, failed to encode response", zap.Error(err))
	}
}

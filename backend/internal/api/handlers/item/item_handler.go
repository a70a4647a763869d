package item

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

type itemService interface {
	CreateItem(ctx context.Context, req *models.ItemRequest) (*models.Item, error)
	GetItemByID(ctx context.Context, itemID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int64, req *models.ItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	ListItems(ctx context.Context) ([]models.Item, error)
}

type requestValidator interface {
	Struct(s interface{}) error
}

type Handler struct {
	logger      *zap.Logger
	validator   requestValidator
	itemService itemService
}

func New(l *zap.Logger, v requestValidator, s itemService) *Handler {
	return &Handler{
		logger:      l,
		validator:   v,
		itemService: s,
	}
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, item)
}

func (h *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.GetItemByID(r.Context(), itemID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, item)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, item)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(r.Context(), itemID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if err := respond.Message(w, "Item deleted successfully"); err != nil {
		h.logger.Error("failed to encode item delete response", zap.Error(err))
	}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, items)
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, "Item ID must be an integer")
		return 0, false
	}

	return itemID, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, models.ErrItemNotFound.Error())
	case errors.Is(err, models.ErrItemNameExists):
		respond.Error(w, http.StatusBadRequest, respond.CategoryConflict, models.ErrItemNameExists.Error())
	case errors.Is(err, models.ErrItemIDMismatch):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrItemIDMismatch.Error())
	case errors.Is(err, models.ErrItemInOrders):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrItemInOrders.Error())
	default:
		h.logger.Error("backend/internal/api/handlers/item/item_handler.go, item operation failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "internal server error")
	}
}

func (h *Handler) encode(w http.ResponseWriter, v any) {
	if err := respond.JSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("backend/internal/api/handlers/item/item_handler.go, failed to encode response", zap.Error(err))
	}
}

package customer

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

type customerService interface {
	CreateCustomer(ctx context.Context, req *models.CustomerRequest) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, req *models.CustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type requestValidator interface {
	Struct(s interface{}) error
}

type Handler struct {
	logger          *zap.Logger
	validator       requestValidator
	customerService customerService
}

func New(l *zap.Logger, v requestValidator, s customerService) *Handler {
	return &Handler{
		logger:          l,
		validator:       v,
		customerService: s,
	}
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, customer)
}

func (h *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(r.Context(), customerID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, customer)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(r.Context(), customerID, &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, customer)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(r.Context(), customerID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if err := respond.Message(w, "Customer deleted successfully"); err != nil {
		h.logger.Error("failed to encode customer delete response", zap.Error(err))
	}
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.ListCustomers(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.encode(w, customers)
}

func (h *Handler) customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, respond.CategoryValidation, "Customer ID must be an integer")
		return 0, false
	}

	return customerID, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrCustomerNotFound):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, models.ErrCustomerNotFound.Error())
	case errors.Is(err, models.ErrPhoneExists):
		respond.Error(w, http.StatusBadRequest, respond.CategoryConflict, models.ErrPhoneExists.Error())
	case errors.Is(err, models.ErrPhoneNotUnique):
		respond.Error(w, http.StatusBadRequest, respond.CategoryConflict, models.ErrPhoneNotUnique.Error())
	case errors.Is(err, models.ErrCustomerIDMismatch):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrCustomerIDMismatch.Error())
	case errors.Is(err, models.ErrCustomerHasOrders):
		respond.Error(w, http.StatusBadRequest, respond.CategoryBadRequest, models.ErrCustomerHasOrders.Error())
	default:
		h.logger.Error("backend/internal/api/handlers/customer/customer_handler.go, customer operation failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "internal server error")
	}
}

func (h *Handler) encode(w http.ResponseWriter, v any) {
	if err := respond.JSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("backend/internal/api/handlers/customer/customer_handler.go, failed to encode response", zap.Error(err))
	}
}

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared between the repository, service, and handler layers.
// Handlers translate them into the HTTP error taxonomy; the messages are the
// ones clients observe.
var (
	ErrCustomerNotFound = errors.New("Customer not found")
	ErrItemNotFound     = errors.New("Item not found")
	ErrOrderNotFound    = errors.New("Order not found")

	ErrPhoneExists    = errors.New("Customer with this phone number already exists")
	ErrPhoneNotUnique = errors.New("Phone number must be unique")
	ErrItemNameExists = errors.New("Item name must be unique")

	ErrCustomerHasOrders = errors.New("Cannot delete customer with existing orders")
	ErrItemInOrders      = errors.New("Cannot delete item that is used in existing orders")

	ErrEmptyOrderItems     = errors.New("Order must contain at least one item.")
	ErrDuplicateOrderItems = errors.New("Order items must not contain duplicates")

	ErrCustomerIDMismatch = errors.New("Customer ID in path and body must match")
	ErrItemIDMismatch     = errors.New("Item ID in path and body must match")
	ErrOrderIDMismatch    = errors.New("Order ID in path and body must match")
)

// InvalidItemsError reports every requested item id that does not exist, not
// just the first one.
type InvalidItemsError struct {
	IDs []int64
}

func (e *InvalidItemsError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("Invalid item IDs: [%s]", strings.Join(ids, ", "))
}

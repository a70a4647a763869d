package models

import "time"

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerRequest is the body of POST /customers and PUT /customers/{id}.
// The optional ID is only honored on update, where it must match the path.
type CustomerRequest struct {
	ID    *int64 `json:"id,omitempty"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone"`
}

type Item struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

type ItemRequest struct {
	ID    *int64 `json:"id,omitempty"`
	Name  string `json:"name" validate:"required"`
	Price *Price `json:"price" validate:"required,price"`
}

// OrderRequest carries the item ids only; the response shape resolves them
// into OrderItemView entries.
type OrderRequest struct {
	ID     *int64  `json:"id,omitempty"`
	CustID int64   `json:"cust_id" validate:"required,gt=0"`
	Notes  *string `json:"notes,omitempty"`
	Items  []int64 `json:"items"`
}

// OrderView is the shaped order returned by every order operation: the order
// row joined with its customer, plus the resolved item lines.
type OrderView struct {
	ID        int64           `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Notes     *string         `json:"notes"`
	Items     []OrderItemView `json:"items"`
}

type OrderItemView struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// ItemListEntry is one row of the order/item association table.
type ItemListEntry struct {
	OrderID int64 `json:"order_id"`
	ItemID  int64 `json:"item_id"`
}

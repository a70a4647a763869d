package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	customerHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/customer"
	itemHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/item"
	orderHandler "github.com/dosahouse/pos-order-service/backend/internal/api/handlers/order"
	"github.com/dosahouse/pos-order-service/backend/internal/api/middleware"
)

func NewRouter(ch *customerHandler.Handler, ih *itemHandler.Handler, oh *orderHandler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", ch.CreateCustomer)
		r.Get("/", ch.ListCustomers)
		r.Get("/{id}", ch.GetCustomerByID)
		r.Put("/{id}", ch.UpdateCustomer)
		r.Delete("/{id}", ch.DeleteCustomer)
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", ih.CreateItem)
		r.Get("/", ih.ListItems)
		r.Get("/{id}", ih.GetItemByID)
		r.Put("/{id}", ih.UpdateItem)
		r.Delete("/{id}", ih.DeleteItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", oh.CreateOrder)
		r.Get("/", oh.ListOrders)
		r.Get("/{id}", oh.GetOrderByID)
		r.Put("/{id}", oh.UpdateOrder)
		r.Delete("/{id}", oh.DeleteOrder)
	})

	r.Get("/item_list", oh.ListItemList)

	return r
}

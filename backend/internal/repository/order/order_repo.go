package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

var (
	ErrTxBegin        = errors.New("failed to begin transaction")
	ErrTxCommit       = errors.New("failed to commit transaction")
	ErrInsertOrder    = errors.New("failed to insert into orders")
	ErrInsertItemList = errors.New("failed to insert into item_list")
	ErrUpdateOrder    = errors.New("failed to update orders")
	ErrDeleteOrder    = errors.New("failed to delete from orders")
	ErrDeleteItemList = errors.New("failed to delete from item_list")
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the shaping and
// validation helpers run identically inside and outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const orderViewQuery = `
	SELECT o.id, o.timestamp, c.name, c.phone, o.notes
	FROM orders AS o
	JOIN customers AS c ON c.id = o.cust_id
	WHERE o.id = $1;
	`

const orderItemsQuery = `
	SELECT i.name, i.price
	FROM items AS i
	JOIN item_list AS il ON i.id = il.item_id
	WHERE il.order_id = $1;
	`

type Repository struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, req *models.OrderRequest) (view *models.OrderView, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxBegin)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			view = nil
			err = fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxCommit)
		}
	}()

	if err = validateOrderRefs(ctx, tx, req.CustID, req.Items); err != nil {
		return nil, err
	}

	var orderID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (cust_id, notes) VALUES ($1, $2) RETURNING id;`,
		req.CustID, req.Notes,
	).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrInsertOrder)
	}

	if err = insertItemList(ctx, tx, orderID, req.Items); err != nil {
		return nil, err
	}

	view, err = getOrderView(ctx, tx, orderID)
	return view, err
}

func (r *Repository) GetOrderByID(ctx context.Context, orderID int64) (*models.OrderView, error) {
	return getOrderView(ctx, r.db, orderID)
}

func (r *Repository) UpdateOrder(ctx context.Context, orderID int64, req *models.OrderRequest) (view *models.OrderView, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxBegin)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			view = nil
			err = fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxCommit)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1);`, orderID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	if !exists {
		return nil, models.ErrOrderNotFound
	}

	if err = validateOrderRefs(ctx, tx, req.CustID, req.Items); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET cust_id = $1, notes = $2 WHERE id = $3;`,
		req.CustID, req.Notes, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrUpdateOrder)
	}

	// Full replace of the association set, not a diff.
	_, err = tx.Exec(ctx, `DELETE FROM item_list WHERE order_id = $1;`, orderID)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrDeleteItemList)
	}

	if err = insertItemList(ctx, tx, orderID, req.Items); err != nil {
		return nil, err
	}

	view, err = getOrderView(ctx, tx, orderID)
	return view, err
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID int64) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxBegin)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrTxCommit)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1);`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	if !exists {
		return models.ErrOrderNotFound
	}

	// Association rows go first, the order row owns them.
	_, err = tx.Exec(ctx, `DELETE FROM item_list WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrDeleteItemList)
	}

	_, err = tx.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrDeleteOrder)
	}

	return nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	query := `
	SELECT o.id, o.timestamp, c.name, c.phone, o.notes
	FROM orders AS o
	JOIN customers AS c ON c.id = o.cust_id
	ORDER BY o.id;
	`

	return r.listOrderViews(ctx, query)
}

// GetLastOrders returns the newest orders, used to warm the read cache.
func (r *Repository) GetLastOrders(ctx context.Context, limit int) ([]models.OrderView, error) {
	query := `
	SELECT o.id, o.timestamp, c.name, c.phone, o.notes
	FROM orders AS o
	JOIN customers AS c ON c.id = o.cust_id
	ORDER BY o.id DESC
	LIMIT $1;
	`

	return r.listOrderViews(ctx, query, limit)
}

func (r *Repository) ListItemList(ctx context.Context) ([]models.ItemListEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT order_id, item_id FROM item_list ORDER BY order_id, item_id;`)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	defer rows.Close()

	entries := make([]models.ItemListEntry, 0)
	for rows.Next() {
		var e models.ItemListEntry
		if err = rows.Scan(&e.OrderID, &e.ItemID); err != nil {
			return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}

	return entries, nil
}

func (r *Repository) listOrderViews(ctx context.Context, query string, args ...any) ([]models.OrderView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}

	views := make([]models.OrderView, 0)
	for rows.Next() {
		var v models.OrderView
		if err = rows.Scan(&v.ID, &v.Timestamp, &v.Name, &v.Phone, &v.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
		}
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	rows.Close()

	for i := range views {
		views[i].Items, err = getOrderItems(ctx, r.db, views[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return views, nil
}

// validateOrderRefs is the shared resolve-and-validate step used by both
// create and update. Check order matters: missing customer, then empty item
// list, then duplicates, then unknown item ids (all of them reported).
// Nothing is written until every check passes.
func validateOrderRefs(ctx context.Context, q querier, custID int64, itemIDs []int64) error {
	var custExists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1);`, custID).Scan(&custExists)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	if !custExists {
		return models.ErrCustomerNotFound
	}

	if len(itemIDs) == 0 {
		return models.ErrEmptyOrderItems
	}

	seen := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := seen[id]; ok {
			return models.ErrDuplicateOrderItems
		}
		seen[id] = struct{}{}
	}

	rows, err := q.Query(ctx, `SELECT id FROM items WHERE id = ANY($1);`, itemIDs)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(itemIDs))
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
		}
		found[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}

	var invalid []int64
	for _, id := range itemIDs {
		if _, ok := found[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &models.InvalidItemsError{IDs: invalid}
	}

	return nil
}

func insertItemList(ctx context.Context, tx pgx.Tx, orderID int64, itemIDs []int64) error {
	for _, itemID := range itemIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO item_list (order_id, item_id) VALUES ($1, $2);`,
			orderID, itemID,
		)
		if err != nil {
			return fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", ErrInsertItemList)
		}
	}

	return nil
}

func getOrderView(ctx context.Context, q querier, orderID int64) (*models.OrderView, error) {
	var v models.OrderView
	err := q.QueryRow(ctx, orderViewQuery, orderID).Scan(&v.ID, &v.Timestamp, &v.Name, &v.Phone, &v.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}

	v.Items, err = getOrderItems(ctx, q, orderID)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func getOrderItems(ctx context.Context, q querier, orderID int64) ([]models.OrderItemView, error) {
	rows, err := q.Query(ctx, orderItemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}
	defer rows.Close()

	items := make([]models.OrderItemView, 0)
	for rows.Next() {
		var it models.OrderItemView
		if err = rows.Scan(&it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("backend/internal/repository/order/order_repo.go: %w", err)
	}

	return items, nil
}

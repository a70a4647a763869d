package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

var (
	ErrTxBegin  = errors.New("failed to begin transaction")
	ErrTxCommit = errors.New("failed to commit transaction")
)

type Repository struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateCustomer(ctx context.Context, name, phone string) (*models.Customer, error) {
	query := `
	INSERT INTO customers (name, phone)
	VALUES ($1, $2)
	RETURNING id, name, phone;
	`

	var c models.Customer
	err := r.db.QueryRow(ctx, query, name, phone).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrPhoneExists
		}
		return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}

	return &c, nil
}

func (r *Repository) GetCustomerByID(ctx context.Context, customerID int64) (*models.Customer, error) {
	query := `SELECT id, name, phone FROM customers WHERE id = $1;`

	var c models.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}

	return &c, nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, customerID int64, name, phone string) (*models.Customer, error) {
	query := `
	UPDATE customers
	SET name = $1, phone = $2
	WHERE id = $3
	RETURNING id, name, phone;
	`

	var c models.Customer
	err := r.db.QueryRow(ctx, query, name, phone, customerID).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCustomerNotFound
		}
		if isUniqueViolation(err) {
			return nil, models.ErrPhoneNotUnique
		}
		return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}

	return &c, nil
}

func (r *Repository) DeleteCustomer(ctx context.Context, customerID int64) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", ErrTxBegin)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", ErrTxCommit)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1);`, customerID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}
	if !exists {
		return models.ErrCustomerNotFound
	}

	var hasOrders bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE cust_id = $1);`, customerID).Scan(&hasOrders)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}
	if hasOrders {
		return models.ErrCustomerHasOrders
	}

	_, err = tx.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}

	return nil
}

func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, phone FROM customers ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err = rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("backend/internal/repository/customer/customer_repo.go: %w", err)
	}

	return customers, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

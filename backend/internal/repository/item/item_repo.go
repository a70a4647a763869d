package item

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

func (r *Repository) CreateItem(ctx context.Context, name string, price models.Price) (*models.Item, error) {
	query := `
	INSERT INTO items (name, price)
	VALUES ($1, $2)
	RETURNING id, name, price;
	`

	var i models.Item
	err := r.db.QueryRow(ctx, query, name, price).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrItemNameExists
		}
		return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}

	return &i, nil
}

func (r *Repository) GetItemByID(ctx context.Context, itemID int64) (*models.Item, error) {
	query := `SELECT id, name, price FROM items WHERE id = $1;`

	var i models.Item
	err := r.db.QueryRow(ctx, query, itemID).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}

	return &i, nil
}

func (r *Repository) UpdateItem(ctx context.Context, itemID int64, name string, price models.Price) (*models.Item, error) {
	query := `
	UPDATE items
	SET name = $1, price = $2
	WHERE id = $3
	RETURNING id, name, price;
	`

	var i models.Item
	err := r.db.QueryRow(ctx, query, name, price, itemID).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		if isUniqueViolation(err) {
			return nil, models.ErrItemNameExists
		}
		return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}

	return &i, nil
}

func (r *Repository) DeleteItem(ctx context.Context, itemID int64) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", ErrTxBegin)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", ErrTxCommit)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1);`, itemID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}
	if !exists {
		return models.ErrItemNotFound
	}

	var inOrders bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM item_list WHERE item_id = $1);`, itemID).Scan(&inOrders)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}
	if inOrders {
		return models.ErrItemInOrders
	}

	_, err = tx.Exec(ctx, `DELETE FROM items WHERE id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}

	return nil
}

func (r *Repository) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price FROM items ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var i models.Item
		if err = rows.Scan(&i.ID, &i.Name, &i.Price); err != nil {
			return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
		}
		items = append(items, i)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("backend/internal/repository/item/item_repo.go: %w", err)
	}

	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

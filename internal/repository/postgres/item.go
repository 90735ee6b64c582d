package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

const itemColumns = `id, user_id, name, quantity, quantity_units, created_at, updated_at`

var itemScope = scope{ownerColumn: "user_id", nameColumn: "name", orderBy: "created_at, id"}

type ItemRepository struct {
	db *Connection
}

func NewItemRepository(db *Connection) *ItemRepository {
	return &ItemRepository{
		db: db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	query := `INSERT INTO items (id, user_id, name, quantity, quantity_units, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + itemColumns

	saved, err := scanItem(r.db.q(ctx).QueryRow(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Quantity, item.QuantityUnits, item.CreatedAt, item.UpdatedAt,
	))
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to create item: %w", translateError(err))
	}

	return saved, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND user_id = $2` + lockClause(ctx)

	item, err := scanItem(r.db.q(ctx).QueryRow(ctx, query, id, ownerID))
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to get item by id: %w", translateError(err))
	}

	return item, nil
}

func (r *ItemRepository) List(ctx context.Context, filter model.Filter) ([]model.Item, error) {
	query, args := buildScopedQuery(`SELECT `+itemColumns+` FROM items`, itemScope, filter)

	rows, err := r.db.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (r *ItemRepository) Update(ctx context.Context, item model.Item) (model.Item, error) {
	query := `UPDATE items
			  SET name = $3, quantity = $4, quantity_units = $5, updated_at = NOW()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + itemColumns

	saved, err := scanItem(r.db.q(ctx).QueryRow(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Quantity, item.QuantityUnits,
	))
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to update item: %w", translateError(err))
	}

	return saved, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	cmd, err := r.db.q(ctx).Exec(ctx, `DELETE FROM items WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Quantity, &item.QuantityUnits,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

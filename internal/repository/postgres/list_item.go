package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ListItemStore = (*ListItemRepository)(nil)

const listItemSelect = `SELECT li.id, li.list_id, li.item_id, li.quantity, li.completed, li.created_at, li.updated_at,
		i.id, i.user_id, i.name, i.quantity, i.quantity_units, i.created_at, i.updated_at
	FROM list_items li
	JOIN lists l ON l.id = li.list_id
	JOIN items i ON i.id = li.item_id`

var listItemScope = scope{ownerColumn: "l.user_id", listColumn: "li.list_id", nameColumn: "i.name", orderBy: "li.created_at, li.id"}

type ListItemRepository struct {
	db *Connection
}

func NewListItemRepository(db *Connection) *ListItemRepository {
	return &ListItemRepository{
		db: db,
	}
}

func (r *ListItemRepository) Create(ctx context.Context, listItem model.ListItem) (model.ListItem, error) {
	query := `INSERT INTO list_items (id, list_id, item_id, quantity, completed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	var id uuid.UUID
	err := r.db.q(ctx).QueryRow(ctx, query,
		listItem.ID, listItem.ListID, listItem.ItemID, listItem.Quantity, listItem.Completed,
		listItem.CreatedAt, listItem.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("failed to create list item: %w", translateError(err))
	}

	return r.getByID(ctx, id)
}

// GetByID returns the list item only if its list belongs to ownerID.
func (r *ListItemRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.ListItem, error) {
	query := listItemSelect + ` WHERE li.id = $1 AND l.user_id = $2`
	if lockClause(ctx) != "" {
		query += ` FOR UPDATE OF li`
	}

	listItem, err := scanListItem(r.db.q(ctx).QueryRow(ctx, query, id, ownerID))
	if err != nil {
		return model.ListItem{}, fmt.Errorf("failed to get list item by id: %w", translateError(err))
	}

	return listItem, nil
}

func (r *ListItemRepository) getByID(ctx context.Context, id uuid.UUID) (model.ListItem, error) {
	listItem, err := scanListItem(r.db.q(ctx).QueryRow(ctx, listItemSelect+` WHERE li.id = $1`, id))
	if err != nil {
		return model.ListItem{}, fmt.Errorf("failed to get list item by id: %w", translateError(err))
	}
	return listItem, nil
}

// List returns the items of filter.ListID, searching on the referenced item's name.
func (r *ListItemRepository) List(ctx context.Context, filter model.Filter) ([]model.ListItem, error) {
	query, args := buildScopedQuery(listItemSelect, listItemScope, filter)

	rows, err := r.db.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list list items: %w", err)
	}
	defer rows.Close()

	var listItems []model.ListItem
	for rows.Next() {
		listItem, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list item: %w", err)
		}
		listItems = append(listItems, listItem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list list items: %w", err)
	}

	return listItems, nil
}

func (r *ListItemRepository) CountByList(ctx context.Context, listID uuid.UUID) (int, error) {
	var count int
	err := r.db.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM list_items WHERE list_id = $1`, listID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count list items: %w", err)
	}
	return count, nil
}

func (r *ListItemRepository) Update(ctx context.Context, listItem model.ListItem) (model.ListItem, error) {
	query := `UPDATE list_items
			  SET list_id = $2, item_id = $3, quantity = $4, completed = $5, updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.q(ctx).Exec(ctx, query,
		listItem.ID, listItem.ListID, listItem.ItemID, listItem.Quantity, listItem.Completed,
	)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("failed to update list item: %w", translateError(err))
	}
	if cmd.RowsAffected() == 0 {
		return model.ListItem{}, model.ErrNotFound
	}

	return r.getByID(ctx, listItem.ID)
}

func (r *ListItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.q(ctx).Exec(ctx, `DELETE FROM list_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete list item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanListItem(row pgx.Row) (model.ListItem, error) {
	var li model.ListItem
	err := row.Scan(
		&li.ID, &li.ListID, &li.ItemID, &li.Quantity, &li.Completed, &li.CreatedAt, &li.UpdatedAt,
		&li.Item.ID, &li.Item.OwnerID, &li.Item.Name, &li.Item.Quantity, &li.Item.QuantityUnits,
		&li.Item.CreatedAt, &li.Item.UpdatedAt,
	)
	return li, err
}

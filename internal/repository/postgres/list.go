package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ListStore = (*ListRepository)(nil)

const listColumns = `id, user_id, name, created_at, updated_at`

var listScope = scope{ownerColumn: "user_id", nameColumn: "name", orderBy: "created_at, id"}

type ListRepository struct {
	db *Connection
}

func NewListRepository(db *Connection) *ListRepository {
	return &ListRepository{
		db: db,
	}
}

func (r *ListRepository) Create(ctx context.Context, list model.List) (model.List, error) {
	query := `INSERT INTO lists (id, user_id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + listColumns

	saved, err := scanList(r.db.q(ctx).QueryRow(ctx, query,
		list.ID, list.OwnerID, list.Name, list.CreatedAt, list.UpdatedAt,
	))
	if err != nil {
		return model.List{}, fmt.Errorf("failed to create list: %w", translateError(err))
	}

	return saved, nil
}

func (r *ListRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1 AND user_id = $2` + lockClause(ctx)

	list, err := scanList(r.db.q(ctx).QueryRow(ctx, query, id, ownerID))
	if err != nil {
		return model.List{}, fmt.Errorf("failed to get list by id: %w", translateError(err))
	}

	return list, nil
}

func (r *ListRepository) List(ctx context.Context, filter model.Filter) ([]model.List, error) {
	query, args := buildScopedQuery(`SELECT `+listColumns+` FROM lists`, listScope, filter)

	rows, err := r.db.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	return lists, nil
}

func (r *ListRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM lists WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lists: %w", err)
	}
	return count, nil
}

func (r *ListRepository) Update(ctx context.Context, list model.List) (model.List, error) {
	query := `UPDATE lists SET name = $3, updated_at = NOW()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + listColumns

	saved, err := scanList(r.db.q(ctx).QueryRow(ctx, query, list.ID, list.OwnerID, list.Name))
	if err != nil {
		return model.List{}, fmt.Errorf("failed to update list: %w", translateError(err))
	}

	return saved, nil
}

// Delete removes the list; list_items rows go with it through ON DELETE CASCADE.
func (r *ListRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	cmd, err := r.db.q(ctx).Exec(ctx, `DELETE FROM lists WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanList(row pgx.Row) (model.List, error) {
	var list model.List
	err := row.Scan(&list.ID, &list.OwnerID, &list.Name, &list.CreatedAt, &list.UpdatedAt)
	return list, err
}

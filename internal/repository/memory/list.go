package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.ListStore = (*ListRepository)(nil)

type ListRepository struct {
	db *DB
}

func NewListRepository(db *DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(_ context.Context, list model.List) (model.List, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[list.OwnerID]; !ok {
		return model.List{}, model.ErrNotFound
	}

	r.db.lists[list.ID] = row[model.List]{seq: r.db.next(), val: list}
	return list, nil
}

func (r *ListRepository) GetByID(_ context.Context, id, ownerID uuid.UUID) (model.List, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	l, ok := r.db.lists[id]
	if !ok || l.val.OwnerID != ownerID {
		return model.List{}, model.ErrNotFound
	}
	return l.val, nil
}

func (r *ListRepository) List(_ context.Context, filter model.Filter) ([]model.List, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var rows []row[model.List]
	for _, l := range r.db.lists {
		if l.val.OwnerID == filter.OwnerID && filter.MatchesName(l.val.Name) {
			rows = append(rows, l)
		}
	}

	lists := sortedValues(rows, func(l model.List) time.Time { return l.CreatedAt })
	return paginate(lists, filter.Pagination), nil
}

func (r *ListRepository) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var n int
	for _, l := range r.db.lists {
		if l.val.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *ListRepository) Update(_ context.Context, list model.List) (model.List, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.lists[list.ID]
	if !ok || existing.val.OwnerID != list.OwnerID {
		return model.List{}, model.ErrNotFound
	}

	list.CreatedAt = existing.val.CreatedAt
	list.UpdatedAt = r.db.now()
	r.db.lists[list.ID] = row[model.List]{seq: existing.seq, val: list}
	return list, nil
}

// Delete removes the list and its list items.
func (r *ListRepository) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	l, ok := r.db.lists[id]
	if !ok || l.val.OwnerID != ownerID {
		return model.ErrNotFound
	}

	delete(r.db.lists, id)
	for liID, li := range r.db.listItems {
		if li.val.ListID == id {
			delete(r.db.listItems, liID)
		}
	}
	return nil
}
